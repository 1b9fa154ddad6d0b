package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/i18n"
)

// Localize picks the request's language from Accept-Language.
func Localize(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyLocalizer, bundle.Localizer(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// Localizer returns the localizer chosen by Localize.
func Localizer(c *gin.Context) *i18n.Localizer {
	if v, ok := c.Get(constants.ContextKeyLocalizer); ok {
		if l, ok := v.(*i18n.Localizer); ok {
			return l
		}
	}
	return nil
}
