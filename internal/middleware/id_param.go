package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/utils"
)

const contextKeyResourceID = "resource_id"

// RequireIDParam parses the :id path parameter. A malformed id is handled by
// onInvalid and the chain is aborted.
func RequireIDParam(onInvalid gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseID(c.Param("id"))
		if err != nil {
			onInvalid(c)
			c.Abort()
			return
		}

		c.Set(contextKeyResourceID, id)
		c.Next()
	}
}

// IDParam returns the id parsed by RequireIDParam.
func IDParam(c *gin.Context) uint64 {
	return c.GetUint64(contextKeyResourceID)
}
