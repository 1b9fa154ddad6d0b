package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
)

var flashKinds = []string{constants.FlashInfo, constants.FlashSuccess, constants.FlashError}

// AddFlash queues a message key to be shown on the next rendered page.
func AddFlash(c *gin.Context, kind, key string) error {
	session := sessions.Default(c)
	session.AddFlash(key, kind)
	return session.Save()
}

// Flashes pops every queued message key, grouped by kind. The keys are
// returned even when the session could not be written back.
func Flashes(c *gin.Context) (map[string][]string, error) {
	session := sessions.Default(c)
	out := make(map[string][]string)
	for _, kind := range flashKinds {
		for _, v := range session.Flashes(kind) {
			if key, ok := v.(string); ok {
				out[kind] = append(out[kind], key)
			}
		}
	}
	if len(out) > 0 {
		if err := session.Save(); err != nil {
			return out, err
		}
	}
	return out, nil
}
