package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WelcomeHandler serves the landing page and the health probe.
type WelcomeHandler struct {
	render *Renderer
}

// NewWelcomeHandler creates a new WelcomeHandler.
func NewWelcomeHandler(render *Renderer) *WelcomeHandler {
	return &WelcomeHandler{render: render}
}

func (h *WelcomeHandler) Index(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "welcome/index", nil)
}

// Health reports that the server is up.
func (h *WelcomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Task manager is running",
	})
}
