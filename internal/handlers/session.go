package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/services"
)

// SessionHandler signs users in and out.
type SessionHandler struct {
	render      *Renderer
	authService *services.AuthService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(render *Renderer, authService *services.AuthService) *SessionHandler {
	return &SessionHandler{
		render:      render,
		authService: authService,
	}
}

// New shows the sign-in form.
func (h *SessionHandler) New(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "session/new", gin.H{"Form": sessionForm{}})
}

// Create authenticates the user and initializes the session.
func (h *SessionHandler) Create(c *gin.Context) {
	var form sessionForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if errors.Is(err, services.ErrInvalidCredentials) {
		msg := "flash.session.create.error"
		if l := middleware.Localizer(c); l != nil {
			msg = l.T(msg)
		}
		h.render.flash(c, constants.FlashError, "flash.session.create.error")
		h.render.HTML(c, http.StatusUnprocessableEntity, "session/new", gin.H{
			"Form":   sessionForm{Email: form.Email},
			"Errors": map[string][]string{"email": {msg}},
		})
		return
	}
	if err != nil {
		h.render.Internal(c, err)
		return
	}

	if err := middleware.SignIn(c, user.ID); err != nil {
		h.render.Internal(c, err)
		return
	}
	h.render.Redirect(c, constants.FlashInfo, "flash.session.create.success", "root")
}

// Delete signs the user out.
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := middleware.SignOut(c); err != nil {
		h.render.Internal(c, err)
		return
	}
	h.render.Redirect(c, constants.FlashInfo, "flash.session.delete.success", "root")
}
