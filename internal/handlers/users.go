package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/services"
)

// UserHandler serves registration and account management pages.
type UserHandler struct {
	render      *Renderer
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(render *Renderer, userService *services.UserService) *UserHandler {
	return &UserHandler{
		render:      render,
		userService: userService,
	}
}

// Index lists every user.
func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.render.Fail(c, err, failure{index: "root", flash: "flash.authError"})
		return
	}
	h.render.HTML(c, http.StatusOK, "users/index", gin.H{"Users": dto.ToUserViews(users)})
}

// New shows the registration form.
func (h *UserHandler) New(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "users/new", gin.H{"Form": userForm{}})
}

// Create registers a user.
func (h *UserHandler) Create(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	_, err := h.userService.CreateUser(c.Request.Context(), middleware.Actor(c), form.input())
	if err != nil {
		h.render.Fail(c, err, failure{
			index: "users",
			flash: "flash.users.create.error",
			form: func(errs map[string][]string) {
				h.render.HTML(c, http.StatusUnprocessableEntity, "users/new", gin.H{
					"Form":   form.redisplay(),
					"Errors": errs,
				})
			},
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.users.create.success", "root")
}

// Edit shows the account form of the signed-in user.
func (h *UserHandler) Edit(c *gin.Context) {
	id := middleware.IDParam(c)
	user, err := h.userService.GetUserForEdit(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.render.Fail(c, err, failure{index: "users", flash: "flash.accessDenied"})
		return
	}
	h.render.HTML(c, http.StatusOK, "users/edit", gin.H{
		"ID":   id,
		"Form": userFormFrom(user),
	})
}

// Update changes the signed-in user's account.
func (h *UserHandler) Update(c *gin.Context) {
	id := middleware.IDParam(c)
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	_, err := h.userService.UpdateUser(c.Request.Context(), middleware.Actor(c), id, form.input())
	if err != nil {
		h.render.Fail(c, err, failure{
			index:  "users",
			flash:  "flash.users.edit.error",
			denied: "flash.accessDenied",
			form: func(errs map[string][]string) {
				h.render.HTML(c, http.StatusUnprocessableEntity, "users/edit", gin.H{
					"ID":     id,
					"Form":   form.redisplay(),
					"Errors": errs,
				})
			},
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.users.edit.success", "users")
}

// Delete removes the signed-in user's account and ends the session.
func (h *UserHandler) Delete(c *gin.Context) {
	id := middleware.IDParam(c)
	actor := middleware.Actor(c)

	if err := h.userService.DeleteUser(c.Request.Context(), actor, id); err != nil {
		h.render.Fail(c, err, failure{
			index:    "users",
			flash:    "flash.users.delete.error",
			denied:   "flash.accessDenied",
			conflict: "flash.users.delete.inUse",
		})
		return
	}

	if actor.ID == id {
		if err := middleware.SignOut(c); err != nil {
			h.render.Internal(c, err)
			return
		}
	}
	h.render.Redirect(c, constants.FlashInfo, "flash.users.delete.success", "users")
}
