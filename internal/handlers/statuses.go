package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/services"
)

// StatusHandler serves the task status pages.
type StatusHandler struct {
	render        *Renderer
	statusService *services.StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(render *Renderer, statusService *services.StatusService) *StatusHandler {
	return &StatusHandler{
		render:        render,
		statusService: statusService,
	}
}

func (h *StatusHandler) Index(c *gin.Context) {
	statuses, err := h.statusService.ListStatuses(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.render.Fail(c, err, failure{index: "newSession", flash: "flash.authError"})
		return
	}
	h.render.HTML(c, http.StatusOK, "statuses/index", gin.H{"Items": statuses})
}

func (h *StatusHandler) New(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "statuses/new", gin.H{"Form": nameForm{}})
}

func (h *StatusHandler) Create(c *gin.Context) {
	var form nameForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	_, err := h.statusService.CreateStatus(c.Request.Context(), middleware.Actor(c), form.input())
	if err != nil {
		h.render.Fail(c, err, failure{
			index: "statuses",
			flash: "flash.statuses.create.error",
			form: func(errs map[string][]string) {
				h.render.HTML(c, http.StatusUnprocessableEntity, "statuses/new", gin.H{
					"Form":   form,
					"Errors": errs,
				})
			},
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.statuses.create.success", "statuses")
}

func (h *StatusHandler) Edit(c *gin.Context) {
	id := middleware.IDParam(c)
	status, err := h.statusService.GetStatus(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.render.Fail(c, err, failure{index: "statuses", flash: "flash.statuses.edit.error"})
		return
	}
	h.render.HTML(c, http.StatusOK, "statuses/edit", gin.H{
		"ID":   id,
		"Form": nameForm{Name: status.Name},
	})
}

func (h *StatusHandler) Update(c *gin.Context) {
	id := middleware.IDParam(c)
	var form nameForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	_, err := h.statusService.UpdateStatus(c.Request.Context(), middleware.Actor(c), id, form.input())
	if err != nil {
		h.render.Fail(c, err, failure{
			index: "statuses",
			flash: "flash.statuses.edit.error",
			form: func(errs map[string][]string) {
				h.render.HTML(c, http.StatusUnprocessableEntity, "statuses/edit", gin.H{
					"ID":     id,
					"Form":   form,
					"Errors": errs,
				})
			},
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.statuses.edit.success", "statuses")
}

// Delete removes a status no task refers to.
func (h *StatusHandler) Delete(c *gin.Context) {
	err := h.statusService.DeleteStatus(c.Request.Context(), middleware.Actor(c), middleware.IDParam(c))
	if err != nil {
		h.render.Fail(c, err, failure{
			index:    "statuses",
			flash:    "flash.statuses.delete.error",
			conflict: "flash.statuses.delete.inUse",
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.statuses.delete.success", "statuses")
}
