package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/services"
)

// LabelHandler serves the label pages.
type LabelHandler struct {
	render       *Renderer
	labelService *services.LabelService
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(render *Renderer, labelService *services.LabelService) *LabelHandler {
	return &LabelHandler{
		render:       render,
		labelService: labelService,
	}
}

func (h *LabelHandler) Index(c *gin.Context) {
	labels, err := h.labelService.ListLabels(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.render.Fail(c, err, failure{index: "newSession", flash: "flash.authError"})
		return
	}
	h.render.HTML(c, http.StatusOK, "labels/index", gin.H{"Items": labels})
}

func (h *LabelHandler) New(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "labels/new", gin.H{"Form": nameForm{}})
}

func (h *LabelHandler) Create(c *gin.Context) {
	var form nameForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	_, err := h.labelService.CreateLabel(c.Request.Context(), middleware.Actor(c), form.input())
	if err != nil {
		h.render.Fail(c, err, failure{
			index: "labels",
			flash: "flash.labels.create.error",
			form: func(errs map[string][]string) {
				h.render.HTML(c, http.StatusUnprocessableEntity, "labels/new", gin.H{
					"Form":   form,
					"Errors": errs,
				})
			},
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.labels.create.success", "labels")
}

func (h *LabelHandler) Edit(c *gin.Context) {
	id := middleware.IDParam(c)
	label, err := h.labelService.GetLabel(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.render.Fail(c, err, failure{index: "labels", flash: "flash.labels.edit.error"})
		return
	}
	h.render.HTML(c, http.StatusOK, "labels/edit", gin.H{
		"ID":   id,
		"Form": nameForm{Name: label.Name},
	})
}

func (h *LabelHandler) Update(c *gin.Context) {
	id := middleware.IDParam(c)
	var form nameForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	_, err := h.labelService.UpdateLabel(c.Request.Context(), middleware.Actor(c), id, form.input())
	if err != nil {
		h.render.Fail(c, err, failure{
			index: "labels",
			flash: "flash.labels.edit.error",
			form: func(errs map[string][]string) {
				h.render.HTML(c, http.StatusUnprocessableEntity, "labels/edit", gin.H{
					"ID":     id,
					"Form":   form,
					"Errors": errs,
				})
			},
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.labels.edit.success", "labels")
}

// Delete removes a label and detaches it from its tasks.
func (h *LabelHandler) Delete(c *gin.Context) {
	err := h.labelService.DeleteLabel(c.Request.Context(), middleware.Actor(c), middleware.IDParam(c))
	if err != nil {
		h.render.Fail(c, err, failure{index: "labels", flash: "flash.labels.delete.error"})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.labels.delete.success", "labels")
}
