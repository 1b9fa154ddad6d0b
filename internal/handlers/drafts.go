package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/services"
)

// DraftHandler exposes task suggestions as JSON.
type DraftHandler struct {
	draftService *services.DraftService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService *services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Suggest splits the posted text into unsaved task drafts.
func (h *DraftHandler) Suggest(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	drafts, err := h.draftService.SuggestTasks(c.Request.Context(), middleware.Actor(c), req.Text)
	switch {
	case errors.Is(err, services.ErrDraftsNotConfigured):
		apperrors.ServiceUnavailable(c, "Task drafts are not configured")
		return
	case errors.Is(err, services.ErrNoDraftsGenerated):
		apperrors.RespondWithError(c, http.StatusUnprocessableEntity,
			apperrors.NewAPIError(apperrors.ErrCodeInvalidInput, "No tasks could be extracted from the text"))
		return
	case err != nil:
		_ = c.Error(err)
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"drafts": drafts})
}
