package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/dto"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/policy"
	"github.com/yukikurage/task-manager/internal/services"
	"github.com/yukikurage/task-manager/internal/utils"
)

// TaskHandler serves the task pages.
type TaskHandler struct {
	render        *Renderer
	taskService   *services.TaskService
	statusService *services.StatusService
	labelService  *services.LabelService
	userService   *services.UserService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(
	render *Renderer,
	taskService *services.TaskService,
	statusService *services.StatusService,
	labelService *services.LabelService,
	userService *services.UserService,
) *TaskHandler {
	return &TaskHandler{
		render:        render,
		taskService:   taskService,
		statusService: statusService,
		labelService:  labelService,
		userService:   userService,
	}
}

// choices loads the options of the status, executor and label selects.
func (h *TaskHandler) choices(ctx context.Context, actor policy.Actor) (gin.H, error) {
	statuses, err := h.statusService.ListStatuses(ctx, actor)
	if err != nil {
		return nil, err
	}
	labels, err := h.labelService.ListLabels(ctx, actor)
	if err != nil {
		return nil, err
	}
	users, err := h.userService.ListUsers(ctx, actor)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"Statuses": statuses,
		"Labels":   labels,
		"Users":    dto.ToUserViews(users),
	}, nil
}

// page renders a template with the select options merged into data.
func (h *TaskHandler) page(c *gin.Context, status int, name string, data gin.H) {
	page, err := h.choices(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.render.Internal(c, err)
		return
	}
	for k, v := range data {
		page[k] = v
	}
	h.render.HTML(c, status, name, page)
}

// Index lists tasks narrowed by the status, executor, label and
// isCreatorUser query parameters. Malformed values are ignored.
func (h *TaskHandler) Index(c *gin.Context) {
	input := services.ListTasksInput{
		StatusID:   utils.QueryID(c, "status"),
		ExecutorID: utils.QueryID(c, "executor"),
		LabelID:    utils.QueryID(c, "label"),
		OnlyMine:   utils.QueryFlag(c, "isCreatorUser"),
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), middleware.Actor(c), input)
	if err != nil {
		h.render.Fail(c, err, failure{index: "newSession", flash: "flash.authError"})
		return
	}

	h.page(c, http.StatusOK, "tasks/index", gin.H{
		"Tasks": tasks,
		"Filter": taskFilter{
			Status:        c.Query("status"),
			Executor:      c.Query("executor"),
			Label:         c.Query("label"),
			IsCreatorUser: input.OnlyMine,
		},
	})
}

// Show displays one task with its labels.
func (h *TaskHandler) Show(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), middleware.Actor(c), middleware.IDParam(c))
	if err != nil {
		h.render.Fail(c, err, failure{index: "tasks", flash: "flash.notFound"})
		return
	}
	h.render.HTML(c, http.StatusOK, "tasks/show", gin.H{"Task": task})
}

func (h *TaskHandler) New(c *gin.Context) {
	h.page(c, http.StatusOK, "tasks/new", gin.H{"Form": taskForm{}})
}

func (h *TaskHandler) Create(c *gin.Context) {
	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	_, err := h.taskService.CreateTask(c.Request.Context(), middleware.Actor(c), form.input())
	if err != nil {
		h.render.Fail(c, err, failure{
			index: "tasks",
			flash: "flash.tasks.create.error",
			form: func(errs map[string][]string) {
				h.page(c, http.StatusUnprocessableEntity, "tasks/new", gin.H{
					"Form":   form,
					"Errors": errs,
				})
			},
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.tasks.create.success", "tasks")
}

func (h *TaskHandler) Edit(c *gin.Context) {
	id := middleware.IDParam(c)
	task, labelIDs, err := h.taskService.GetTaskForEdit(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.render.Fail(c, err, failure{index: "tasks", flash: "flash.tasks.edit.error"})
		return
	}
	h.page(c, http.StatusOK, "tasks/edit", gin.H{
		"ID":   id,
		"Form": taskFormFrom(task, labelIDs),
	})
}

func (h *TaskHandler) Update(c *gin.Context) {
	id := middleware.IDParam(c)
	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		h.render.BadRequest(c, err)
		return
	}

	_, err := h.taskService.UpdateTask(c.Request.Context(), middleware.Actor(c), id, form.input())
	if err != nil {
		h.render.Fail(c, err, failure{
			index: "tasks",
			flash: "flash.tasks.edit.error",
			form: func(errs map[string][]string) {
				h.page(c, http.StatusUnprocessableEntity, "tasks/edit", gin.H{
					"ID":     id,
					"Form":   form,
					"Errors": errs,
				})
			},
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.tasks.edit.success", "tasks")
}

// Delete removes a task; only its creator may do so.
func (h *TaskHandler) Delete(c *gin.Context) {
	err := h.taskService.DeleteTask(c.Request.Context(), middleware.Actor(c), middleware.IDParam(c))
	if err != nil {
		h.render.Fail(c, err, failure{
			index:  "tasks",
			flash:  "flash.tasks.delete.error",
			denied: "flash.tasks.delete.accessDenied",
		})
		return
	}

	h.render.Redirect(c, constants.FlashInfo, "flash.tasks.delete.success", "tasks")
}
