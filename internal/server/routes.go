package server

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/handlers"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/routes"
)

type handlerSet struct {
	welcome  *handlers.WelcomeHandler
	users    *handlers.UserHandler
	session  *handlers.SessionHandler
	statuses *handlers.StatusHandler
	labels   *handlers.LabelHandler
	tasks    *handlers.TaskHandler
	drafts   *handlers.DraftHandler
	render   *handlers.Renderer
}

// router registers each route with gin and records its name for reversal.
type router struct {
	registry *routes.Registry
	err      error
}

func (r *router) handle(g gin.IRoutes, base, method, name, path string, chain ...gin.HandlerFunc) {
	if r.err != nil {
		return
	}
	if err := r.registry.Add(name, base+path); err != nil {
		r.err = err
		return
	}
	g.Handle(method, path, chain...)
}

func registerRoutes(engine *gin.Engine, registry *routes.Registry, h *handlerSet) error {
	r := &router{registry: registry}

	// A malformed :id can never match a record.
	id := middleware.RequireIDParam(h.render.NotFound)

	// The sign-in path is fixed before any protected group is built.
	if err := registry.Add("newSession", "/session/new"); err != nil {
		return err
	}
	auth := middleware.RequireAuth(registry.MustReverse("newSession"))

	r.handle(engine, "", "GET", "root", "/", h.welcome.Index)
	r.handle(engine, "", "GET", "health", "/health", h.welcome.Health)

	session := engine.Group("/session")
	{
		r.handle(session, "/session", "GET", "newSession", "/new", h.session.New)
		r.handle(session, "/session", "POST", "createSession", "", h.session.Create)
		r.handle(session, "/session", "DELETE", "deleteSession", "", h.session.Delete)
	}

	users := engine.Group("/users")
	{
		r.handle(users, "/users", "GET", "users", "", h.users.Index)
		r.handle(users, "/users", "GET", "newUser", "/new", h.users.New)
		r.handle(users, "/users", "POST", "createUser", "", h.users.Create)
		r.handle(users, "/users", "GET", "editUser", "/:id/edit", auth, id, h.users.Edit)
		r.handle(users, "/users", "PATCH", "updateUser", "/:id", auth, id, h.users.Update)
		r.handle(users, "/users", "DELETE", "deleteUser", "/:id", auth, id, h.users.Delete)
	}

	statuses := engine.Group("/statuses")
	statuses.Use(auth)
	{
		r.handle(statuses, "/statuses", "GET", "statuses", "", h.statuses.Index)
		r.handle(statuses, "/statuses", "GET", "newStatus", "/new", h.statuses.New)
		r.handle(statuses, "/statuses", "POST", "createStatus", "", h.statuses.Create)
		r.handle(statuses, "/statuses", "GET", "editStatus", "/:id/edit", id, h.statuses.Edit)
		r.handle(statuses, "/statuses", "PATCH", "updateStatus", "/:id", id, h.statuses.Update)
		r.handle(statuses, "/statuses", "DELETE", "deleteStatus", "/:id", id, h.statuses.Delete)
	}

	labels := engine.Group("/labels")
	labels.Use(auth)
	{
		r.handle(labels, "/labels", "GET", "labels", "", h.labels.Index)
		r.handle(labels, "/labels", "GET", "newLabel", "/new", h.labels.New)
		r.handle(labels, "/labels", "POST", "createLabel", "", h.labels.Create)
		r.handle(labels, "/labels", "GET", "editLabel", "/:id/edit", id, h.labels.Edit)
		r.handle(labels, "/labels", "PATCH", "updateLabel", "/:id", id, h.labels.Update)
		r.handle(labels, "/labels", "DELETE", "deleteLabel", "/:id", id, h.labels.Delete)
	}

	tasks := engine.Group("/tasks")
	tasks.Use(auth)
	{
		r.handle(tasks, "/tasks", "GET", "tasks", "", h.tasks.Index)
		r.handle(tasks, "/tasks", "GET", "newTask", "/new", h.tasks.New)
		r.handle(tasks, "/tasks", "POST", "createTask", "", h.tasks.Create)
		r.handle(tasks, "/tasks", "POST", "taskDrafts", "/drafts", h.drafts.Suggest)
		r.handle(tasks, "/tasks", "GET", "task", "/:id", id, h.tasks.Show)
		r.handle(tasks, "/tasks", "GET", "editTask", "/:id/edit", id, h.tasks.Edit)
		r.handle(tasks, "/tasks", "PATCH", "updateTask", "/:id", id, h.tasks.Update)
		r.handle(tasks, "/tasks", "DELETE", "deleteTask", "/:id", id, h.tasks.Delete)
	}

	return r.err
}
