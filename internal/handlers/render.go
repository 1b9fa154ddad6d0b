package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/constants"
	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/routes"
)

// Renderer builds page data and the redirect/flash responses shared by all
// HTML handlers.
type Renderer struct {
	routes *routes.Registry
	log    *slog.Logger
}

// NewRenderer creates a new Renderer.
func NewRenderer(registry *routes.Registry, log *slog.Logger) *Renderer {
	return &Renderer{routes: registry, log: log}
}

// HTML renders a template with the layout data every page expects.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	page := gin.H{
		"L":        middleware.Localizer(c),
		"SignedIn": middleware.Actor(c).Authenticated(),
		"Flash":    r.flashes(c),
		"Errors":   map[string][]string{},
	}
	for k, v := range data {
		page[k] = v
	}
	c.HTML(status, name, page)
}

// Redirect queues a flash message and redirects to a named route.
func (r *Renderer) Redirect(c *gin.Context, kind, flashKey, routeName string, params ...any) {
	if flashKey != "" {
		r.flash(c, kind, flashKey)
	}
	path, err := r.routes.Reverse(routeName, params...)
	if err != nil {
		r.Internal(c, err)
		return
	}
	c.Redirect(http.StatusFound, path)
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(c *gin.Context) {
	r.HTML(c, http.StatusNotFound, "errors/not_found", nil)
}

// BadRequest answers a form body that could not be decoded.
func (r *Renderer) BadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	apperrors.BadRequest(c, "Invalid form data")
}

// Internal logs err and answers 500.
func (r *Renderer) Internal(c *gin.Context, err error) {
	_ = c.Error(err)
	r.log.Error("request failed",
		"request_id", c.GetString(constants.ContextKeyRequestID),
		"path", c.Request.URL.Path,
		"error", err,
	)
	msg := "Internal Server Error"
	if l := middleware.Localizer(c); l != nil {
		msg = l.T("views.errors.internal")
	}
	c.String(http.StatusInternalServerError, msg)
}

// FieldErrors translates a validation error into messages keyed by field.
func (r *Renderer) FieldErrors(c *gin.Context, verr *apperrors.ValidationError) map[string][]string {
	out := map[string][]string{}
	if verr == nil {
		return out
	}
	l := middleware.Localizer(c)
	for _, f := range verr.Fields {
		key := "errors." + f.Code
		msg := key
		if l != nil {
			if f.Limit > 0 {
				msg = l.T(key, f.Limit)
			} else {
				msg = l.T(key)
			}
		}
		out[f.Field] = append(out[f.Field], msg)
	}
	return out
}

// flash queues a message; a failed session write is recorded on the
// request for the request logger.
func (r *Renderer) flash(c *gin.Context, kind, key string) {
	if err := middleware.AddFlash(c, kind, key); err != nil {
		_ = c.Error(err)
	}
}

func (r *Renderer) flashes(c *gin.Context) map[string][]string {
	keys, err := middleware.Flashes(c)
	if err != nil {
		_ = c.Error(err)
	}
	l := middleware.Localizer(c)
	out := make(map[string][]string, len(keys))
	for kind, list := range keys {
		for _, key := range list {
			if l != nil {
				key = l.T(key)
			}
			out[kind] = append(out[kind], key)
		}
	}
	return out
}

// failure describes how a form flow answers each error kind.
type failure struct {
	// index is the route redirected to on conflict and denial.
	index string
	// flash is the generic error message key.
	flash string
	// denied overrides flash for authorization failures.
	denied string
	// conflict overrides flash for integrity vetoes.
	conflict string
	// form re-renders the submitted form; nil redirects like a conflict.
	form func(errs map[string][]string)
}

// Fail maps a service error onto the matching response.
func (r *Renderer) Fail(c *gin.Context, err error, f failure) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		var verr *apperrors.ValidationError
		errors.As(err, &verr)
		if f.form == nil {
			r.Redirect(c, constants.FlashError, f.flash, f.index)
			return
		}
		r.flash(c, constants.FlashError, f.flash)
		f.form(r.FieldErrors(c, verr))
	case apperrors.KindNotFound:
		r.NotFound(c)
	case apperrors.KindForbidden:
		key := f.denied
		if key == "" {
			key = f.flash
		}
		r.Redirect(c, constants.FlashError, key, f.index)
	case apperrors.KindConflict:
		key := f.conflict
		if key == "" {
			key = f.flash
		}
		r.Redirect(c, constants.FlashError, key, f.index)
	default:
		r.Internal(c, err)
	}
}
