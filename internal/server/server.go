// Package server wires repositories, services and handlers into the HTTP
// application.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-manager/internal/config"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/handlers"
	"github.com/yukikurage/task-manager/internal/i18n"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/routes"
	"github.com/yukikurage/task-manager/internal/secure"
	"github.com/yukikurage/task-manager/internal/services"
	"github.com/yukikurage/task-manager/internal/views"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Server is the configured HTTP application.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	routes  *routes.Registry
	handler http.Handler
}

// Options carries collaborators that tests replace.
type Options struct {
	// Store overrides the session store chosen by SESSION_STORE.
	Store sessions.Store
	// Drafts overrides the OpenAI backed draft service.
	Drafts *services.DraftService
}

// New builds the router and every dependency behind it.
func New(cfg *config.Config, db *gorm.DB, log *slog.Logger, opts Options) (*Server, error) {
	store := opts.Store
	if store == nil {
		var err error
		if store, err = NewSessionStore(cfg); err != nil {
			return nil, err
		}
	}

	bundle, err := i18n.NewBundle(cfg.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	hasher, err := secure.NewHasher(cfg.PasswordHasher)
	if err != nil {
		return nil, err
	}

	drafts := opts.Drafts
	if drafts == nil {
		drafts = services.NewDraftService(cfg.OpenAIAPIKey)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	integrity := services.NewIntegrityGuard(taskRepo)
	userService := services.NewUserService(userRepo, hasher, integrity)
	authService := services.NewAuthService(userRepo, hasher)
	statusService := services.NewStatusService(statusRepo, integrity)
	labelService := services.NewLabelService(labelRepo)
	taskService := services.NewTaskService(taskRepo, statusRepo, labelRepo, userRepo)

	registry := routes.NewRegistry()
	render := handlers.NewRenderer(registry, log)

	h := &handlerSet{
		welcome:  handlers.NewWelcomeHandler(render),
		users:    handlers.NewUserHandler(render, userService),
		session:  handlers.NewSessionHandler(render, authService),
		statuses: handlers.NewStatusHandler(render, statusService),
		labels:   handlers.NewLabelHandler(render, labelService),
		tasks:    handlers.NewTaskHandler(render, taskService, statusService, labelService, userService),
		drafts:   handlers.NewDraftHandler(drafts),
		render:   render,
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(sessions.Sessions(constants.SessionCookieName, store))
	engine.Use(middleware.Localize(bundle))
	engine.Use(middleware.LoadSession())

	if err := registerRoutes(engine, registry, h); err != nil {
		return nil, err
	}

	tmpl, err := views.Load(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	engine.NoRoute(render.NotFound)

	return &Server{
		cfg:     cfg,
		log:     log,
		routes:  registry,
		handler: middleware.MethodOverride(engine),
	}, nil
}

// Handler is the root http.Handler, method override included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Routes exposes the named route table.
func (s *Server) Routes() *routes.Registry {
	return s.routes
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// NewSessionStore returns the cookie or Redis store selected by SESSION_STORE.
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionStore {
	case "", "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	case "redis":
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		rs, err := redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // username (empty for default user)
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = rs
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
