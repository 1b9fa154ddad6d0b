package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yukikurage/task-manager/internal/config"
	"github.com/yukikurage/task-manager/internal/database"
	"github.com/yukikurage/task-manager/internal/logging"
	"github.com/yukikurage/task-manager/internal/server"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "taskmanager",
	Short: "Task manager web application",
	Long: `Serves the task manager: users, task statuses, labels and tasks
behind a cookie session. Configuration comes from the environment or a .env file.`,
	SilenceUsage: true,
	RunE:         runServer,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logging.New(cfg.LogLevel, cfg.LogFormat)

		db, err := connect(cfg, log)
		if err != nil {
			return err
		}
		return closeDB(db, database.Migrate(db, log))
	},
}

func main() {
	rootCmd.AddCommand(migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	db, err := connect(cfg, log)
	if err != nil {
		return err
	}

	if err := database.Migrate(db, log); err != nil {
		return closeDB(db, fmt.Errorf("failed to run migrations: %w", err))
	}

	srv, err := server.New(cfg, db, log, server.Options{})
	if err != nil {
		return closeDB(db, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return closeDB(db, srv.Run(ctx))
}

func connect(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg, log, logging.GormLogger(log, cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// closeDB releases the pool and passes err through.
func closeDB(db *gorm.DB, err error) error {
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
	return err
}
