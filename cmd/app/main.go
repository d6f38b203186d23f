package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcel/cmd"
	"parcel/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatalf("parcel: %v", err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "parcel",
		Short:         "Parcel booking service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(quoteCmd())
	root.AddCommand(tokenCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the booking API and relay booking events",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	if err = cfg.ValidateServe(); err != nil {
		return err
	}

	logger, err := cmd.NewLogger(cfg)
	if err != nil {
		return err
	}

	db, err := cmd.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cmd.CloseDB(db); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(cfg, db, logger)

	e, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}

	if cfg.AMQPURL == "" {
		logger.Warn("AMQP_URL is not set, booking events stay in the outbox")
	} else {
		jobManager, closeBroker, jobErr := app.CreateJobManager()
		if jobErr != nil {
			return jobErr
		}
		defer func() {
			_ = closeBroker()
		}()

		if jobErr = jobManager.StartAll(); jobErr != nil {
			return jobErr
		}
		defer jobManager.StopAll()
	}

	serveErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.Info("http server listening", "addr", addr)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			db, err := cmd.OpenDB(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = cmd.CloseDB(db)
			}()

			if err = postgres.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), "schema is up to date")
			return err
		},
	}
}
