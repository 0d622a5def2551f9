package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendsense/backend/internal/categorizer"
	"github.com/spendsense/backend/internal/config"
	"github.com/spendsense/backend/internal/controllers"
	"github.com/spendsense/backend/internal/models"
	"github.com/spendsense/backend/internal/router"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Start the HTTP server",
	RunE:         serveCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.RunE = serveCmdF
}

func serveCmdF(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, c)
}

// serve runs the server until ctx is done.
func serve(ctx context.Context, c config.Config) error {
	apiURL, err := url.Parse(c.Server.URL)
	if err != nil {
		return fmt.Errorf("server.url is not a valid URL: %w", err)
	}

	// The categorizer is loaded before the database is touched, a reset must
	// not happen when the server cannot start.
	cat, err := categorizer.New(c.CategorizerOptions())
	if err != nil {
		return err
	}

	// Create data directory
	err = os.MkdirAll(filepath.Dir(c.Database.Path), os.ModePerm)
	if err != nil {
		return err
	}

	db, err := models.Connect(c.Database.Path)
	if err != nil {
		return fmt.Errorf("connecting to database %s: %w", c.Database.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if c.Database.Reset {
		log.Warn().Str("path", c.Database.Path).Msg("Resetting database, all data is deleted")
		if err := models.Reset(db); err != nil {
			return err
		}
	}

	opts := router.Options{
		CORSOrigins: c.Server.CORSOrigins,
		Pprof:       c.Server.Pprof,
		Version:     version,
	}

	r, teardown, err := router.Config(apiURL, opts)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(controllers.Controller{
		DB:               db,
		Categorizer:      categorizer.Instrument(cat, categorizer.Categorizations),
		WarningThreshold: decimal.NewFromFloat(c.Budget.WarningThreshold),
	}, r.Group("/"), opts)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("url", apiURL.String()).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("Server exited")
	return nil
}
