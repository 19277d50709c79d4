package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdg-garage/wedding-rsvp/internal/auth"
	"github.com/gdg-garage/wedding-rsvp/internal/database"
	"github.com/gdg-garage/wedding-rsvp/internal/handlers"
	"github.com/gdg-garage/wedding-rsvp/internal/logging"
	"github.com/gdg-garage/wedding-rsvp/internal/notifier"
	"github.com/gdg-garage/wedding-rsvp/internal/rsvp"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the RSVP web server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load Configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	// Connect to Database
	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		return err
	}

	mailSender, err := notifier.NewMailSender(cfg)
	if err != nil {
		return fmt.Errorf("setting up mail: %w", err)
	}

	var organisers notifier.Notifier
	if cfg.DiscordBotToken != "" && cfg.DiscordNotificationsChannelID != "" {
		session, err := notifier.NewDiscordSession(cfg.DiscordBotToken)
		if err != nil {
			logger.Warn("Discord notifier not initialized", "error", err)
		} else {
			organisers = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Handlers
	service := rsvp.NewService(db, mailSender, organisers, cfg.ManageURL)
	authHandler := auth.NewAuthHandler(cfg)
	rsvpHandler := handlers.NewRSVPHandler(service, cfg, authHandler)

	// Initialize Router
	r := chi.NewRouter()
	handlers.RegisterRoutes(r, authHandler, rsvpHandler, cfg.EnableDocs)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.Port, "deadline", cfg.RSVPDeadline, "public_url", cfg.PublicURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
