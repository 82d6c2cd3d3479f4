package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinadigital/webquest/internal/config"
	"github.com/tinadigital/webquest/internal/database"
	"github.com/tinadigital/webquest/internal/email"
	"github.com/tinadigital/webquest/internal/handler"
	"github.com/tinadigital/webquest/internal/logger"
	"github.com/tinadigital/webquest/internal/middleware"
	"github.com/tinadigital/webquest/internal/questionnaire"
	"github.com/tinadigital/webquest/internal/router"
	"github.com/tinadigital/webquest/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", handler.Version).Msg("starting questionnaire server")

	// Initialize email sender
	sender, err := newSender(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.Email.Provider).Msg("failed to initialize email sender")
	}
	log.Info().
		Str("provider", cfg.Email.Provider).
		Str("from", cfg.Email.From).
		Str("to", cfg.Email.To).
		Msg("email sender initialized")

	// Connect to Redis only when rate limiting is on
	var rdb *database.Redis
	if cfg.RateLimit.Enabled {
		rdb, err = database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Int("limit", cfg.RateLimit.Limit).Dur("window", cfg.RateLimit.Window).Msg("rate limiting enabled")
	}

	submissionSvc := service.NewSubmissionService(sender, cfg, log)
	h := handler.New(rdb, log, cfg, submissionSvc, questionnaire.Catalog())
	mw := middleware.New(rdb, log, cfg)
	r := router.New(h, mw, cfg)

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func newSender(ctx context.Context, cfg *config.Config) (email.Sender, error) {
	switch cfg.Email.Provider {
	case "resend":
		return email.NewResendSender(email.ResendConfig{
			APIKey:  cfg.Email.Resend.APIKey,
			BaseURL: cfg.Email.Resend.BaseURL,
		})
	case "gmail":
		return email.NewGmailSender(ctx, email.GmailConfig{
			CredentialsJSON: cfg.Email.Gmail.CredentialsJSON,
			ClientID:        cfg.Email.Gmail.ClientID,
			ClientSecret:    cfg.Email.Gmail.ClientSecret,
			RefreshToken:    cfg.Email.Gmail.RefreshToken,
			SenderAddress:   cfg.Email.Gmail.SenderAddress,
		})
	case "log":
		return &email.RecordingSender{ID: "local"}, nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Email.Provider)
	}
}
