// @title       Twilio Notifier API
// @version     1.0
// @description Sends SMS through Twilio and keeps a delivery log.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oggyb/twilio-notifier/internal/cache/redis"
	"github.com/oggyb/twilio-notifier/internal/config"
	"github.com/oggyb/twilio-notifier/internal/db"
	"github.com/oggyb/twilio-notifier/internal/db/gormdb"
	"github.com/oggyb/twilio-notifier/internal/handler"
	"github.com/oggyb/twilio-notifier/internal/logging"
	deliveryRepo "github.com/oggyb/twilio-notifier/internal/repository/gorm/delivery"
	routes "github.com/oggyb/twilio-notifier/internal/router"
	"github.com/oggyb/twilio-notifier/internal/server"
	"github.com/oggyb/twilio-notifier/internal/service"
	"github.com/oggyb/twilio-notifier/internal/sms"
)

func main() {
	rootCtx := context.Background()

	cfg := config.New()

	log, logCloser, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		JSON:       cfg.Log.JSON,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		logrus.Fatalf("failed to init logger: %v", err)
	}
	defer logCloser.Close()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer cache.Close()

	database, err := gormdb.New(cfg.PostgresDSN(), log)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer database.Close()

	// The timeout bounds every Twilio round-trip; the client itself sets none.
	httpClient := &http.Client{Timeout: cfg.Twilio.HTTPTimeout}
	sender := sms.NewTwilioClient(httpClient, log, sms.WithBaseURL(cfg.Twilio.BaseURL))

	notifier := service.NewNotificationService(
		service.Account{
			SID:        cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			FromNumber: cfg.Twilio.FromNumber,
		},
		sender,
		deliveryRepo.NewRepository(database.Conn()),
		cache,
		log,
	)

	deps := routes.AppDeps{
		Home: handler.NewHomeHandler(map[string]db.Pinger{
			"postgres": database,
			"redis":    cache,
		}),
		Message: handler.NewMessageHandler(notifier),
	}

	srv := server.New(cfg.Addr(), deps, log)

	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", cfg.Addr()).Info("HTTP server listening")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server graceful shutdown failed")
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("Shutdown complete")
}
