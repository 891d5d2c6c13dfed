package main

import (
	"github.com/sirupsen/logrus"

	"github.com/oggyb/twilio-notifier/internal/config"
	"github.com/oggyb/twilio-notifier/internal/db/gormdb"
	"github.com/oggyb/twilio-notifier/internal/logging"
	deliveryRepo "github.com/oggyb/twilio-notifier/internal/repository/gorm/delivery"
)

func main() {
	cfg := config.New()

	log, closer, err := logging.New(logging.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if err != nil {
		logrus.Fatalf("[Migrate] failed to init logger: %v", err)
	}
	defer closer.Close()

	database, err := gormdb.New(cfg.PostgresDSN(), log)
	if err != nil {
		log.Fatalf("[Migrate] failed to connect to database: %v", err)
	}
	defer database.Close()

	log.Infof("[Migrate] Connected to database %q", cfg.DB.Name)

	if err := deliveryRepo.Migrate(database.Conn()); err != nil {
		log.Fatalf("[Migrate] AutoMigrate failed: %v", err)
	}

	log.Info("[Migrate] Deliveries table is up to date.")
}
