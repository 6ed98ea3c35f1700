package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// Logger is safe to use before InitLogger runs (tests, seeders).
var Logger = zap.NewNop()

func InitLogger() {
	var (
		l   *zap.Logger
		err error
	)

	if os.Getenv("APP_ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	Logger = l
}
