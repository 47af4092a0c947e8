package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/orghandbook/orghandbook-api/internal/config"
	"github.com/orghandbook/orghandbook-api/internal/database"
	"github.com/orghandbook/orghandbook-api/internal/logger"
	"github.com/orghandbook/orghandbook-api/internal/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database and create the schema before accepting requests
	if err := database.Connect(cfg); err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}
	zapLogger.Info("Database ready", zap.String("url", cfg.Database.URL))

	r := router.New(database.GetDB(), cfg.Security.APIKeyHeader, cfg.Security.APIKey)

	zapLogger.Info("Server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
