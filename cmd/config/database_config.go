package config

import (
	"fmt"

	"gorm.io/gorm/logger"

	"restaurant-inventory/internal/utils"
	"restaurant-inventory/pkg/database"
)

func ConnectDB(cfg utils.Config, observer database.Observer) (*database.Manager, error) {
	level := logger.Warn
	if cfg.LogLevel == "debug" {
		level = logger.Info
	}

	db, err := database.Open(database.Config{
		Driver:   cfg.DBDriver,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		Path:     cfg.DBPath,
		SSLMode:  cfg.DBSSLMode,
		LogLevel: level,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return database.NewManager(db, database.Options{
		PoolSize:       cfg.PoolSize(),
		AcquireTimeout: cfg.AcquireTimeout(),
		Observer:       observer,
	})
}
