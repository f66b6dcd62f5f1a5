package database

import (
	"github.com/lshigami/gradebook/config"
	"github.com/lshigami/gradebook/internal/logger"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:                                   logger.NewGormLogger(cfg.Database.SlowThreshold),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error().Err(err).Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Failed to connect to postgres")
		return nil, err
	}
	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Connected to postgres")
	return db, nil
}
