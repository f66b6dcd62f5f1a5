package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
)

type gormHealthChecker struct {
	db *gorm.DB
}

func NewGormHealthChecker(db *gorm.DB) HealthChecker {
	return &gormHealthChecker{db: db}
}

func (h *gormHealthChecker) Name() string { return "postgres" }

func (h *gormHealthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type mongoHealthChecker struct {
	db *mongo.Database
}

func NewMongoHealthChecker(db *mongo.Database) HealthChecker {
	return &mongoHealthChecker{db: db}
}

func (h *mongoHealthChecker) Name() string { return "mongo" }

func (h *mongoHealthChecker) Ping(ctx context.Context) error {
	return h.db.Client().Ping(ctx, readpref.Primary())
}
