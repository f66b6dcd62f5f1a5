package database

import (
	"context"
	"time"

	"github.com/lshigami/gradebook/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const mongoConnectTimeout = 10 * time.Second

// NewMongoDatabase connects to MongoDB and disconnects when the app stops.
func NewMongoDatabase(lc fx.Lifecycle, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to mongo")
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error().Err(err).Msg("Failed to ping mongo")
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("Connected to mongo")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Disconnecting from mongo")
			return client.Disconnect(ctx)
		},
	})
	return client.Database(cfg.Mongo.Database), nil
}
