package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type Config struct {
	Server   Server
	Log      Log
	Store    string
	Database Database
	Mongo    Mongo
	CORS     CORS
}

type Server struct {
	Port    string
	GinMode string
}

type Log struct {
	Level  string
	Format string
}

type Database struct {
	Host          string
	Port          string
	User          string
	Password      string `json:"-"`
	Name          string
	SSLMode       string
	SlowThreshold time.Duration
}

type Mongo struct {
	URI      string `json:"-"`
	Database string
}

type CORS struct {
	AllowOrigins []string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Format = viper.GetString("LOG_FORMAT")
	config.Store = strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER")))

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.SlowThreshold = viper.GetDuration("DATABASE_SLOW_THRESHOLD")

	config.Mongo.URI = viper.GetString("MONGO_URI")
	config.Mongo.Database = viper.GetString("MONGO_DATABASE")

	config.CORS.AllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("STORE_DRIVER", StorePostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_SLOW_THRESHOLD", "200ms")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "school")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
}

func (c *Config) validate() error {
	switch c.Store {
	case StorePostgres:
		if c.Database.Name == "" {
			return fmt.Errorf("DATABASE_NAME is required when STORE_DRIVER=%s", StorePostgres)
		}
	case StoreMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DATABASE are required when STORE_DRIVER=%s", StoreMongo)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q, expected %s or %s", c.Store, StorePostgres, StoreMongo)
	}
	return nil
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
