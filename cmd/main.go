package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/gradebook/config"
	"github.com/lshigami/gradebook/database"
	_ "github.com/lshigami/gradebook/docs" // Swagger docs - generated by swag init
	"github.com/lshigami/gradebook/internal/controller"
	"github.com/lshigami/gradebook/internal/logger"
	"github.com/lshigami/gradebook/internal/model"
	"github.com/lshigami/gradebook/internal/repository"
	"github.com/lshigami/gradebook/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Gradebook Marks API
// @version 1.0
// @description CRUD API for student exam marks with bulk upload.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Configure(cfg)

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(NewGinEngine),

		storeModule(cfg),

		fx.Provide(
			service.NewMarkService,
			controller.NewMarkController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// storeModule wires the repositories for the configured STORE_DRIVER.
func storeModule(cfg *config.Config) fx.Option {
	if cfg.Store == config.StoreMongo {
		return fx.Module("mongo",
			fx.Provide(
				database.NewMongoDatabase,
				repository.NewMarkMongoRepository,
				repository.NewStudentMongoRepository,
				repository.NewSubjectMongoRepository,
				repository.NewMongoHealthChecker,
			),
			fx.Invoke(EnsureMongoIndexes),
		)
	}
	return fx.Module("postgres",
		fx.Provide(
			database.NewDatabase,
			repository.NewMarkRepository,
			repository.NewStudentRepository,
			repository.NewSubjectRepository,
			repository.NewGormHealthChecker,
		),
		fx.Invoke(AutoMigrateDB),
	)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(logger.GinLogger())
	r.Use(gin.Recovery())
	r.Use(controller.ErrorHandler())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORS.AllowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// Browsers refuse credentialed requests when the allowed origin is "*".
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	markCtrl *controller.MarkController,
) {
	markCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Str("store", cfg.Store).Msgf("Gradebook API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Student{}, &model.Subject{}, &model.Mark{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func EnsureMongoIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repository.EnsureMarkIndexes(ctx, db); err != nil {
		log.Error().Err(err).Msg("Failed to create mongo indexes")
		return err
	}
	return nil
}
