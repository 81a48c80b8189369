package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
	"github.com/DhruvDewan08/course-recommendation-api/internal/database"
	"github.com/DhruvDewan08/course-recommendation-api/internal/handlers"
	"github.com/DhruvDewan08/course-recommendation-api/internal/middleware"
	"github.com/DhruvDewan08/course-recommendation-api/internal/messaging"
	"github.com/DhruvDewan08/course-recommendation-api/internal/services"
)

type App struct {
	config    *config.Config
	logger    *logrus.Logger
	cache     *redis.Client
	publisher *messaging.Publisher
	services  *services.Services
	handlers  *handlers.Handlers
	router    *gin.Engine
}

// New wires the application and loads the trained artifacts. A load failure
// is not returned as an error: the service starts in the Failed state,
// refuses recommendation requests, and reports unhealthy, per the serving
// contract.
func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	if cfg.Cache.Enabled {
		cache, err := database.NewRedisClient(cfg, app.logger)
		if err != nil {
			return nil, err
		}
		app.cache = cache
	}

	var events services.EventPublisher
	if cfg.Events.Enabled {
		app.publisher = messaging.NewPublisher(cfg, app.logger)
		events = app.publisher
	}

	app.services = services.New(cfg, app.logger, app.cache, events)
	app.handlers = handlers.New(cfg, app.logger, app.services)
	app.setupRouter()

	// One-time initialization barrier: either Ready or Failed before the
	// first request is accepted.
	if err := app.services.Recommendation.Load(context.Background()); err != nil {
		app.logger.WithError(err).Error("Starting in failed state, all requests will be refused")
	}

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.WithError(err).Error("Error closing event publisher")
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.WithError(err).Error("Error closing cache connection")
			return err
		}
	}

	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter() {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS())

	router.GET("/", a.handlers.Health.Root)
	router.GET("/health", a.handlers.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	recommendations := router.Group("/recommendations")
	if a.config.Auth.Enabled {
		recommendations.Use(middleware.Auth(a.config.Auth.JWTSecret, a.logger))
	}
	recommendations.POST("", a.handlers.Recommendation.Recommend)

	a.router = router
}
