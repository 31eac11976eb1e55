package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/routein/core/internal/config"
	"github.com/routein/core/internal/database"
	"github.com/routein/core/internal/middleware"
	pkgcron "github.com/routein/core/internal/pkg/cron"
	pkgredis "github.com/routein/core/internal/pkg/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *mongo.Database
	rdb    *pkgredis.Client
	logger *zap.Logger
	loc    *time.Location
	cancel context.CancelFunc
	sched  *pkgcron.Scheduler
}

// New initializes the application: config → MongoDB → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	loc, err := applyRuntimeSettings(cfg, logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("database: %w", err)
	}

	rc, err := pkgredis.Connect(cfg.RedisURL)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("redis: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(buildCORSConfig(cfg)))

	sched := pkgcron.New()

	app := &App{
		cfg:    cfg,
		router: router,
		db:     db,
		rdb:    rc,
		logger: logger,
		loc:    loc,
		cancel: cancel,
		sched:  sched,
	}
	app.registerCronJobs(ctx)
	app.registerRoutes()

	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown cleans up background goroutines and connections.
func (a *App) Shutdown(ctx context.Context) {
	a.cancel()
	_ = database.Disconnect(ctx, a.db)
	_ = a.rdb.Close()
}

func (a *App) startTime() time.Time {
	return processStart
}

var processStart = time.Now()
