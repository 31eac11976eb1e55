package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/routein/core/internal/middleware"
	"github.com/routein/core/internal/modules/auth"
	"github.com/routein/core/internal/modules/storage/backup"
	"github.com/routein/core/internal/modules/study/analytics"
	"github.com/routein/core/internal/modules/study/session"
	"github.com/routein/core/internal/modules/system/health"
	"github.com/routein/core/internal/pkg/response"
)

const apiPrefix = "/api"

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "routein-core",
		"version":  "1.0.0",
		"homepage": "https://github.com/routein/core",
	}

	r.GET("/", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })

	// OptionalAuth runs first so the rate limiter and response cache can
	// tell authenticated traffic apart.
	r.Use(middleware.OptionalAuth(db))
	r.Use(middleware.RateLimit(a.rdb.Raw()))
	r.Use(middleware.Idempotence(a.rdb.Raw()))

	api := r.Group(apiPrefix)
	api.Use(middleware.HTTPCache(a.rdb.Raw(), middleware.HTTPCacheOptions{
		TTL:       15 * time.Second,
		Disable:   a.cfg.IsDev(),
		SkipPaths: httpCacheSkipPaths(apiPrefix),
	}))

	// Infrastructure
	health.RegisterRoutes(api, db, a.rdb, a.sched, authMW)

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(a.startTime()).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	api.GET("/clean_cache", authMW, func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), a.rdb.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
	})

	// Auth
	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	// Study sessions: lifecycle and aggregation
	session.NewHandler(session.NewService(db)).RegisterRoutes(api, authMW)
	analytics.NewHandler(analytics.NewService(db, a.loc)).RegisterRoutes(api, authMW)

	// Backups
	backup.NewHandler(backup.NewService(db, a.cfg)).RegisterRoutes(api, authMW)
}

func httpCacheSkipPaths(prefix string) []string {
	p := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	if p == "" {
		p = "/api"
	}
	return []string{
		p + "/uptime",
		p + "/clean_cache",
		p + "/auth/*",
		p + "/study-sessions*",
		p + "/backups*",
	}
}
