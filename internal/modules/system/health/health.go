package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/routein/core/internal/pkg/cron"
	redispkg "github.com/routein/core/internal/pkg/redis"
	"github.com/routein/core/internal/pkg/response"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRoutes mounts the public health check and the authenticated cron
// inspection endpoints.
func RegisterRoutes(rg *gin.RouterGroup, db *mongo.Database, rdb *redispkg.Client, sched *cron.Scheduler, authMW gin.HandlerFunc) {
	rg.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()

		dbOK := db != nil && db.Client().Ping(ctx, nil) == nil
		redisOK := rdb != nil && rdb.Ping(ctx) == nil

		status := "ok"
		code := http.StatusOK
		if !dbOK {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbOK,
			"redis":    redisOK,
		})
	})

	cronGroup := rg.Group("/health/cron", authMW)
	{
		cronGroup.GET("", func(c *gin.Context) {
			items := sched.List()
			byName := make(map[string]cron.ListItem, len(items))
			for _, item := range items {
				byName[item.Name] = item
			}
			response.OK(c, byName)
		})

		cronGroup.POST("/run/:name", func(c *gin.Context) {
			if err := sched.Run(c.Request.Context(), c.Param("name")); err != nil {
				response.NotFoundMsg(c, err.Error())
				return
			}
			response.OK(c, gin.H{"message": "job triggered"})
		})
	}
}
