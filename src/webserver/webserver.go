// Package webserver exposes a small operator-facing status surface:
// liveness plus a snapshot of counters and collaborator health.
package webserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/emberpeak/supportbot/src/bot/components/counter"
)

func New(counters *counter.Store, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())

	started := time.Now()

	g.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	g.GET("/status", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		c.JSON(http.StatusOK, gin.H{
			"uptime":   time.Since(started).Round(time.Second).String(),
			"counters": counters.Snapshot(),
			"mysql":    pingMySQL(ctx, db),
			"redis":    pingRedis(ctx, rdb),
		})
	})

	return g
}

func pingMySQL(ctx context.Context, db *gorm.DB) bool {
	if db == nil {
		return false
	}
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

func pingRedis(ctx context.Context, rdb *redis.Client) bool {
	if rdb == nil {
		return false
	}
	return rdb.Ping(ctx).Err() == nil
}
