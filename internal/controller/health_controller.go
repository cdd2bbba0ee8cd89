package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// HealthController 存活与就绪探针
type HealthController struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{db: db, redis: rdb}
}

func (c *HealthController) Check(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}

	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(checkCtx)
	}
	if err != nil {
		status = http.StatusServiceUnavailable
		checks["database"] = "down"
	} else {
		checks["database"] = "up"
	}

	if c.redis != nil {
		if err := c.redis.Ping(checkCtx).Err(); err != nil {
			// 缓存掉线只降级不拒绝服务
			checks["redis"] = "down"
		} else {
			checks["redis"] = "up"
		}
	}

	ctx.JSON(status, gin.H{
		"status": checks,
		"time":   time.Now().Format(time.RFC3339),
	})
}
