package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger checks that the backing store answers.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping      Pinger
	driver    string
	startTime time.Time
	version   string
	logger    *zap.Logger
}

func NewHealthHandler(ping Pinger, driver string, startTime time.Time, version string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		ping:      ping,
		driver:    driver,
		startTime: startTime,
		version:   version,
		logger:    logger.Named("health"),
	}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  int64(time.Since(h.startTime).Seconds()),
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Warn("readiness check failed",
			zap.String("driver", h.driver),
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db": gin.H{
				"driver": h.driver,
				"status": "down",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  int64(time.Since(h.startTime).Seconds()),
		"db": gin.H{
			"driver": h.driver,
			"status": "up",
		},
	})
}
