package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/MentorBridge/backend/internal/constants"
	"github.com/gin-gonic/gin"
)

// Pinger is a connectivity check. The Mongo and Redis clients satisfy it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	mongo Pinger
	redis Pinger
}

func NewHealthHandler(mongo, redis Pinger) *HealthHandler {
	return &HealthHandler{
		mongo: mongo,
		redis: redis,
	}
}

// Health reports liveness of the API and its backing stores. The endpoint
// stays 200 with degraded component statuses so load balancers keep routing
// while operators see the failure.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	mongoStatus := h.componentStatus(ctx, h.mongo)
	redisStatus := h.componentStatus(ctx, h.redis)
	if mongoStatus != "up" || redisStatus != "up" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"version":   constants.AppVersion,
		"mongo":     mongoStatus,
		"redis":     redisStatus,
		"timestamp": time.Now().UTC(),
	})
}

func (h *HealthHandler) componentStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
