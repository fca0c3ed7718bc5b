package handlers

import (
	"net/http"
	"time"

	"lexi2/internal/caching"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// HealthHandlers handles liveness and readiness endpoints
type HealthHandlers struct {
	db       *pgxpool.Pool
	cacheSvc caching.CacheService
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(db *pgxpool.Pool, cacheSvc caching.CacheService) *HealthHandlers {
	return &HealthHandlers{db: db, cacheSvc: cacheSvc}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Root answers the API root with a simple liveness message.
func (h *HealthHandlers) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Lexi API is running",
		"status":  "healthy",
	})
}

// HealthCheck reports dependency health. Redis being down degrades the status
// without failing it; the API keeps serving without its cache.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()

	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
	}

	if err := h.db.Ping(ctx); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "degraded"
	} else {
		health.Services["database"] = "healthy"
	}

	if h.cacheSvc != nil {
		if err := h.cacheSvc.Ping(ctx); err != nil {
			health.Services["redis"] = "unhealthy"
			if health.Status == "healthy" {
				health.Status = "degraded"
			}
		} else {
			health.Services["redis"] = "healthy"
		}
	}

	status := http.StatusOK
	if health.Services["database"] == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, health)
}
