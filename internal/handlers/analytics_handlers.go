package handlers

import (
	"errors"
	"net/http"

	"lexi2/internal/common"
	"lexi2/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lexi2/internal/logger"
)

// AnalyticsHandlers serves the public stats and accepts tracking events
type AnalyticsHandlers struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandlers creates a new analytics handlers instance
func NewAnalyticsHandlers(analyticsService services.AnalyticsService) *AnalyticsHandlers {
	return &AnalyticsHandlers{analyticsService: analyticsService}
}

// Stats returns the derived aggregate counters.
func (h *AnalyticsHandlers) Stats(c echo.Context) error {
	stats, err := h.analyticsService.GetStats(c.Request().Context())
	if err != nil {
		logger.Get().Error("failed to compute stats", zap.Error(err))
		return common.SendServerError(c, "Internal server error")
	}
	return c.JSON(http.StatusOK, stats)
}

// Track accepts an opaque JSON event, logs it, and drops it. Payloads beyond
// the documented size/depth limits are rejected.
func (h *AnalyticsHandlers) Track(c echo.Context) error {
	var event map[string]any
	if err := c.Bind(&event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.analyticsService.TrackEvent(c.Request().Context(), event); err != nil {
		if errors.Is(err, services.ErrEventTooLarge) || errors.Is(err, services.ErrEventTooDeep) {
			return common.SendClientError(c, err.Error())
		}
		logger.Get().Error("failed to track event", zap.Error(err))
		return common.SendServerError(c, "Internal server error")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Event tracked successfully",
	})
}
