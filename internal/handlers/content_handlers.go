package handlers

import (
	"net/http"

	"lexi2/internal/services"

	"github.com/labstack/echo/v4"
)

// ContentHandlers serves the static marketing content
type ContentHandlers struct {
	contentService services.ContentService
}

// NewContentHandlers creates a new content handlers instance
func NewContentHandlers(contentService services.ContentService) *ContentHandlers {
	return &ContentHandlers{contentService: contentService}
}

// Testimonials returns active testimonials in display order. Storage failures
// are absorbed by the service, which serves fallback content instead.
func (h *ContentHandlers) Testimonials(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contentService.GetTestimonials(c.Request().Context()))
}

// FAQs returns active FAQs in display order, with the same fallback behavior.
func (h *ContentHandlers) FAQs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contentService.GetFAQs(c.Request().Context()))
}
