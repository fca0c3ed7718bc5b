package handlers

import (
	"net/http"

	"lexi2/internal/common"
	"lexi2/internal/models"
	"lexi2/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lexi2/internal/logger"
)

const leadListLimit = 100

// LeadHandlers handles lead capture and listing
type LeadHandlers struct {
	leadService services.LeadService
}

// NewLeadHandlers creates a new lead handlers instance
func NewLeadHandlers(leadService services.LeadService) *LeadHandlers {
	return &LeadHandlers{leadService: leadService}
}

// LeadRequest represents a lead submission payload
type LeadRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Company   *string `json:"company"`
	Phone     *string `json:"phone"`
	Website   *string `json:"website"`
	Source    string  `json:"source"`
}

// Create upserts a lead keyed by email. UTM attribution is read from the
// query string on first submission only.
func (h *LeadHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req LeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := common.ValidateEmail(req.Email, "email"); err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}
	if err := common.ValidateOptionalString(req.FirstName, "first_name", 100); err != nil {
		return common.SendValidationError(c, "first_name", err.Error())
	}
	if err := common.ValidateOptionalString(req.LastName, "last_name", 100); err != nil {
		return common.SendValidationError(c, "last_name", err.Error())
	}
	if err := common.ValidateOptionalString(req.Company, "company", 200); err != nil {
		return common.SendValidationError(c, "company", err.Error())
	}
	if err := common.ValidateOptionalString(req.Phone, "phone", 50); err != nil {
		return common.SendValidationError(c, "phone", err.Error())
	}
	if err := common.ValidateOptionalString(req.Website, "website", 255); err != nil {
		return common.SendValidationError(c, "website", err.Error())
	}

	input := &services.LeadInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Phone:     req.Phone,
		Website:   req.Website,
		Source:    req.Source,
	}

	result, err := h.leadService.Submit(ctx, input, c.QueryParams())
	if err != nil {
		logger.Get().Error("failed to submit lead", zap.String("email", req.Email), zap.Error(err))
		return common.SendServerError(c, "Internal server error")
	}

	message := "Lead information updated successfully"
	if result.Created {
		message = "Lead created successfully"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": message,
		"lead_id": result.LeadID.String(),
	})
}

// List returns the most recent leads. Intended for admin use but carries no
// access control; see the route table.
func (h *LeadHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	leads, err := h.leadService.ListRecent(ctx, leadListLimit)
	if err != nil {
		logger.Get().Error("failed to list leads", zap.Error(err))
		return common.SendServerError(c, "Internal server error")
	}

	responses := make([]*models.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, lead.ToResponse())
	}

	return c.JSON(http.StatusOK, responses)
}
