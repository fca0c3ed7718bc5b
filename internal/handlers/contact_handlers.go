package handlers

import (
	"net/http"

	"lexi2/internal/common"
	"lexi2/internal/models"
	"lexi2/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lexi2/internal/logger"
)

const contactListLimit = 100

// ContactHandlers handles contact form submissions
type ContactHandlers struct {
	contactRepo repositories.ContactRepository
}

// NewContactHandlers creates a new contact handlers instance
func NewContactHandlers(contactRepo repositories.ContactRepository) *ContactHandlers {
	return &ContactHandlers{contactRepo: contactRepo}
}

// ContactRequest represents a contact message payload
type ContactRequest struct {
	Name    string             `json:"name" validate:"required"`
	Email   string             `json:"email" validate:"required,email"`
	Subject *string            `json:"subject"`
	Message string             `json:"message" validate:"required"`
	Type    models.ContactType `json:"type"`
}

// Create stores a new contact message. Messages are append-only.
func (h *ContactHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}
	if err := common.ValidateEmail(req.Email, "email"); err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}
	if err := common.ValidateRequiredString(req.Message, "message"); err != nil {
		return common.SendValidationError(c, "message", err.Error())
	}
	if err := common.ValidateOptionalString(req.Subject, "subject", 200); err != nil {
		return common.SendValidationError(c, "subject", err.Error())
	}

	contactType := req.Type
	switch contactType {
	case models.ContactSupport, models.ContactSales, models.ContactGeneral:
	case "":
		contactType = models.ContactGeneral
	default:
		return common.SendValidationError(c, "type", "type must be one of: support, sales, general")
	}

	contact := &models.Contact{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Type:    contactType,
		Status:  models.ContactNew,
	}

	if err := h.contactRepo.Create(ctx, contact); err != nil {
		logger.Get().Error("failed to create contact message", zap.String("email", req.Email), zap.Error(err))
		return common.SendServerError(c, "Internal server error")
	}

	logger.Get().Info("new contact message",
		zap.String("email", contact.Email),
		zap.String("type", string(contact.Type)),
		zap.String("subject", common.SafeString(contact.Subject)))

	return c.JSON(http.StatusOK, map[string]string{
		"message":    "Contact message sent successfully",
		"contact_id": contact.ID.String(),
	})
}

// List returns the most recent contact messages. Intended for admin use but
// carries no access control; see the route table.
func (h *ContactHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	contacts, err := h.contactRepo.ListRecent(ctx, contactListLimit)
	if err != nil {
		logger.Get().Error("failed to list contact messages", zap.Error(err))
		return common.SendServerError(c, "Internal server error")
	}

	responses := make([]*models.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, contact.ToResponse())
	}

	return c.JSON(http.StatusOK, responses)
}
