package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactType categorizes an inbound message.
type ContactType string

const (
	ContactSupport ContactType = "support"
	ContactSales   ContactType = "sales"
	ContactGeneral ContactType = "general"
)

// ContactStatus tracks triage state. Messages are append-only; status is
// carried for future tooling but no update path exists in this API.
type ContactStatus string

const (
	ContactNew        ContactStatus = "new"
	ContactInProgress ContactStatus = "in-progress"
	ContactResolved   ContactStatus = "resolved"
)

type Contact struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Subject   *string       `json:"subject" db:"subject"`
	Message   string        `json:"message" db:"message"`
	Type      ContactType   `json:"type" db:"type"`
	Status    ContactStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

type ContactResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   *string       `json:"subject"`
	Message   string        `json:"message"`
	Type      ContactType   `json:"type"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func (c *Contact) ToResponse() *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Type:      c.Type,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
