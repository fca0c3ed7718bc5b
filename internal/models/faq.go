package models

import (
	"time"

	"github.com/google/uuid"
)

type FAQ struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Question     string    `json:"question" db:"question"`
	Answer       string    `json:"answer" db:"answer"`
	Category     string    `json:"category" db:"category"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// FAQResponse drops the internal ordering and active flags.
type FAQResponse struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Category string    `json:"category"`
}

func (f *FAQ) ToResponse() *FAQResponse {
	return &FAQResponse{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
	}
}
