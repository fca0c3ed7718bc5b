package models

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Text         string    `json:"text" db:"text"`
	Author       string    `json:"author" db:"author"`
	Role         string    `json:"role" db:"role"`
	Company      *string   `json:"company" db:"company"`
	Avatar       *string   `json:"avatar" db:"avatar"`
	Rating       int       `json:"rating" db:"rating"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// TestimonialResponse drops the internal ordering and active flags.
type TestimonialResponse struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Role    string    `json:"role"`
	Company *string   `json:"company"`
	Avatar  *string   `json:"avatar"`
	Rating  int       `json:"rating"`
}

func (t *Testimonial) ToResponse() *TestimonialResponse {
	return &TestimonialResponse{
		ID:      t.ID,
		Text:    t.Text,
		Author:  t.Author,
		Role:    t.Role,
		Company: t.Company,
		Avatar:  t.Avatar,
		Rating:  t.Rating,
	}
}
