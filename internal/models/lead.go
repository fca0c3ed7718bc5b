package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks where a lead sits in the funnel.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

// UTMParams is the fixed allow-list of attribution query parameters
// captured on lead creation. Anything outside this list is dropped.
var UTMParams = []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content"}

type Lead struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	Email     string            `json:"email" db:"email"`
	FirstName *string           `json:"first_name" db:"first_name"`
	LastName  *string           `json:"last_name" db:"last_name"`
	Company   *string           `json:"company" db:"company"`
	Phone     *string           `json:"phone" db:"phone"`
	Website   *string           `json:"website" db:"website"`
	Source    string            `json:"source" db:"source"` // 'hero', 'pricing', 'stats', ...
	UTM       map[string]string `json:"utm" db:"utm"`
	Status    LeadStatus        `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

// LeadResponse is the projection returned by the admin listing.
type LeadResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Company   *string    `json:"company"`
	Source    string     `json:"source"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

func (l *Lead) ToResponse() *LeadResponse {
	return &LeadResponse{
		ID:        l.ID,
		Email:     l.Email,
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Company:   l.Company,
		Source:    l.Source,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
	}
}
