package models

import (
	"time"

	"github.com/google/uuid"
)

// PlanType identifies the subscription plan a user signed up for.
type PlanType string

const (
	PlanTrial      PlanType = "trial"
	PlanMonthly    PlanType = "monthly"
	PlanQuarterly  PlanType = "quarterly"
	PlanAnnual     PlanType = "annual"
	PlanEnterprise PlanType = "enterprise"
)

// UserStatus identifies the account state.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserTrial    UserStatus = "trial"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never serialize in JSON
	FirstName    *string    `json:"first_name" db:"first_name"`
	LastName     *string    `json:"last_name" db:"last_name"`
	Company      *string    `json:"company" db:"company"`
	Phone        *string    `json:"phone" db:"phone"`
	Plan         PlanType   `json:"plan" db:"plan"`
	Status       UserStatus `json:"status" db:"status"`
	TrialEndsAt  *time.Time `json:"trial_ends_at" db:"trial_ends_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// UserResponse is the public projection of a user returned by the API.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Company   *string    `json:"company"`
	Phone     *string    `json:"phone"`
	Plan      PlanType   `json:"plan"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToResponse projects a user to its public shape.
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Company:   u.Company,
		Phone:     u.Phone,
		Plan:      u.Plan,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
