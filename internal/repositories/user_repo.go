package repositories

import (
	"context"
	"errors"
	"fmt"

	"lexi2/internal/models"

	"github.com/google/uuid"
)

// ErrDuplicateEmail is returned when a registration targets an email that
// already has an account.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepo struct {
	db Database
}

func NewUserRepo(db Database) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user. Uniqueness is checked with a prior existence
// read, not an atomic constraint, so two concurrent registrations for the
// same email can race; the second insert wins a duplicate row. This is an
// accepted limitation of the registration path.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	var count int
	emailCheckQuery := `SELECT COUNT(*) FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, emailCheckQuery, user.Email).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if count > 0 {
		return ErrDuplicateEmail
	}

	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, company, phone, plan, status, trial_ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err = r.db.Exec(ctx, query, user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Company, user.Phone, user.Plan, user.Status, user.TrialEndsAt)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, password_hash, first_name, last_name, company, phone, plan, status, trial_ends_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Company, &user.Phone, &user.Plan, &user.Status, &user.TrialEndsAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, password_hash, first_name, last_name, company, phone, plan, status, trial_ends_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Company, &user.Phone, &user.Plan, &user.Status, &user.TrialEndsAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
