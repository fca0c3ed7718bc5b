package repositories

import (
	"context"

	"lexi2/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	ListRecent(ctx context.Context, limit int) ([]*models.Contact, error)
}

type contactRepo struct {
	db Database
}

func NewContactRepo(db Database) ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, subject, message, type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message, contact.Type, contact.Status)
	return err
}

func (r *contactRepo) ListRecent(ctx context.Context, limit int) ([]*models.Contact, error) {
	query := `
		SELECT id, name, email, subject, message, type, status, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact := &models.Contact{}
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Subject, &contact.Message, &contact.Type, &contact.Status, &contact.CreatedAt, &contact.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}
