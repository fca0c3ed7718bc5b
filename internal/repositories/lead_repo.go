package repositories

import (
	"context"

	"lexi2/internal/models"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByEmail(ctx context.Context, email string) (*models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	ListRecent(ctx context.Context, limit int) ([]*models.Lead, error)
	Count(ctx context.Context) (int64, error)
}

type leadRepo struct {
	db Database
}

func NewLeadRepo(db Database) LeadRepository {
	return &leadRepo{db: db}
}

// Create inserts a new lead. leads.email carries no unique constraint; the
// upsert in the lead service deduplicates with a read first, so concurrent
// first submissions for the same email can both insert.
func (r *leadRepo) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (id, email, first_name, last_name, company, phone, website, source, utm, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, lead.ID, lead.Email, lead.FirstName, lead.LastName, lead.Company, lead.Phone, lead.Website, lead.Source, lead.UTM, lead.Status)
	return err
}

func (r *leadRepo) GetByEmail(ctx context.Context, email string) (*models.Lead, error) {
	lead := &models.Lead{}
	query := `
		SELECT id, email, first_name, last_name, company, phone, website, source, utm, status, created_at, updated_at
		FROM leads
		WHERE email = $1
	`
	err := r.db.QueryRow(ctx, query, email).Scan(&lead.ID, &lead.Email, &lead.FirstName, &lead.LastName, &lead.Company, &lead.Phone, &lead.Website, &lead.Source, &lead.UTM, &lead.Status, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// Update rewrites the patchable profile fields and refreshes updated_at.
// The stored attribution map is deliberately left untouched; the update
// path never reprocesses UTM parameters.
func (r *leadRepo) Update(ctx context.Context, lead *models.Lead) error {
	query := `
		UPDATE leads
		SET first_name = $1, last_name = $2, company = $3, phone = $4, website = $5, source = $6, updated_at = NOW()
		WHERE email = $7
	`
	_, err := r.db.Exec(ctx, query, lead.FirstName, lead.LastName, lead.Company, lead.Phone, lead.Website, lead.Source, lead.Email)
	return err
}

func (r *leadRepo) ListRecent(ctx context.Context, limit int) ([]*models.Lead, error) {
	query := `
		SELECT id, email, first_name, last_name, company, phone, website, source, utm, status, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead := &models.Lead{}
		if err := rows.Scan(&lead.ID, &lead.Email, &lead.FirstName, &lead.LastName, &lead.Company, &lead.Phone, &lead.Website, &lead.Source, &lead.UTM, &lead.Status, &lead.CreatedAt, &lead.UpdatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *leadRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
