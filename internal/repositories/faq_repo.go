package repositories

import (
	"context"

	"lexi2/internal/models"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *models.FAQ) error
	ListActive(ctx context.Context) ([]*models.FAQ, error)
	Count(ctx context.Context) (int64, error)
}

type faqRepo struct {
	db Database
}

func NewFAQRepo(db Database) FAQRepository {
	return &faqRepo{db: db}
}

func (r *faqRepo) Create(ctx context.Context, faq *models.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, category, display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, faq.ID, faq.Question, faq.Answer, faq.Category, faq.DisplayOrder, faq.IsActive)
	return err
}

// ListActive returns only active FAQs, ordered for display.
func (r *faqRepo) ListActive(ctx context.Context) ([]*models.FAQ, error) {
	query := `
		SELECT id, question, answer, category, display_order, is_active, created_at, updated_at
		FROM faqs
		WHERE is_active = TRUE
		ORDER BY display_order ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []*models.FAQ
	for rows.Next() {
		f := &models.FAQ{}
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.DisplayOrder, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func (r *faqRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
