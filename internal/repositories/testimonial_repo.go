package repositories

import (
	"context"

	"lexi2/internal/models"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	ListActive(ctx context.Context) ([]*models.Testimonial, error)
	Count(ctx context.Context) (int64, error)
}

type testimonialRepo struct {
	db Database
}

func NewTestimonialRepo(db Database) TestimonialRepository {
	return &testimonialRepo{db: db}
}

func (r *testimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, text, author, role, company, avatar, rating, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, testimonial.ID, testimonial.Text, testimonial.Author, testimonial.Role, testimonial.Company, testimonial.Avatar, testimonial.Rating, testimonial.IsActive, testimonial.DisplayOrder)
	return err
}

// ListActive returns only active testimonials, ordered for display.
func (r *testimonialRepo) ListActive(ctx context.Context) ([]*models.Testimonial, error) {
	query := `
		SELECT id, text, author, role, company, avatar, rating, is_active, display_order, created_at, updated_at
		FROM testimonials
		WHERE is_active = TRUE
		ORDER BY display_order ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*models.Testimonial
	for rows.Next() {
		t := &models.Testimonial{}
		if err := rows.Scan(&t.ID, &t.Text, &t.Author, &t.Role, &t.Company, &t.Avatar, &t.Rating, &t.IsActive, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *testimonialRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
