package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexi2/internal/logger"
	"lexi2/internal/models"
	"lexi2/internal/repositories"
)

// SeedService populates the content tables on first startup so the marketing
// site never launches empty.
type SeedService struct {
	testimonialRepo repositories.TestimonialRepository
	faqRepo         repositories.FAQRepository
}

func NewSeedService(testimonialRepo repositories.TestimonialRepository, faqRepo repositories.FAQRepository) *SeedService {
	return &SeedService{
		testimonialRepo: testimonialRepo,
		faqRepo:         faqRepo,
	}
}

// seedID gives seeded and fallback content stable identities across restarts.
func seedID(n byte) uuid.UUID {
	return uuid.UUID{15: n}
}

// SeedInitialData inserts the initial testimonials and FAQs when the tables
// are empty. Existing content is never touched.
func (s *SeedService) SeedInitialData(ctx context.Context) error {
	testimonialCount, err := s.testimonialRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count testimonials: %w", err)
	}

	if testimonialCount == 0 {
		for i, fallback := range FallbackTestimonials() {
			testimonial := &models.Testimonial{
				ID:           fallback.ID,
				Text:         fallback.Text,
				Author:       fallback.Author,
				Role:         fallback.Role,
				Company:      fallback.Company,
				Avatar:       fallback.Avatar,
				Rating:       fallback.Rating,
				IsActive:     true,
				DisplayOrder: i + 1,
			}
			if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
				return fmt.Errorf("failed to seed testimonial: %w", err)
			}
		}
		logger.Get().Info("seeded testimonials", zap.Int("count", len(FallbackTestimonials())))
	}

	faqCount, err := s.faqRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count faqs: %w", err)
	}

	if faqCount == 0 {
		for i, fallback := range FallbackFAQs() {
			faq := &models.FAQ{
				ID:           fallback.ID,
				Question:     fallback.Question,
				Answer:       fallback.Answer,
				Category:     fallback.Category,
				DisplayOrder: i + 1,
				IsActive:     true,
			}
			if err := s.faqRepo.Create(ctx, faq); err != nil {
				return fmt.Errorf("failed to seed faq: %w", err)
			}
		}
		logger.Get().Info("seeded faqs", zap.Int("count", len(FallbackFAQs())))
	}

	return nil
}
