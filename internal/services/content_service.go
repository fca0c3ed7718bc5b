package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"lexi2/internal/logger"
	"lexi2/internal/models"
	"lexi2/internal/repositories"
)

const (
	// ContentBucket holds testimonial avatars and other marketing assets.
	ContentBucket = "lexi-content"

	avatarURLExpiry = 15 * time.Minute
)

// ContentService serves the static marketing content. Content availability is
// prioritized over strict correctness: any storage failure on this read path
// yields a fixed fallback list instead of an error.
type ContentService interface {
	GetTestimonials(ctx context.Context) []*models.TestimonialResponse
	GetFAQs(ctx context.Context) []*models.FAQResponse
}

type contentService struct {
	testimonialRepo repositories.TestimonialRepository
	faqRepo         repositories.FAQRepository
	storage         StorageService // nil when no object store is configured
}

func NewContentService(testimonialRepo repositories.TestimonialRepository, faqRepo repositories.FAQRepository, storage StorageService) ContentService {
	return &contentService{
		testimonialRepo: testimonialRepo,
		faqRepo:         faqRepo,
		storage:         storage,
	}
}

func (s *contentService) GetTestimonials(ctx context.Context) []*models.TestimonialResponse {
	testimonials, err := s.testimonialRepo.ListActive(ctx)
	if err != nil {
		logger.Get().Error("failed to fetch testimonials, serving fallback", zap.Error(err))
		return FallbackTestimonials()
	}

	responses := make([]*models.TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		resp := t.ToResponse()
		resp.Avatar = s.resolveAvatar(resp.Avatar)
		responses = append(responses, resp)
	}
	return responses
}

func (s *contentService) GetFAQs(ctx context.Context) []*models.FAQResponse {
	faqs, err := s.faqRepo.ListActive(ctx)
	if err != nil {
		logger.Get().Error("failed to fetch FAQs, serving fallback", zap.Error(err))
		return FallbackFAQs()
	}

	responses := make([]*models.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		responses = append(responses, f.ToResponse())
	}
	return responses
}

// resolveAvatar turns a stored object key into a presigned URL. Full URLs
// pass through unchanged, and presigner failures degrade to the stored value.
func (s *contentService) resolveAvatar(avatar *string) *string {
	if avatar == nil || *avatar == "" || s.storage == nil {
		return avatar
	}
	if strings.HasPrefix(*avatar, "http://") || strings.HasPrefix(*avatar, "https://") {
		return avatar
	}

	url, err := s.storage.GetPresignedURL(ContentBucket, *avatar, avatarURLExpiry)
	if err != nil {
		logger.Get().Warn("failed to presign avatar URL", zap.String("object", *avatar), zap.Error(err))
		return avatar
	}
	return &url
}

// FallbackTestimonials is served when the content store is unreachable.
func FallbackTestimonials() []*models.TestimonialResponse {
	return []*models.TestimonialResponse{
		{
			ID:     seedID(1),
			Text:   "Lexi consiguió los primeros 2 pedidos para mi nueva tienda en solo 48 horas. ¡Un comienzo absolutamente increíble para cualquier negocio nuevo!",
			Author: "Daniel. y",
			Role:   "Nuevo Propietario de Tienda",
			Rating: 5,
		},
		{
			ID:     seedID(2),
			Text:   "Con Lexi, probamos más de 50 libros electrónicos en una sola semana para encontrar nuestros bestsellers. Es la herramienta definitiva para la validación rápida de productos.",
			Author: "Augon",
			Role:   "Propietario de Tienda de Libros Electrónicos",
			Rating: 5,
		},
	}
}

// FallbackFAQs is served when the content store is unreachable.
func FallbackFAQs() []*models.FAQResponse {
	return []*models.FAQResponse{
		{
			ID:       seedID(1),
			Question: "¿Qué tipos de productos o servicios puedo promocionar con Lexi?",
			Answer:   "Lexi funciona con una amplia variedad de productos y servicios, desde e-commerce hasta servicios profesionales, educación, SaaS y más. Nuestra IA se adapta automáticamente a tu industria específica.",
			Category: "general",
		},
		{
			ID:       seedID(2),
			Question: "¿Qué países y regiones soporta Lexi?",
			Answer:   "Lexi opera en más de 50 países globalmente, cubriendo todas las principales regiones donde Meta Ads está disponible. Nuestro sistema se adapta automáticamente a las regulaciones locales y mejores prácticas.",
			Category: "general",
		},
	}
}
