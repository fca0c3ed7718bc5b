package services

import (
	"context"
	"errors"
	"net/url"

	"lexi2/internal/models"
	"lexi2/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lexi2/internal/logger"
)

// LeadInput carries a lead submission. Optional fields stay nil when absent
// from the request so the upsert can tell "not sent" from "sent empty".
type LeadInput struct {
	Email     string
	FirstName *string
	LastName  *string
	Company   *string
	Phone     *string
	Website   *string
	Source    string
}

// LeadResult reports the outcome of a submission.
type LeadResult struct {
	Created bool
	LeadID  uuid.UUID
}

// LeadService implements the email-keyed merge-or-create for leads.
type LeadService interface {
	Submit(ctx context.Context, input *LeadInput, query url.Values) (*LeadResult, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Lead, error)
}

type leadService struct {
	leadRepo repositories.LeadRepository
}

func NewLeadService(leadRepo repositories.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

// ExtractUTMParams pulls the allow-listed attribution parameters out of a
// query string, keeping only keys that are present with a value.
func ExtractUTMParams(query url.Values) map[string]string {
	utm := make(map[string]string)
	for _, param := range models.UTMParams {
		if value := query.Get(param); value != "" {
			utm[param] = value
		}
	}
	return utm
}

// Submit looks up an existing lead by exact email. If found, non-nil input
// fields overwrite the stored ones and updated_at is refreshed; the
// attribution map is not re-derived on this path. If not found, a new lead is
// created with a fresh identity and the attribution extracted from the query
// string. The lookup-then-write is not atomic: two concurrent first
// submissions for the same email can both insert.
func (s *leadService) Submit(ctx context.Context, input *LeadInput, query url.Values) (*LeadResult, error) {
	existing, err := s.leadRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if existing != nil {
		if input.FirstName != nil {
			existing.FirstName = input.FirstName
		}
		if input.LastName != nil {
			existing.LastName = input.LastName
		}
		if input.Company != nil {
			existing.Company = input.Company
		}
		if input.Phone != nil {
			existing.Phone = input.Phone
		}
		if input.Website != nil {
			existing.Website = input.Website
		}
		if input.Source != "" {
			existing.Source = input.Source
		}

		if err := s.leadRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &LeadResult{Created: false, LeadID: existing.ID}, nil
	}

	source := input.Source
	if source == "" {
		source = "unknown"
	}

	lead := &models.Lead{
		ID:        uuid.New(),
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.Company,
		Phone:     input.Phone,
		Website:   input.Website,
		Source:    source,
		UTM:       ExtractUTMParams(query),
		Status:    models.LeadNew,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	logger.Get().Info("new lead created",
		zap.String("email", lead.Email),
		zap.String("source", lead.Source))

	return &LeadResult{Created: true, LeadID: lead.ID}, nil
}

func (s *leadService) ListRecent(ctx context.Context, limit int) ([]*models.Lead, error) {
	return s.leadRepo.ListRecent(ctx, limit)
}
