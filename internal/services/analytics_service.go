package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lexi2/internal/caching"
	"lexi2/internal/logger"
	"lexi2/internal/models"
	"lexi2/internal/repositories"
)

const (
	statsCacheTTL = 60 * time.Second

	// Limits for the opaque tracking payload.
	maxEventKeys  = 64
	maxEventDepth = 4
)

var (
	// ErrEventTooLarge is returned when a tracking payload exceeds the key limit.
	ErrEventTooLarge = fmt.Errorf("event payload exceeds %d keys", maxEventKeys)
	// ErrEventTooDeep is returned when a tracking payload nests deeper than allowed.
	ErrEventTooDeep = fmt.Errorf("event payload exceeds nesting depth %d", maxEventDepth)
)

// AnalyticsService derives the public aggregate counters and accepts opaque
// tracking events. Events are logged, never persisted.
type AnalyticsService interface {
	GetStats(ctx context.Context) (*models.SiteStats, error)
	TrackEvent(ctx context.Context, event map[string]any) error
}

type analyticsService struct {
	userRepo repositories.UserRepository
	leadRepo repositories.LeadRepository
	cacheSvc caching.CacheService
}

func NewAnalyticsService(userRepo repositories.UserRepository, leadRepo repositories.LeadRepository, cacheSvc caching.CacheService) AnalyticsService {
	return &analyticsService{
		userRepo: userRepo,
		leadRepo: leadRepo,
		cacheSvc: cacheSvc,
	}
}

// GetStats returns simulated growth counters derived from the stored user and
// lead counts. Results are cached briefly; cache failures fall through to a
// live computation.
func (s *analyticsService) GetStats(ctx context.Context) (*models.SiteStats, error) {
	if s.cacheSvc != nil {
		cached, err := s.cacheSvc.GetStats(ctx)
		if err != nil {
			logger.Get().Warn("stats cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	userCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	leadCount, err := s.leadRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	// Marketing-facing floor figures; real counts only move the numbers once
	// they outgrow the baseline.
	users := userCount + leadCount + 12800
	if users < 12847 {
		users = 12847
	}

	stats := &models.SiteStats{
		Users:       users,
		Countries:   54,
		Industries:  28,
		AdSpend:     2450000 + userCount*1500,
		LastUpdated: time.Now().UTC(),
	}

	if s.cacheSvc != nil {
		if err := s.cacheSvc.SetStats(ctx, stats, statsCacheTTL); err != nil {
			logger.Get().Warn("stats cache write failed", zap.Error(err))
		}
	}

	return stats, nil
}

// TrackEvent validates the payload limits and logs the event. There is no
// persistence path for analytics events.
func (s *analyticsService) TrackEvent(ctx context.Context, event map[string]any) error {
	if len(event) > maxEventKeys {
		return ErrEventTooLarge
	}
	if depth(event, 0) > maxEventDepth {
		return ErrEventTooDeep
	}

	logger.Get().Info("analytics event", zap.Any("event", event))
	return nil
}

func depth(value any, current int) int {
	deepest := current
	switch v := value.(type) {
	case map[string]any:
		for _, child := range v {
			if d := depth(child, current+1); d > deepest {
				deepest = d
			}
		}
	case []any:
		for _, child := range v {
			if d := depth(child, current+1); d > deepest {
				deepest = d
			}
		}
	}
	return deepest
}
