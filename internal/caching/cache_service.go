package caching

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"lexi2/internal/logger"
	"lexi2/internal/models"
)

type CacheService interface {
	GetStats(ctx context.Context) (*models.SiteStats, error)
	SetStats(ctx context.Context, stats *models.SiteStats, ttl time.Duration) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

const statsKey = "lexi:stats"

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis:// and rediss:// style addresses as well as host:port
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		logger.Get().Warn("redis ping failed on initialization", zap.String("addr", parsedAddr), zap.Error(pingErr))
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetStats(ctx context.Context) (*models.SiteStats, error) {
	data, err := r.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var stats models.SiteStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *redisCacheService) SetStats(ctx context.Context, stats *models.SiteStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, statsKey, data, ttl).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
