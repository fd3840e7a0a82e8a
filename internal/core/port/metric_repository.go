package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
)

// StatsFilter bounds analytics reads to a date range. Zero values leave the
// corresponding side unbounded.
type StatsFilter struct {
	From time.Time
	To   time.Time
}

// MetricRepository persists daily rollup counters and serves the read-side
// aggregates. Increment uses increment-on-conflict semantics: at-least-once
// accumulation, never overwrite. All other methods are pure reads.
type MetricRepository interface {
	// Increment adds Delta to the counter keyed by (date, type, name,
	// dimensions), creating it when absent.
	Increment(ctx context.Context, inc domain.MetricIncrement) error
	// OverallStats aggregates delivery counters across all campaigns.
	OverallStats(ctx context.Context, f StatsFilter) (*domain.CampaignStats, error)
	// CampaignStats aggregates delivery counters for one campaign, or nil
	// when the campaign does not exist.
	CampaignStats(ctx context.Context, campaignID uuid.UUID, f StatsFilter) (*domain.CampaignStats, error)
	// StatsByType aggregates delivery counters per campaign type.
	StatsByType(ctx context.Context, f StatsFilter) ([]domain.CampaignStats, error)
	// TopCampaigns ranks campaigns by the given allow-listed metric.
	TopCampaigns(ctx context.Context, metric string, limit int, f StatsFilter) ([]domain.CampaignStats, error)
}
