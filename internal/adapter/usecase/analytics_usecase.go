package usecase

import (
	"context"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

// AnalyticsService serves the read-side engagement metrics. It never
// mutates state; all rates come from the repository aggregates with a zero
// denominator defined as a zero rate.
type AnalyticsService struct {
	metrics port.MetricRepository
}

// NewAnalyticsService creates a new aggregator.
func NewAnalyticsService(metrics port.MetricRepository) *AnalyticsService {
	return &AnalyticsService{metrics: metrics}
}

// Overview aggregates across all campaigns within the filter range.
func (s *AnalyticsService) Overview(ctx context.Context, f port.StatsFilter) (*domain.CampaignStats, error) {
	return s.metrics.OverallStats(ctx, f)
}

// CampaignMetrics aggregates one campaign's deliveries.
func (s *AnalyticsService) CampaignMetrics(ctx context.Context, id uuid.UUID, f port.StatsFilter) (*domain.CampaignStats, error) {
	stats, err := s.metrics.CampaignStats(ctx, id, f)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, domain.ErrNotFound
	}
	return stats, nil
}

// ByType aggregates per campaign type. Multi-channel campaigns count each
// channel's delivery independently; there is no campaign-level delivered
// flag.
func (s *AnalyticsService) ByType(ctx context.Context, f port.StatsFilter) ([]domain.CampaignStats, error) {
	return s.metrics.StatsByType(ctx, f)
}

// TopCampaigns ranks campaigns by an allow-listed metric. Unknown metrics
// fall back to open rate rather than failing.
func (s *AnalyticsService) TopCampaigns(ctx context.Context, metric string, limit int, f port.StatsFilter) ([]domain.CampaignStats, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return s.metrics.TopCampaigns(ctx, domain.NormalizeTopMetric(metric), limit, f)
}
