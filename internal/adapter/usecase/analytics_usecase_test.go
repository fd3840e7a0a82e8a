package usecase

import (
	"context"
	"errors"
	"testing"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
	"loyalty-campaigns/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func TestCampaignMetricsUnknownCampaign(t *testing.T) {
	id := uuid.New()
	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		CampaignStats(mock.Anything, id, port.StatsFilter{}).
		Return(nil, nil)

	svc := NewAnalyticsService(metrics)

	if _, err := svc.CampaignMetrics(context.Background(), id, port.StatsFilter{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestTopCampaignsNormalizes ensures the limit is clamped and the ranking
// metric is mapped onto the allow-list before the repository sees either.
func TestTopCampaignsNormalizes(t *testing.T) {
	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		TopCampaigns(mock.Anything, domain.TopMetricOpenRate, 10, port.StatsFilter{}).
		Return([]domain.CampaignStats{}, nil)

	svc := NewAnalyticsService(metrics)

	if _, err := svc.TopCampaigns(context.Background(), "revenue", 0, port.StatsFilter{}); err != nil {
		t.Fatalf("TopCampaigns error: %v", err)
	}
	if _, err := svc.TopCampaigns(context.Background(), "revenue", 5000, port.StatsFilter{}); err != nil {
		t.Fatalf("TopCampaigns error: %v", err)
	}
}

func TestTopCampaignsExplicitMetric(t *testing.T) {
	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		TopCampaigns(mock.Anything, domain.TopMetricClickRate, 3, port.StatsFilter{}).
		Return([]domain.CampaignStats{}, nil)

	svc := NewAnalyticsService(metrics)

	if _, err := svc.TopCampaigns(context.Background(), domain.TopMetricClickRate, 3, port.StatsFilter{}); err != nil {
		t.Fatalf("TopCampaigns error: %v", err)
	}
}
