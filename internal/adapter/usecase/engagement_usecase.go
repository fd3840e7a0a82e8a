package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

// EngagementService ingests open and click signals against deliveries. Both
// operations ride on conditional updates in the repository, so concurrent
// duplicate signals (a tracking pixel loaded twice) produce at most one
// effective transition per event type without any locking here.
type EngagementService struct {
	deliveries port.DeliveryRepository
	campaigns  port.CampaignRepository
	metrics    port.MetricRepository
	logger     *slog.Logger

	now func() time.Time
}

// NewEngagementService creates a new engagement tracker.
func NewEngagementService(deliveries port.DeliveryRepository, campaigns port.CampaignRepository, metrics port.MetricRepository, logger *slog.Logger) *EngagementService {
	return &EngagementService{
		deliveries: deliveries,
		campaigns:  campaigns,
		metrics:    metrics,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// MarkOpened records an open for the delivery. The first signal sets
// opened_at; duplicates report domain.ErrAlreadyRecorded and change nothing.
// A signal for a delivery that was never dispatched reports
// domain.ErrInvalidState.
func (s *EngagementService) MarkOpened(ctx context.Context, deliveryID uuid.UUID) error {
	now := s.now()
	ok, err := s.deliveries.MarkOpened(ctx, deliveryID, now)
	if err != nil {
		return err
	}
	if !ok {
		return s.classifyNoop(ctx, deliveryID, func(d *domain.Delivery) bool { return d.OpenedAt != nil })
	}
	s.count(ctx, deliveryID, domain.MetricOpens, now)
	return nil
}

// MarkClicked records a click for the delivery, independently of opens:
// channels with deep links report clicks without a preceding open. It
// resolves the campaign CTA URL so the transport handler can redirect; a
// duplicate click still resolves the target, paired with
// domain.ErrAlreadyRecorded.
func (s *EngagementService) MarkClicked(ctx context.Context, deliveryID uuid.UUID) (string, error) {
	now := s.now()
	ok, err := s.deliveries.MarkClicked(ctx, deliveryID, now)
	if err != nil {
		return "", err
	}
	if !ok {
		err = s.classifyNoop(ctx, deliveryID, func(d *domain.Delivery) bool { return d.ClickedAt != nil })
		if !errors.Is(err, domain.ErrAlreadyRecorded) {
			return "", err
		}
		target, lookupErr := s.clickTarget(ctx, deliveryID)
		if lookupErr != nil {
			return "", lookupErr
		}
		return target, err
	}
	s.count(ctx, deliveryID, domain.MetricClicks, now)
	return s.clickTarget(ctx, deliveryID)
}

// clickTarget resolves the CTA URL of the campaign behind a delivery. An
// empty target means the campaign carries no click destination.
func (s *EngagementService) clickTarget(ctx context.Context, deliveryID uuid.UUID) (string, error) {
	d, err := s.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return "", err
	}
	if d == nil {
		return "", domain.ErrNotFound
	}
	c, err := s.campaigns.GetByID(ctx, d.CampaignID)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", nil
	}
	return c.Content.CTAURL, nil
}

// classifyNoop explains an ineffective conditional update: the delivery is
// missing, was never dispatched, or already carries the event.
func (s *EngagementService) classifyNoop(ctx context.Context, deliveryID uuid.UUID, recorded func(*domain.Delivery) bool) error {
	d, err := s.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	if recorded(d) {
		return domain.ErrAlreadyRecorded
	}
	return domain.ErrInvalidState
}

// count rolls the effective event into the daily metrics. Rollups are
// best-effort: a failed increment is logged, never surfaced to the signal
// source.
func (s *EngagementService) count(ctx context.Context, deliveryID uuid.UUID, metric string, now time.Time) {
	d, err := s.deliveries.GetByID(ctx, deliveryID)
	if err != nil || d == nil {
		s.logger.Warn("engagement rollup lookup failed",
			slog.String("delivery_id", deliveryID.String()), slog.Any("error", err))
		return
	}
	inc := domain.MetricIncrement{
		Date:       now.Truncate(24 * time.Hour),
		MetricType: domain.MetricTypeEngagement,
		MetricName: metric,
		Dimensions: map[string]string{
			"campaign_id": d.CampaignID.String(),
			"channel":     string(d.Channel),
		},
		Delta: 1,
	}
	if err := s.metrics.Increment(ctx, inc); err != nil {
		s.logger.Warn("engagement rollup failed",
			slog.String("metric", metric), slog.Any("error", err))
	}
}
