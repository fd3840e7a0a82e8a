package worker

import (
	"context"
	"log/slog"
	"time"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

// schedulerCampaignLimit caps how many due campaigns one tick promotes.
// Anything beyond it waits for the next tick.
const schedulerCampaignLimit = 20

// Scheduler is the control loop that promotes due campaigns from scheduled
// to active and materializes their pending deliveries. It dispatches
// nothing itself; it only produces work for the Processor. As housekeeping
// it also completes expired campaigns and fails claims stranded by a crash
// once their campaign has left active.
type Scheduler struct {
	campaigns  port.CampaignRepository
	deliveries port.DeliveryRepository
	segmenter  port.Segmenter
	metrics    port.MetricRepository
	logger     *slog.Logger
	claimLease time.Duration

	now func() time.Time
}

// NewScheduler creates the scheduler loop body. claimLease must match the
// processor's lease so the stranded-claim sweep never fails a row a live
// processor still holds.
func NewScheduler(campaigns port.CampaignRepository, deliveries port.DeliveryRepository, segmenter port.Segmenter, metrics port.MetricRepository, logger *slog.Logger, claimLease time.Duration) *Scheduler {
	return &Scheduler{
		campaigns:  campaigns,
		deliveries: deliveries,
		segmenter:  segmenter,
		metrics:    metrics,
		logger:     logger,
		claimLease: claimLease,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Tick runs one scheduler pass. Failures are isolated per campaign: one bad
// campaign is logged and skipped, the rest of the batch proceeds. Loop-level
// failures are logged and retried on the next tick.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.now()

	if n, err := s.campaigns.CompleteExpired(ctx, now); err != nil {
		s.logger.Error("completing expired campaigns failed", slog.Any("error", err))
	} else if n > 0 {
		s.logger.Info("campaigns completed", slog.Int64("count", n))
	}

	if n, err := s.deliveries.FailStranded(ctx, now, s.claimLease); err != nil {
		s.logger.Error("sweeping stranded deliveries failed", slog.Any("error", err))
	} else if n > 0 {
		s.logger.Warn("stranded deliveries failed", slog.Int64("count", n))
	}

	due, err := s.campaigns.ListDueScheduled(ctx, now, schedulerCampaignLimit)
	if err != nil {
		s.logger.Error("listing due campaigns failed", slog.Any("error", err))
		return
	}

	for _, c := range due {
		if err := s.activate(ctx, c, now); err != nil {
			s.logger.Error("campaign activation failed",
				slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
		}
	}
}

// activate evaluates the campaign's audience and materializes deliveries in
// one transaction with the scheduled->active transition. Re-running after a
// crash re-evaluates and re-inserts; the conflict-ignoring insert makes that
// idempotent.
func (s *Scheduler) activate(ctx context.Context, c domain.Campaign, now time.Time) error {
	audience, err := s.segmenter.Evaluate(ctx, c.TargetCriteria)
	if err != nil {
		return err
	}

	channels := c.Type.Channels()
	rows := make([]port.PendingDelivery, 0, len(audience)*len(channels))
	for _, member := range audience {
		for _, ch := range channels {
			if c.Type == domain.CampaignTypeMultiChannel && !member.Reachable(ch) {
				continue
			}
			rows = append(rows, port.PendingDelivery{UserID: member.UserID, Channel: ch})
		}
	}

	inserted, activated, err := s.campaigns.ActivateAndMaterialize(ctx, c.ID, rows)
	if err != nil {
		return err
	}
	if !activated {
		// a concurrent instance won the transition; nothing to record
		return nil
	}

	s.logger.Info("campaign activated",
		slog.String("campaign_id", c.ID.String()),
		slog.String("name", c.Name),
		slog.Int("audience", len(audience)),
		slog.Int64("deliveries", inserted))

	inc := domain.MetricIncrement{
		Date:       now.Truncate(24 * time.Hour),
		MetricType: domain.MetricTypeDelivery,
		MetricName: domain.MetricMaterialized,
		Dimensions: map[string]string{"campaign_id": c.ID.String()},
		Delta:      inserted,
	}
	if err := s.metrics.Increment(ctx, inc); err != nil {
		s.logger.Warn("materialization rollup failed", slog.Any("error", err))
	}
	return nil
}
