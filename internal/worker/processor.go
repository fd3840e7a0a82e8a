package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

// Processor is the control loop that claims batches of pending deliveries
// and dispatches them through the channel adapter. The claim itself is
// atomic in the repository; this loop only owns rendering, sending, and
// recording outcomes. Failed deliveries are not retried here: retry is an
// administrative action above this pipeline.
type Processor struct {
	deliveries port.DeliveryRepository
	directory  port.UserDirectory
	adapter    port.ChannelAdapter
	metrics    port.MetricRepository
	logger     *slog.Logger

	batchSize   int
	claimLease  time.Duration
	sendTimeout time.Duration

	now func() time.Time
}

// NewProcessor creates the processor loop body.
func NewProcessor(
	deliveries port.DeliveryRepository,
	directory port.UserDirectory,
	adapter port.ChannelAdapter,
	metrics port.MetricRepository,
	logger *slog.Logger,
	batchSize int,
	claimLease, sendTimeout time.Duration,
) *Processor {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Processor{
		deliveries:  deliveries,
		directory:   directory,
		adapter:     adapter,
		metrics:     metrics,
		logger:      logger,
		batchSize:   batchSize,
		claimLease:  claimLease,
		sendTimeout: sendTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Tick runs one processor pass: claim a bounded batch, dispatch each
// delivery, record each outcome. An error on one delivery never aborts the
// batch.
func (p *Processor) Tick(ctx context.Context) {
	batch, err := p.deliveries.ClaimBatch(ctx, port.ClaimReq{
		Limit: p.batchSize,
		Lease: p.claimLease,
		Now:   p.now(),
	})
	if err != nil {
		p.logger.Error("claiming deliveries failed", slog.Any("error", err))
		return
	}
	if len(batch) == 0 {
		return
	}
	p.logger.Debug("claimed deliveries", slog.Int("count", len(batch)))

	for _, cd := range batch {
		p.dispatch(ctx, cd)
	}
}

// dispatch sends one claimed delivery and records the outcome. Transport
// errors are recorded on the delivery row, not surfaced: they happen inside
// an asynchronous loop with no caller to tell.
func (p *Processor) dispatch(ctx context.Context, cd domain.ClaimedDelivery) {
	recipient, err := p.directory.GetRecipient(ctx, cd.UserID)
	if err != nil {
		p.fail(ctx, cd, "recipient lookup: "+err.Error(), false)
		return
	}
	if recipient == nil || recipient.Address(cd.Channel) == "" {
		p.fail(ctx, cd, domain.ErrNoAddress.Error(), false)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, p.sendTimeout)
	result, err := p.adapter.Send(sendCtx, cd.Channel, *recipient, cd.Content.Render())
	cancel()

	switch {
	case errors.Is(err, domain.ErrBounced):
		p.fail(ctx, cd, err.Error(), true)
	case errors.Is(err, context.DeadlineExceeded):
		p.fail(ctx, cd, "send timed out after "+p.sendTimeout.String(), false)
	case err != nil:
		p.fail(ctx, cd, err.Error(), false)
	default:
		p.succeed(ctx, cd, result.Confirmed)
	}
}

func (p *Processor) succeed(ctx context.Context, cd domain.ClaimedDelivery, confirmed bool) {
	ok, err := p.deliveries.MarkSent(ctx, cd.ID, p.now(), confirmed)
	if err != nil {
		p.logger.Error("recording sent outcome failed",
			slog.String("delivery_id", cd.ID.String()), slog.Any("error", err))
		return
	}
	if !ok {
		// lost the row to a lease-expired duplicate claim that finished first
		p.logger.Warn("sent outcome ignored, delivery no longer processing",
			slog.String("delivery_id", cd.ID.String()))
		return
	}
	p.count(ctx, cd, domain.MetricSent, 1)
	if confirmed {
		p.count(ctx, cd, domain.MetricDelivered, 1)
	}
}

func (p *Processor) fail(ctx context.Context, cd domain.ClaimedDelivery, msg string, bounced bool) {
	ok, err := p.deliveries.MarkFailed(ctx, cd.ID, p.now(), msg, bounced)
	if err != nil {
		p.logger.Error("recording failed outcome failed",
			slog.String("delivery_id", cd.ID.String()), slog.Any("error", err))
		return
	}
	if !ok {
		return
	}
	p.logger.Warn("delivery failed",
		slog.String("delivery_id", cd.ID.String()),
		slog.String("channel", string(cd.Channel)),
		slog.Bool("bounced", bounced),
		slog.String("error", msg))

	metric := domain.MetricFailed
	if bounced {
		metric = domain.MetricBounced
	}
	p.count(ctx, cd, metric, 1)
}

// count rolls an outcome into the daily metrics, best-effort.
func (p *Processor) count(ctx context.Context, cd domain.ClaimedDelivery, metric string, delta int64) {
	inc := domain.MetricIncrement{
		Date:       p.now().Truncate(24 * time.Hour),
		MetricType: domain.MetricTypeDelivery,
		MetricName: metric,
		Dimensions: map[string]string{
			"campaign_id": cd.CampaignID.String(),
			"channel":     string(cd.Channel),
		},
		Delta: delta,
	}
	if err := p.metrics.Increment(ctx, inc); err != nil {
		p.logger.Warn("delivery rollup failed", slog.String("metric", metric), slog.Any("error", err))
	}
}
