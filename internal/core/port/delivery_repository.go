package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
)

// ClaimReq bounds one processor claim.
type ClaimReq struct {
	// Limit caps how many rows one tick may claim.
	Limit int
	// Lease is how long a claim holds before a stuck processing row becomes
	// reclaimable by a later tick.
	Lease time.Duration
	Now   time.Time
}

// DeliveryRepository is the persistence port for delivery rows. The claim is
// a single indivisible statement; select-then-update is a race and must not
// be used. Outcome writes are conditional on the row still being in
// processing so a lease-expired duplicate claimer cannot regress a finished
// delivery.
type DeliveryRepository interface {
	// ClaimBatch atomically claims up to Limit deliveries: pending rows of
	// active campaigns plus processing rows whose lease expired. Claimed
	// rows are marked processing and stamped with the claim time. Rows
	// locked by a concurrent claimer are skipped, never double-claimed.
	ClaimBatch(ctx context.Context, req ClaimReq) ([]domain.ClaimedDelivery, error)
	// MarkSent records a successful dispatch, setting sent_at (and
	// delivered_at when the transport confirmed synchronously).
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time, confirmed bool) (bool, error)
	// MarkFailed records a dispatch failure with its error message, using
	// the bounced status for hard transport rejections.
	MarkFailed(ctx context.Context, id uuid.UUID, at time.Time, errMsg string, bounced bool) (bool, error)
	// MarkOpened sets opened_at if and only if it is currently null and the
	// delivery was dispatched. It reports whether the update took effect.
	MarkOpened(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// MarkClicked sets clicked_at if and only if it is currently null and
	// the delivery was dispatched. It reports whether the update took effect.
	MarkClicked(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// FailStranded fails lease-expired processing rows whose campaign is no
	// longer active. ClaimBatch only reclaims rows of active campaigns, so a
	// crash followed by a completion or cancel would otherwise leave the row
	// in processing forever. Returns how many rows were failed.
	FailStranded(ctx context.Context, now time.Time, lease time.Duration) (int64, error)
	// GetByID returns the delivery or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	// ListByCampaign returns a page of a campaign's deliveries plus the
	// total count, newest first.
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, page, perPage int) ([]domain.Delivery, int64, error)
}
