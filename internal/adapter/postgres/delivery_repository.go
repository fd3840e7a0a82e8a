package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

const deliveryColumns = `id, campaign_id, user_id, channel, status, claimed_at, sent_at, delivered_at, opened_at, clicked_at, error_message, created_at, updated_at`

// DeliveryRepository implements port.DeliveryRepository using pgxpool for
// PostgreSQL. The claim relies on FOR UPDATE SKIP LOCKED so overlapping
// ticks and horizontally scaled instances never claim the same row twice.
type DeliveryRepository struct {
	pool *pgxpool.Pool
}

// NewDeliveryRepository returns a new repository instance.
func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{pool: pool}
}

// ClaimBatch claims up to req.Limit deliveries in one indivisible statement:
// pending rows of active campaigns plus processing rows whose lease expired
// (crash recovery). Higher-tier members are claimed first so partial
// failures hit the least valuable part of the audience last. Rows locked by
// a concurrent claimer are skipped.
func (r *DeliveryRepository) ClaimBatch(ctx context.Context, req port.ClaimReq) ([]domain.ClaimedDelivery, error) {
	staleBefore := req.Now.Add(-req.Lease)
	rows, err := r.pool.Query(ctx, `
WITH picked AS (
    SELECT d.id
    FROM deliveries d
    JOIN campaigns c ON c.id = d.campaign_id
    JOIN users u ON u.id = d.user_id
    WHERE c.status = 'active'
      AND (d.status = 'pending'
           OR (d.status = 'processing' AND d.claimed_at <= $2))
    ORDER BY CASE u.tier WHEN 'platinum' THEN 4 WHEN 'gold' THEN 3 WHEN 'silver' THEN 2 ELSE 1 END DESC,
             u.points DESC,
             d.created_at,
             d.id
    LIMIT $3
    FOR UPDATE OF d SKIP LOCKED
), claimed AS (
    UPDATE deliveries d
    SET status = 'processing', claimed_at = $1, updated_at = $1
    FROM picked
    WHERE d.id = picked.id
    RETURNING d.id, d.campaign_id, d.user_id, d.channel, d.created_at
)
SELECT cl.id, cl.campaign_id, cl.user_id, cl.channel, cl.created_at, c.content
FROM claimed cl
JOIN campaigns c ON c.id = cl.campaign_id`,
		req.Now, staleBefore, req.Limit)
	if err != nil {
		return nil, err
	}
	claimedAt := req.Now
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ClaimedDelivery, error) {
		var (
			cd         domain.ClaimedDelivery
			contentRaw []byte
		)
		err := row.Scan(&cd.ID, &cd.CampaignID, &cd.UserID, &cd.Channel, &cd.CreatedAt, &contentRaw)
		if err != nil {
			return domain.ClaimedDelivery{}, err
		}
		if err = json.Unmarshal(contentRaw, &cd.Content); err != nil {
			return domain.ClaimedDelivery{}, err
		}
		cd.Status = domain.DeliveryStatusProcessing
		cd.ClaimedAt = &claimedAt
		cd.UpdatedAt = claimedAt
		return cd, nil
	})
}

// MarkSent records a successful dispatch. The condition on processing keeps
// a lease-expired duplicate claimer from regressing a finished row.
func (r *DeliveryRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time, confirmed bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE deliveries
SET status = CASE WHEN $3 THEN 'delivered' ELSE 'sent' END,
    sent_at = $2,
    delivered_at = CASE WHEN $3 THEN $2 ELSE NULL END,
    error_message = NULL,
    updated_at = $2
WHERE id = $1 AND status = 'processing'`,
		id, at, confirmed)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkFailed records a dispatch failure with its error message. Hard
// transport rejections land in bounced, everything else in failed.
func (r *DeliveryRepository) MarkFailed(ctx context.Context, id uuid.UUID, at time.Time, errMsg string, bounced bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE deliveries
SET status = CASE WHEN $4 THEN 'bounced' ELSE 'failed' END,
    error_message = $3,
    updated_at = $2
WHERE id = $1 AND status = 'processing'`,
		id, at, errMsg, bounced)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FailStranded fails lease-expired processing rows of non-active campaigns.
// ClaimBatch only reclaims rows whose campaign is still active, so a row
// claimed before a crash and then orphaned by a completion or cancel would
// otherwise sit in processing forever.
func (r *DeliveryRepository) FailStranded(ctx context.Context, now time.Time, lease time.Duration) (int64, error) {
	staleBefore := now.Add(-lease)
	tag, err := r.pool.Exec(ctx, `
UPDATE deliveries d
SET status = 'failed',
    error_message = 'abandoned claim: campaign no longer active',
    updated_at = $1
FROM campaigns c
WHERE c.id = d.campaign_id
  AND d.status = 'processing'
  AND d.claimed_at <= $2
  AND c.status <> 'active'`,
		now, staleBefore)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkOpened sets opened_at once. The conditional update is the whole
// idempotency mechanism: concurrent duplicate signals race on one row and
// at most one of them hits a null opened_at.
func (r *DeliveryRepository) MarkOpened(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE deliveries
SET opened_at = $2, updated_at = $2
WHERE id = $1 AND opened_at IS NULL AND sent_at IS NOT NULL`,
		id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkClicked sets clicked_at once. A prior open is not required (push deep
// links report clicks without opens) but dispatch is.
func (r *DeliveryRepository) MarkClicked(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
UPDATE deliveries
SET clicked_at = $2, updated_at = $2
WHERE id = $1 AND clicked_at IS NULL AND sent_at IS NOT NULL`,
		id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID returns a delivery by id, nil when absent.
func (r *DeliveryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	var d domain.Delivery
	err := r.pool.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id).Scan(
		&d.ID, &d.CampaignID, &d.UserID, &d.Channel, &d.Status,
		&d.ClaimedAt, &d.SentAt, &d.DeliveredAt, &d.OpenedAt, &d.ClickedAt,
		&d.ErrorMessage, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByCampaign returns a page of a campaign's deliveries plus the total
// count, newest first.
func (r *DeliveryRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID, page, perPage int) ([]domain.Delivery, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM deliveries WHERE campaign_id = $1`, campaignID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	rows, err := r.pool.Query(ctx, `SELECT `+deliveryColumns+` FROM deliveries
        WHERE campaign_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`,
		campaignID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	deliveries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Delivery, error) {
		var d domain.Delivery
		err := row.Scan(
			&d.ID, &d.CampaignID, &d.UserID, &d.Channel, &d.Status,
			&d.ClaimedAt, &d.SentAt, &d.DeliveredAt, &d.OpenedAt, &d.ClickedAt,
			&d.ErrorMessage, &d.CreatedAt, &d.UpdatedAt)
		return d, err
	})
	if err != nil {
		return nil, 0, err
	}
	return deliveries, total, nil
}
