package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

const campaignColumns = `id, name, type, status, content, target_criteria, start_date, end_date, created_by, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. All status mutations are conditional single statements so
// concurrent instances cannot race a transition.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a new campaign row.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	content, err := json.Marshal(c.Content)
	if err != nil {
		return err
	}
	criteria, err := json.Marshal(c.TargetCriteria)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, type, status, content, target_criteria, start_date, end_date, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		c.ID, c.Name, c.Type, c.Status, content, criteria, c.StartDate, c.EndDate, c.CreatedBy, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetByID returns a campaign by id, nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns a page of campaigns plus the total count, newest first.
func (r *CampaignRepository) List(ctx context.Context, req port.ListCampaignsReq) ([]domain.Campaign, int64, error) {
	where := ``
	args := []interface{}{}
	if req.Status != nil {
		where = ` WHERE status = $1`
		args = append(args, *req.Status)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (req.Page - 1) * req.PerPage
	query := `SELECT ` + campaignColumns + ` FROM campaigns` + where +
		` ORDER BY created_at DESC LIMIT ` + itoaArg(len(args)+1) + ` OFFSET ` + itoaArg(len(args)+2)
	args = append(args, req.PerPage, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// TransitionStatus atomically moves a campaign from one exact status to
// another.
func (r *CampaignRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, from, to)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateStatus sets the status unless the campaign is already terminal.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, to domain.CampaignStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $2, updated_at = now()
         WHERE id = $1 AND status NOT IN ('completed','cancelled')`,
		id, to)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListDueScheduled returns scheduled campaigns whose activation window is
// open at now, oldest start first.
func (r *CampaignRepository) ListDueScheduled(ctx context.Context, now time.Time, limit int) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE status = 'scheduled'
          AND (start_date IS NULL OR start_date <= $1)
          AND (end_date IS NULL OR end_date > $1)
        ORDER BY start_date NULLS FIRST
        LIMIT $2`, now, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// ActivateAndMaterialize transitions the campaign scheduled->active and
// bulk-inserts one pending delivery per row, all in a single transaction.
// Either the whole audience is inserted or none of it; the conflict-ignoring
// insert on (campaign, user, channel) makes repeated activation attempts
// idempotent.
func (r *CampaignRepository) ActivateAndMaterialize(ctx context.Context, id uuid.UUID, rows []port.PendingDelivery) (inserted int64, activated bool, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx,
		`UPDATE campaigns SET status = 'active', updated_at = now() WHERE id = $1 AND status = 'scheduled'`,
		id)
	if err != nil {
		return 0, false, err
	}
	if tag.RowsAffected() == 0 {
		// another instance already activated it, or the state changed
		return 0, false, nil
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(`INSERT INTO deliveries (id, campaign_id, user_id, channel, status)
VALUES ($1,$2,$3,$4,'pending')
ON CONFLICT (campaign_id, user_id, channel) DO NOTHING`,
			uuid.New(), id, row.UserID, row.Channel)
	}
	br := tx.SendBatch(ctx, batch)

	for range rows {
		tag, err = br.Exec()
		if err != nil {
			_ = br.Close()
			return 0, false, err
		}
		inserted += tag.RowsAffected()
	}
	if err = br.Close(); err != nil {
		return 0, false, err
	}
	return inserted, true, nil
}

// CompleteExpired transitions campaigns whose end date passed to completed.
// Active campaigns stop dispatching, still-scheduled ones never materialize.
func (r *CampaignRepository) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = 'completed', updated_at = now()
         WHERE status IN ('active','scheduled') AND end_date IS NOT NULL AND end_date <= $1`,
		now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		contentRaw  []byte
		criteriaRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Type,
		&c.Status,
		&contentRaw,
		&criteriaRaw,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(contentRaw, &c.Content); err != nil {
		return nil, err
	}
	// unknown criteria keys are ignored by the decoder, keeping old rows
	// readable as predicates are added
	if err = json.Unmarshal(criteriaRaw, &c.TargetCriteria); err != nil {
		return nil, err
	}
	return &c, nil
}
