package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

// MetricRepository implements port.MetricRepository. Rollups go to the
// daily_metrics table with increment-on-conflict semantics; the analytics
// aggregates read straight from the delivery rows, which stay the source of
// truth.
type MetricRepository struct {
	pool *pgxpool.Pool
}

// NewMetricRepository returns a new repository instance.
func NewMetricRepository(pool *pgxpool.Pool) *MetricRepository {
	return &MetricRepository{pool: pool}
}

// Increment adds inc.Delta to the counter keyed by (date, type, name,
// dimensions). Conflicting keys accumulate, never overwrite, so replayed
// increments at worst overcount (at-least-once).
func (r *MetricRepository) Increment(ctx context.Context, inc domain.MetricIncrement) error {
	dims := inc.Dimensions
	if dims == nil {
		dims = map[string]string{}
	}
	// map marshalling sorts keys, keeping the jsonb key canonical
	raw, err := json.Marshal(dims)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO daily_metrics (metric_date, metric_type, metric_name, dimensions, value)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (metric_date, metric_type, metric_name, dimensions)
DO UPDATE SET value = daily_metrics.value + EXCLUDED.value`,
		inc.Date, inc.MetricType, inc.MetricName, raw, inc.Delta)
	return err
}

// statsRange renders the optional date-range filter on a delivery column
// prefix, appending bound args. Zero bounds are unbounded.
func statsRange(col string, f port.StatsFilter, args *[]interface{}) string {
	var cond string
	if !f.From.IsZero() {
		*args = append(*args, f.From)
		cond += ` AND ` + col + ` >= ` + itoaArg(len(*args))
	}
	if !f.To.IsZero() {
		*args = append(*args, f.To)
		cond += ` AND ` + col + ` <= ` + itoaArg(len(*args))
	}
	return cond
}

const deliveryAgg = `
    count(d.id)           AS total,
    count(d.sent_at)      AS sent,
    count(d.delivered_at) AS delivered,
    count(*) FILTER (WHERE d.status = 'failed')  AS failed,
    count(*) FILTER (WHERE d.status = 'bounced') AS bounced,
    count(d.opened_at)    AS opens,
    count(d.clicked_at)   AS clicks`

// OverallStats aggregates delivery counters across all campaigns.
func (r *MetricRepository) OverallStats(ctx context.Context, f port.StatsFilter) (*domain.CampaignStats, error) {
	args := []interface{}{}
	cond := statsRange("d.created_at", f, &args)

	var s domain.CampaignStats
	err := r.pool.QueryRow(ctx,
		`SELECT`+deliveryAgg+` FROM deliveries d WHERE true`+cond, args...).Scan(
		&s.Total, &s.Sent, &s.Delivered, &s.Failed, &s.Bounced, &s.Opens, &s.Clicks)
	if err != nil {
		return nil, err
	}
	s.ComputeRates()
	return &s, nil
}

// CampaignStats aggregates delivery counters for one campaign, nil when the
// campaign does not exist.
func (r *MetricRepository) CampaignStats(ctx context.Context, campaignID uuid.UUID, f port.StatsFilter) (*domain.CampaignStats, error) {
	var s domain.CampaignStats
	err := r.pool.QueryRow(ctx,
		`SELECT id::text, name, type FROM campaigns WHERE id = $1`, campaignID).Scan(
		&s.CampaignID, &s.CampaignName, &s.CampaignType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	args := []interface{}{campaignID}
	cond := statsRange("d.created_at", f, &args)
	err = r.pool.QueryRow(ctx,
		`SELECT`+deliveryAgg+` FROM deliveries d WHERE d.campaign_id = $1`+cond, args...).Scan(
		&s.Total, &s.Sent, &s.Delivered, &s.Failed, &s.Bounced, &s.Opens, &s.Clicks)
	if err != nil {
		return nil, err
	}
	s.ComputeRates()
	return &s, nil
}

// StatsByType aggregates delivery counters per campaign type.
func (r *MetricRepository) StatsByType(ctx context.Context, f port.StatsFilter) ([]domain.CampaignStats, error) {
	args := []interface{}{}
	cond := statsRange("d.created_at", f, &args)

	// range condition lives in the join so campaigns without deliveries in
	// the window still aggregate to zeros
	rows, err := r.pool.Query(ctx, `
SELECT c.type,`+deliveryAgg+`
FROM campaigns c
LEFT JOIN deliveries d ON d.campaign_id = c.id`+cond+`
GROUP BY c.type
ORDER BY c.type`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignStats, error) {
		var s domain.CampaignStats
		err := row.Scan(&s.CampaignType, &s.Total, &s.Sent, &s.Delivered, &s.Failed, &s.Bounced, &s.Opens, &s.Clicks)
		if err != nil {
			return domain.CampaignStats{}, err
		}
		s.ComputeRates()
		return s, nil
	})
}

// topOrder maps each allow-listed ranking metric onto a fixed ORDER BY
// expression. Callers normalize the metric first; anything else would have
// already fallen back to open_rate.
var topOrder = map[string]string{
	domain.TopMetricOpenRate:        `CASE WHEN count(d.delivered_at) = 0 THEN 0 ELSE count(d.opened_at)::float / count(d.delivered_at) END`,
	domain.TopMetricClickRate:       `CASE WHEN count(d.opened_at) = 0 THEN 0 ELSE count(d.clicked_at)::float / count(d.opened_at) END`,
	domain.TopMetricTotalDeliveries: `count(d.id)`,
	domain.TopMetricTotalOpens:      `count(d.opened_at)`,
}

// TopCampaigns ranks campaigns by the given metric. The metric is mapped
// through a fixed expression table, never interpolated from input.
func (r *MetricRepository) TopCampaigns(ctx context.Context, metric string, limit int, f port.StatsFilter) ([]domain.CampaignStats, error) {
	orderExpr, ok := topOrder[domain.NormalizeTopMetric(metric)]
	if !ok {
		orderExpr = topOrder[domain.TopMetricOpenRate]
	}

	args := []interface{}{}
	cond := statsRange("d.created_at", f, &args)
	args = append(args, limit)

	query := fmt.Sprintf(`
SELECT c.id::text, c.name, c.type,%s
FROM campaigns c
LEFT JOIN deliveries d ON d.campaign_id = c.id%s
GROUP BY c.id, c.name, c.type
ORDER BY %s DESC, c.created_at DESC
LIMIT %s`, deliveryAgg, cond, orderExpr, itoaArg(len(args)))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignStats, error) {
		var s domain.CampaignStats
		err := row.Scan(&s.CampaignID, &s.CampaignName, &s.CampaignType,
			&s.Total, &s.Sent, &s.Delivered, &s.Failed, &s.Bounced, &s.Opens, &s.Clicks)
		if err != nil {
			return domain.CampaignStats{}, err
		}
		s.ComputeRates()
		return s, nil
	})
}
