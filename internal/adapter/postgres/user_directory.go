package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loyalty-campaigns/internal/core/domain"
)

// UserDirectory implements port.UserDirectory over the users and bookings
// tables. The subsystem only ever reads from them.
//
// Each evaluation joins the user population with one derived aggregate per
// user (completed bookings, total spend, most recent checkout), computed
// once per query rather than once per predicate.
type UserDirectory struct {
	pool *pgxpool.Pool
}

// NewUserDirectory returns a new directory instance.
func NewUserDirectory(pool *pgxpool.Pool) *UserDirectory {
	return &UserDirectory{pool: pool}
}

const audienceBase = `
FROM users u
LEFT JOIN (
    SELECT user_id,
           count(*) AS completed_bookings,
           COALESCE(sum(total_amount), 0) AS total_spend,
           max(check_out_date) AS last_checkout
    FROM bookings
    WHERE status = 'completed'
    GROUP BY user_id
) b ON b.user_id = u.id
WHERE u.deleted_at IS NULL`

const audienceOrder = `
ORDER BY CASE u.tier WHEN 'platinum' THEN 4 WHEN 'gold' THEN 3 WHEN 'silver' THEN 2 ELSE 1 END DESC,
         u.points DESC,
         u.id ASC`

const audienceSelect = `
SELECT u.id, u.tier, u.points,
       COALESCE(u.email, '') <> '' AS has_email,
       COALESCE(u.phone, '') <> '' AS has_phone,
       COALESCE(u.push_token, '') <> '' AS has_push`

// buildCriteriaFilter maps each present predicate onto a parameterized SQL
// clause. The predicate set is fixed and enumerated here; criteria never
// contribute raw SQL text.
//
// Users with no completed booking never match min_days_since_last_stay:
// the inactivity predicate requires a known last checkout, so a NULL
// aggregate is excluded rather than vacuously matched.
func buildCriteriaFilter(c domain.TargetCriteria, now time.Time) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	next := func(val interface{}) string {
		args = append(args, val)
		return itoaArg(len(args))
	}

	if len(c.LoyaltyTiers) > 0 {
		tiers := make([]string, 0, len(c.LoyaltyTiers))
		for _, t := range c.LoyaltyTiers {
			tiers = append(tiers, string(t))
		}
		clauses = append(clauses, `u.tier = ANY(`+next(tiers)+`)`)
	}
	if c.MinTotalSpend != nil {
		clauses = append(clauses, `COALESCE(b.total_spend, 0) >= `+next(*c.MinTotalSpend))
	}
	if c.MinCompletedBookings != nil {
		clauses = append(clauses, `COALESCE(b.completed_bookings, 0) >= `+next(*c.MinCompletedBookings))
	}
	if c.MinDaysSinceLastStay != nil {
		cutoff := now.AddDate(0, 0, -*c.MinDaysSinceLastStay)
		clauses = append(clauses, `b.last_checkout IS NOT NULL AND b.last_checkout <= `+next(cutoff))
	}
	if c.MinDaysSinceRegistered != nil {
		cutoff := now.AddDate(0, 0, -*c.MinDaysSinceRegistered)
		clauses = append(clauses, `u.registered_at <= `+next(cutoff))
	}
	if c.MinAge != nil {
		cutoff := now.AddDate(-*c.MinAge, 0, 0)
		clauses = append(clauses, `u.birth_date IS NOT NULL AND u.birth_date <= `+next(cutoff))
	}
	if c.MaxAge != nil {
		cutoff := now.AddDate(-(*c.MaxAge + 1), 0, 0)
		clauses = append(clauses, `u.birth_date IS NOT NULL AND u.birth_date > `+next(cutoff))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(clauses, " AND "), args
}

// SelectAudience returns every non-deleted user matching the criteria,
// ordered tier rank descending, points descending, id ascending.
func (d *UserDirectory) SelectAudience(ctx context.Context, criteria domain.TargetCriteria) ([]domain.AudienceMember, error) {
	filter, args := buildCriteriaFilter(criteria, time.Now().UTC())
	rows, err := d.pool.Query(ctx, audienceSelect+audienceBase+filter+audienceOrder, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAudienceMember)
}

// CountAudience returns the matching population size and a bounded ordered
// sample without materializing anything.
func (d *UserDirectory) CountAudience(ctx context.Context, criteria domain.TargetCriteria, sampleSize int) (*domain.AudiencePreview, error) {
	filter, args := buildCriteriaFilter(criteria, time.Now().UTC())

	var total int64
	if err := d.pool.QueryRow(ctx, `SELECT count(*)`+audienceBase+filter, args...).Scan(&total); err != nil {
		return nil, err
	}

	limitArgs := append(append([]interface{}{}, args...), sampleSize)
	rows, err := d.pool.Query(ctx,
		audienceSelect+audienceBase+filter+audienceOrder+` LIMIT `+itoaArg(len(limitArgs)),
		limitArgs...)
	if err != nil {
		return nil, err
	}
	sample, err := pgx.CollectRows(rows, scanAudienceMember)
	if err != nil {
		return nil, err
	}
	return &domain.AudiencePreview{Total: total, Sample: sample}, nil
}

// GetRecipient returns the channel addresses of one user, nil when the user
// is absent or deleted.
func (d *UserDirectory) GetRecipient(ctx context.Context, userID uuid.UUID) (*domain.Recipient, error) {
	var (
		r                         domain.Recipient
		email, phone, token, plat *string
	)
	err := d.pool.QueryRow(ctx,
		`SELECT id, email, phone, push_token, push_platform FROM users WHERE id = $1 AND deleted_at IS NULL`,
		userID).Scan(&r.UserID, &email, &phone, &token, &plat)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if email != nil {
		r.Email = *email
	}
	if phone != nil {
		r.Phone = *phone
	}
	if token != nil {
		r.PushToken = *token
	}
	if plat != nil {
		r.PushPlatform = *plat
	}
	return &r, nil
}

func scanAudienceMember(row pgx.CollectableRow) (domain.AudienceMember, error) {
	var m domain.AudienceMember
	err := row.Scan(&m.UserID, &m.Tier, &m.Points, &m.HasEmail, &m.HasPhone, &m.HasPush)
	return m, err
}
