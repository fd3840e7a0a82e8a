package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the campaign engine database: a population of
// loyalty members with booking history and a couple of campaigns ready for
// the scheduler to pick up.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	tiers := []string{"bronze", "silver", "gold", "platinum"}

	// create users with booking history
	for i := 1; i <= 40; i++ {
		id := uuid.New()
		tier := tiers[r.Intn(len(tiers))]
		points := r.Intn(20000)
		email := fmt.Sprintf("guest%d@example.com", i)
		phone := fmt.Sprintf("+3519%08d", r.Intn(100000000))
		var pushToken *string
		if r.Intn(2) == 0 {
			t := uuid.NewString()
			pushToken = &t
		}
		birth := time.Now().AddDate(-20-r.Intn(50), 0, 0)
		registered := time.Now().AddDate(0, -r.Intn(36), 0)
		_, err := db.Exec(ctx, `INSERT INTO users
    (id, email, phone, push_token, push_platform, first_name, last_name, tier, points, birth_date, registered_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
			id, email, phone, pushToken, "fcm", fmt.Sprintf("Guest%d", i), "Demo", tier, points, birth, registered)
		if err != nil {
			return err
		}
		// completed stays feeding the segmentation aggregates
		for j := 0; j < r.Intn(6); j++ {
			checkout := time.Now().AddDate(0, 0, -r.Intn(400))
			amount := int64(5000 + r.Intn(200000))
			_, err = db.Exec(ctx, `INSERT INTO bookings
    (id, user_id, status, check_out_date, total_amount)
VALUES ($1,$2,'completed',$3,$4) ON CONFLICT DO NOTHING`,
				uuid.New(), id, checkout, amount)
			if err != nil {
				return err
			}
		}
	}

	// a scheduled campaign the scheduler will activate on its next tick
	start := time.Now().Add(-time.Minute)
	end := time.Now().AddDate(0, 1, 0)
	content, _ := json.Marshal(map[string]string{
		"title":   "We miss you",
		"body":    "Come back for a weekend stay and earn double points.",
		"cta_url": "https://example.com/offers/comeback",
	})
	criteria, _ := json.Marshal(map[string]any{
		"loyalty_tiers": []string{"gold", "platinum"},
	})
	_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, type, status, content, target_criteria, start_date, end_date, created_by)
VALUES ($1,$2,$3,'scheduled',$4,$5,$6,$7,'seed') ON CONFLICT DO NOTHING`,
		uuid.New(), "Winback gold+", "email", content, criteria, start, end)
	if err != nil {
		return err
	}

	// a draft multi-channel campaign for manual testing of the admin API
	content, _ = json.Marshal(map[string]string{
		"title": "Summer escape",
		"body":  "Book three nights, pay for two.",
	})
	criteria, _ = json.Marshal(map[string]any{
		"min_total_spend": 10000,
	})
	_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, name, type, status, content, target_criteria, created_by)
VALUES ($1,$2,$3,'draft',$4,$5,'seed') ON CONFLICT DO NOTHING`,
		uuid.New(), "Summer escape", "multi_channel", content, criteria)
	if err != nil {
		return err
	}

	return nil
}
