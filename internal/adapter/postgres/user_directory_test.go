package postgres

import (
	"strings"
	"testing"
	"time"

	"loyalty-campaigns/internal/core/domain"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

// TestBuildCriteriaFilterEmpty ensures an empty criteria set adds no filter
// at all, matching the full non-deleted population.
func TestBuildCriteriaFilterEmpty(t *testing.T) {
	filter, args := buildCriteriaFilter(domain.TargetCriteria{}, time.Now())
	if filter != "" {
		t.Fatalf("empty criteria produced filter %q", filter)
	}
	if args != nil {
		t.Fatalf("empty criteria produced args %v", args)
	}
}

// TestBuildCriteriaFilterPredicates checks that every predicate lands in the
// WHERE fragment as a placeholder, never as interpolated input.
func TestBuildCriteriaFilterPredicates(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	criteria := domain.TargetCriteria{
		LoyaltyTiers:           []domain.Tier{domain.TierGold, domain.TierPlatinum},
		MinTotalSpend:          int64Ptr(50000),
		MinCompletedBookings:   intPtr(3),
		MinDaysSinceLastStay:   intPtr(90),
		MinDaysSinceRegistered: intPtr(365),
		MinAge:                 intPtr(21),
		MaxAge:                 intPtr(65),
	}

	filter, args := buildCriteriaFilter(criteria, now)

	if len(args) != 7 {
		t.Fatalf("expected 7 args, got %d: %v", len(args), args)
	}
	for i := 1; i <= 7; i++ {
		if !strings.Contains(filter, itoaArg(i)) {
			t.Fatalf("filter missing placeholder $%d: %s", i, filter)
		}
	}
	for _, frag := range []string{
		"u.tier = ANY(",
		"COALESCE(b.total_spend, 0) >=",
		"COALESCE(b.completed_bookings, 0) >=",
		"b.last_checkout IS NOT NULL AND b.last_checkout <=",
		"u.registered_at <=",
		"u.birth_date IS NOT NULL AND u.birth_date <=",
		"u.birth_date IS NOT NULL AND u.birth_date >",
	} {
		if !strings.Contains(filter, frag) {
			t.Fatalf("filter missing %q: %s", frag, filter)
		}
	}
	if !strings.HasPrefix(filter, " AND ") {
		t.Fatalf("filter must extend the base WHERE clause, got %q", filter)
	}
	if strings.Contains(filter, "gold") || strings.Contains(filter, "50000") {
		t.Fatalf("filter contains interpolated values: %s", filter)
	}
}

// TestBuildCriteriaFilterCutoffs checks the date arithmetic on relative
// predicates.
func TestBuildCriteriaFilterCutoffs(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	_, args := buildCriteriaFilter(domain.TargetCriteria{MinDaysSinceLastStay: intPtr(90)}, now)
	if got := args[0].(time.Time); !got.Equal(now.AddDate(0, 0, -90)) {
		t.Fatalf("last stay cutoff = %v", got)
	}

	// Someone of max age 65 still qualifies up to the day before their 66th
	// birthday, so the exclusive bound sits 66 years back.
	_, args = buildCriteriaFilter(domain.TargetCriteria{MaxAge: intPtr(65)}, now)
	if got := args[0].(time.Time); !got.Equal(now.AddDate(-66, 0, 0)) {
		t.Fatalf("max age cutoff = %v", got)
	}

	_, args = buildCriteriaFilter(domain.TargetCriteria{MinAge: intPtr(21)}, now)
	if got := args[0].(time.Time); !got.Equal(now.AddDate(-21, 0, 0)) {
		t.Fatalf("min age cutoff = %v", got)
	}
}
