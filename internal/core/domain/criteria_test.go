package domain

import (
	"errors"
	"testing"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestCriteriaValidate(t *testing.T) {
	if err := (TargetCriteria{}).Validate(); err != nil {
		t.Fatalf("empty criteria rejected: %v", err)
	}

	ok := TargetCriteria{
		LoyaltyTiers:         []Tier{TierGold, TierPlatinum},
		MinTotalSpend:        int64Ptr(50000),
		MinCompletedBookings: intPtr(3),
		MinAge:               intPtr(21),
		MaxAge:               intPtr(65),
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid criteria rejected: %v", err)
	}

	cases := []struct {
		name     string
		criteria TargetCriteria
		field    string
	}{
		{"unknown tier", TargetCriteria{LoyaltyTiers: []Tier{"diamond"}}, "loyalty_tiers"},
		{"negative spend", TargetCriteria{MinTotalSpend: int64Ptr(-1)}, "min_total_spend"},
		{"negative bookings", TargetCriteria{MinCompletedBookings: intPtr(-1)}, "min_completed_bookings"},
		{"negative last stay", TargetCriteria{MinDaysSinceLastStay: intPtr(-5)}, "min_days_since_last_stay"},
		{"negative registered", TargetCriteria{MinDaysSinceRegistered: intPtr(-5)}, "min_days_since_registered"},
		{"negative min age", TargetCriteria{MinAge: intPtr(-1)}, "min_age"},
		{"negative max age", TargetCriteria{MaxAge: intPtr(-1)}, "max_age"},
		{"max age below min age", TargetCriteria{MinAge: intPtr(40), MaxAge: intPtr(30)}, "max_age"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.criteria.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestCriteriaEmpty(t *testing.T) {
	if !(TargetCriteria{}).Empty() {
		t.Fatal("zero criteria should be empty")
	}
	if (TargetCriteria{MinAge: intPtr(18)}).Empty() {
		t.Fatal("criteria with a predicate should not be empty")
	}
}

// TestTierRank pins the audience ordering weights.
func TestTierRank(t *testing.T) {
	order := []Tier{TierBronze, TierSilver, TierGold, TierPlatinum}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Fatalf("%s should outrank %s", order[i], order[i-1])
		}
	}
	if Tier("diamond").Rank() != 0 {
		t.Fatal("unknown tier should rank 0")
	}
}
