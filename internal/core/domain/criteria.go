package domain

// Tier is a loyalty program level. Ordering matters for audience ranking:
// platinum > gold > silver > bronze.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Valid reports whether t is one of the enumerated tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold, TierPlatinum:
		return true
	}
	return false
}

// Rank returns the ordering weight of the tier, higher is better.
func (t Tier) Rank() int {
	switch t {
	case TierPlatinum:
		return 4
	case TierGold:
		return 3
	case TierSilver:
		return 2
	case TierBronze:
		return 1
	}
	return 0
}

// TargetCriteria is a conjunctive set of optional audience predicates. All
// present predicates are combined with AND; an empty criteria set matches the
// full non-deleted user population. Unknown keys in stored JSON are ignored
// on decode, so adding predicates later does not break old campaigns.
type TargetCriteria struct {
	LoyaltyTiers           []Tier `json:"loyalty_tiers,omitempty"`
	MinTotalSpend          *int64 `json:"min_total_spend,omitempty"`
	MinCompletedBookings   *int   `json:"min_completed_bookings,omitempty"`
	MinDaysSinceLastStay   *int   `json:"min_days_since_last_stay,omitempty"`
	MinDaysSinceRegistered *int   `json:"min_days_since_registered,omitempty"`
	MinAge                 *int   `json:"min_age,omitempty"`
	MaxAge                 *int   `json:"max_age,omitempty"`
}

// Empty reports whether no predicate is present.
func (c TargetCriteria) Empty() bool {
	return len(c.LoyaltyTiers) == 0 &&
		c.MinTotalSpend == nil &&
		c.MinCompletedBookings == nil &&
		c.MinDaysSinceLastStay == nil &&
		c.MinDaysSinceRegistered == nil &&
		c.MinAge == nil &&
		c.MaxAge == nil
}

// Validate rejects predicate values outside their legal range before any
// query executes.
func (c TargetCriteria) Validate() error {
	for _, t := range c.LoyaltyTiers {
		if !t.Valid() {
			return &ValidationError{Field: "loyalty_tiers", Reason: "unknown tier " + string(t)}
		}
	}
	if c.MinTotalSpend != nil && *c.MinTotalSpend < 0 {
		return &ValidationError{Field: "min_total_spend", Reason: "must not be negative"}
	}
	if c.MinCompletedBookings != nil && *c.MinCompletedBookings < 0 {
		return &ValidationError{Field: "min_completed_bookings", Reason: "must not be negative"}
	}
	if c.MinDaysSinceLastStay != nil && *c.MinDaysSinceLastStay < 0 {
		return &ValidationError{Field: "min_days_since_last_stay", Reason: "must not be negative"}
	}
	if c.MinDaysSinceRegistered != nil && *c.MinDaysSinceRegistered < 0 {
		return &ValidationError{Field: "min_days_since_registered", Reason: "must not be negative"}
	}
	if c.MinAge != nil && *c.MinAge < 0 {
		return &ValidationError{Field: "min_age", Reason: "must not be negative"}
	}
	if c.MaxAge != nil && *c.MaxAge < 0 {
		return &ValidationError{Field: "max_age", Reason: "must not be negative"}
	}
	if c.MinAge != nil && c.MaxAge != nil && *c.MaxAge < *c.MinAge {
		return &ValidationError{Field: "max_age", Reason: "must not be below min_age"}
	}
	return nil
}
