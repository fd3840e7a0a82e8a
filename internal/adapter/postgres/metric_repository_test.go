package postgres

import (
	"testing"

	"loyalty-campaigns/internal/core/domain"
)

// TestTopOrderCoversAllowList ensures every metric the normalizer can emit
// has a fixed ORDER BY expression, so ranking never falls through to string
// concatenation of caller input.
func TestTopOrderCoversAllowList(t *testing.T) {
	for _, m := range []string{
		domain.TopMetricOpenRate,
		domain.TopMetricClickRate,
		domain.TopMetricTotalDeliveries,
		domain.TopMetricTotalOpens,
	} {
		if _, ok := topOrder[m]; !ok {
			t.Fatalf("no ORDER BY expression for %q", m)
		}
	}
	if _, ok := topOrder[domain.NormalizeTopMetric("anything; DROP TABLE campaigns")]; !ok {
		t.Fatal("normalized unknown metric must map onto the allow-list")
	}
}
