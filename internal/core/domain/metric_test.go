package domain

import "testing"

// TestRateZeroDenominator is the contract analytics relies on: no NaN, no
// panic, a zero rate.
func TestRateZeroDenominator(t *testing.T) {
	if got := Rate(5, 0); got != 0 {
		t.Fatalf("Rate(5, 0) = %v, want 0", got)
	}
	if got := Rate(1, 4); got != 0.25 {
		t.Fatalf("Rate(1, 4) = %v, want 0.25", got)
	}
}

func TestComputeRates(t *testing.T) {
	s := CampaignStats{Delivered: 200, Opens: 50, Clicks: 10}
	s.ComputeRates()
	if s.OpenRate != 0.25 {
		t.Fatalf("open rate = %v, want 0.25", s.OpenRate)
	}
	if s.ClickRate != 0.2 {
		t.Fatalf("click rate = %v, want 0.2", s.ClickRate)
	}

	var empty CampaignStats
	empty.ComputeRates()
	if empty.OpenRate != 0 || empty.ClickRate != 0 {
		t.Fatalf("empty stats should have zero rates, got %v / %v", empty.OpenRate, empty.ClickRate)
	}
}

func TestNormalizeTopMetric(t *testing.T) {
	for _, m := range []string{TopMetricOpenRate, TopMetricClickRate, TopMetricTotalDeliveries, TopMetricTotalOpens} {
		if got := NormalizeTopMetric(m); got != m {
			t.Fatalf("NormalizeTopMetric(%q) = %q", m, got)
		}
	}
	if got := NormalizeTopMetric("revenue"); got != TopMetricOpenRate {
		t.Fatalf("unknown metric should fall back to open_rate, got %q", got)
	}
	if got := NormalizeTopMetric(""); got != TopMetricOpenRate {
		t.Fatalf("empty metric should fall back to open_rate, got %q", got)
	}
}
