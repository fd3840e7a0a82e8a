package domain

import "time"

// Metric types group rollup counters by origin.
const (
	MetricTypeDelivery   = "delivery"
	MetricTypeEngagement = "engagement"
)

// Metric names used by the dispatch pipeline and the engagement tracker.
const (
	MetricMaterialized = "deliveries_materialized"
	MetricSent         = "deliveries_sent"
	MetricDelivered    = "deliveries_delivered"
	MetricFailed       = "deliveries_failed"
	MetricBounced      = "deliveries_bounced"
	MetricOpens        = "opens"
	MetricClicks       = "clicks"
)

// MetricIncrement is one additive contribution to a daily rollup counter,
// keyed by (date, type, name, dimensions). Accumulation is at-least-once:
// conflicting keys add, never overwrite.
type MetricIncrement struct {
	Date       time.Time
	MetricType string
	MetricName string
	Dimensions map[string]string
	Delta      int64
}

// CampaignStats are the raw per-campaign delivery counters analytics rates
// derive from.
type CampaignStats struct {
	CampaignID   string  `json:"campaign_id,omitempty"`
	CampaignName string  `json:"campaign_name,omitempty"`
	CampaignType string  `json:"campaign_type,omitempty"`
	Total        int64   `json:"total_deliveries"`
	Sent         int64   `json:"sent"`
	Delivered    int64   `json:"delivered"`
	Failed       int64   `json:"failed"`
	Bounced      int64   `json:"bounced"`
	Opens        int64   `json:"opens"`
	Clicks       int64   `json:"clicks"`
	OpenRate     float64 `json:"open_rate"`
	ClickRate    float64 `json:"click_rate"`
}

// ComputeRates fills OpenRate (opens/delivered) and ClickRate (clicks/opens).
// A zero denominator yields a zero rate, never NaN.
func (s *CampaignStats) ComputeRates() {
	s.OpenRate = Rate(s.Opens, s.Delivered)
	s.ClickRate = Rate(s.Clicks, s.Opens)
}

// Rate divides num by den, defining x/0 as 0.
func Rate(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// Allow-listed sort keys for campaign ranking. Anything else falls back to
// TopMetricOpenRate.
const (
	TopMetricOpenRate        = "open_rate"
	TopMetricClickRate       = "click_rate"
	TopMetricTotalDeliveries = "total_deliveries"
	TopMetricTotalOpens      = "total_opens"
)

// NormalizeTopMetric maps a requested ranking metric onto the allow-list,
// falling back to open rate for unknown keys.
func NormalizeTopMetric(metric string) string {
	switch metric {
	case TopMetricOpenRate, TopMetricClickRate, TopMetricTotalDeliveries, TopMetricTotalOpens:
		return metric
	}
	return TopMetricOpenRate
}
