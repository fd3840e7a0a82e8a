package httpadapter

import (
	"loyalty-campaigns/internal/core/port"
	"net/http"
	"strconv"
	"time"
)

// statsFilter parses the optional `from` and `to` RFC3339 query parameters.
// An absent side leaves the range unbounded. It reports false after writing
// HTTP 400 when a value does not parse.
func (h *Handler) statsFilter(w http.ResponseWriter, r *http.Request) (port.StatsFilter, bool) {
	var (
		q = r.URL.Query()
		f port.StatsFilter
	)
	if s := q.Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return f, false
		}
		f.From = t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return f, false
		}
		f.To = t
	}
	return f, true
}

// handleMetricsOverview returns delivery and engagement counters aggregated
// across all campaigns, with derived open and click rates.
func (h *Handler) handleMetricsOverview(w http.ResponseWriter, r *http.Request) {
	f, ok := h.statsFilter(w, r)
	if !ok {
		return
	}
	stats, err := h.analytics.Overview(r.Context(), f)
	if err != nil {
		h.writeError(w, "metrics overview", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleMetricsByType returns the same counters grouped per campaign type.
func (h *Handler) handleMetricsByType(w http.ResponseWriter, r *http.Request) {
	f, ok := h.statsFilter(w, r)
	if !ok {
		return
	}
	stats, err := h.analytics.ByType(r.Context(), f)
	if err != nil {
		h.writeError(w, "metrics by type", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"types": stats})
}

// handleTopCampaigns ranks campaigns by an allow-listed metric. Unknown
// metric names fall back to open rate rather than failing; the `limit`
// parameter is clamped downstream.
func (h *Handler) handleTopCampaigns(w http.ResponseWriter, r *http.Request) {
	f, ok := h.statsFilter(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	stats, err := h.analytics.TopCampaigns(r.Context(), q.Get("metric"), limit, f)
	if err != nil {
		h.writeError(w, "top campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaigns": stats})
}

// handleCampaignMetrics returns the counters of a single campaign. An
// unknown campaign answers 404 even when the date range is empty.
func (h *Handler) handleCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	f, ok := h.statsFilter(w, r)
	if !ok {
		return
	}
	stats, err := h.analytics.CampaignMetrics(r.Context(), id, f)
	if err != nil {
		h.writeError(w, "campaign metrics", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
