package httpadapter

import (
	"encoding/json"
	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleCreateCampaign creates a draft campaign from the request body.
// Parsing errors produce HTTP 400, validation failures HTTP 400 with the
// field named, success HTTP 201 with the stored campaign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleListCampaigns returns a page of campaigns. It accepts optional
// `status`, `page` and `per_page` query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req port.ListCampaignsReq
	)
	if s := q.Get("status"); s != "" {
		status := domain.CampaignStatus(s)
		if !status.Valid() {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		req.Status = &status
	}
	req.Page, _ = strconv.Atoi(q.Get("page"))
	req.PerPage, _ = strconv.Atoi(q.Get("per_page"))

	page, err := h.campaigns.List(r.Context(), req)
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	out := make([]campaignResponse, 0, len(page.Campaigns))
	for i := range page.Campaigns {
		out = append(out, toCampaignResponse(&page.Campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"campaigns": out,
		"total":     page.Total,
	})
}

// handleGetCampaign returns one campaign by id.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleScheduleCampaign moves a draft campaign to scheduled. A campaign in
// any other state produces HTTP 409.
func (h *Handler) handleScheduleCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.campaigns.Schedule(r.Context(), id)
	if err != nil {
		h.writeError(w, "schedule campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleUpdateCampaignStatus applies an explicitly requested status, for
// pausing, resuming and cancelling. Transitions out of a terminal state
// produce HTTP 409.
func (h *Handler) handleUpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	var body struct {
		Status domain.CampaignStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		h.writeError(w, "update campaign status", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handlePreviewAudience estimates the audience matching a criteria set
// without touching any campaign. The body is the criteria object itself.
func (h *Handler) handlePreviewAudience(w http.ResponseWriter, r *http.Request) {
	var criteria domain.TargetCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	preview, err := h.campaigns.PreviewAudience(r.Context(), criteria)
	if err != nil {
		h.writeError(w, "preview audience", err)
		return
	}
	h.writeJSON(w, http.StatusOK, preview)
}

// handleListDeliveries returns a page of the campaign's delivery records.
func (h *Handler) handleListDeliveries(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	res, err := h.campaigns.ListDeliveries(r.Context(), id, page, perPage)
	if err != nil {
		h.writeError(w, "list deliveries", err)
		return
	}
	out := make([]deliveryResponse, 0, len(res.Deliveries))
	for _, d := range res.Deliveries {
		out = append(out, toDeliveryResponse(d))
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"deliveries": out,
		"total":      res.Total,
	})
}

// campaignID parses the {campaignID} path parameter, answering HTTP 400
// itself when the value is not a UUID.
func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
