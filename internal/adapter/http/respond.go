package httpadapter

import (
	"encoding/json"
	"errors"
	"loyalty-campaigns/internal/core/domain"
	"net/http"
	"time"

	"log/slog"
)

// campaignResponse is the JSON shape of a campaign on the management API.
type campaignResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Type           string                `json:"type"`
	Status         string                `json:"status"`
	Content        domain.Content        `json:"content"`
	TargetCriteria domain.TargetCriteria `json:"target_criteria"`
	StartDate      *time.Time            `json:"start_date,omitempty"`
	EndDate        *time.Time            `json:"end_date,omitempty"`
	CreatedBy      string                `json:"created_by,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Type:           string(c.Type),
		Status:         string(c.Status),
		Content:        c.Content,
		TargetCriteria: c.TargetCriteria,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		CreatedBy:      c.CreatedBy,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// deliveryResponse is the JSON shape of a delivery record.
type deliveryResponse struct {
	ID           string     `json:"id"`
	CampaignID   string     `json:"campaign_id"`
	UserID       string     `json:"user_id"`
	Channel      string     `json:"channel"`
	Status       string     `json:"status"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
	ClickedAt    *time.Time `json:"clicked_at,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toDeliveryResponse(d domain.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:           d.ID.String(),
		CampaignID:   d.CampaignID.String(),
		UserID:       d.UserID.String(),
		Channel:      string(d.Channel),
		Status:       string(d.Status),
		SentAt:       d.SentAt,
		DeliveredAt:  d.DeliveredAt,
		OpenedAt:     d.OpenedAt,
		ClickedAt:    d.ClickedAt,
		ErrorMessage: d.ErrorMessage,
		CreatedAt:    d.CreatedAt,
	}
}

// writeJSON encodes v as the response body with the given status code.
// Encoding failures are logged; the status line is already gone by then.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto HTTP statuses: validation failures
// become 400 with the offending field named, absent resources 404, illegal
// lifecycle transitions 409. Everything else is logged and hidden behind a
// generic 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidState):
		http.Error(w, "conflicting campaign state", http.StatusConflict)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
