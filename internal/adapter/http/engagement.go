package httpadapter

import (
	"errors"
	"loyalty-campaigns/internal/core/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"log/slog"
)

// trackingPixel is a 1x1 transparent GIF served on open tracking.
var trackingPixel = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// handleTrackOpen records an open signal and serves the tracking pixel. The
// pixel is served no matter what the signal resolved to: duplicates, unknown
// deliveries and internal failures must never break image loading in a mail
// client. Only a malformed delivery id is rejected outright.
func (h *Handler) handleTrackOpen(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "deliveryID"))
	if err != nil {
		http.Error(w, "invalid delivery id", http.StatusBadRequest)
		return
	}
	if err = h.engagement.MarkOpened(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRecorded),
			errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrInvalidState):
			// expected noise from retries, forwards and prefetchers
		default:
			h.logger.Error("track open error",
				slog.String("delivery_id", id.String()), slog.Any("error", err))
		}
	}
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	_, _ = w.Write(trackingPixel)
}

// handleTrackClick records a click and redirects to the campaign CTA URL.
// A duplicate click still redirects; a campaign without a CTA answers
// HTTP 204. Unknown or never-dispatched deliveries answer 404, and internal
// errors are logged and masked as 404 to avoid leaking information.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "deliveryID"))
	if err != nil {
		http.Error(w, "invalid delivery id", http.StatusBadRequest)
		return
	}
	target, err := h.engagement.MarkClicked(r.Context(), id)
	if err != nil && !errors.Is(err, domain.ErrAlreadyRecorded) {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidState) {
			h.logger.Error("track click error",
				slog.String("delivery_id", id.String()), slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	if target == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
