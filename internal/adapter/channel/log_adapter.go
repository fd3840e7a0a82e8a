package channel

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
)

// LogAdapter is the channel adapter wired when no real transport is
// configured. It accepts every message and logs it, which keeps the whole
// dispatch pipeline exercisable in development and demo environments. Real
// providers plug in behind the same port.ChannelAdapter interface.
type LogAdapter struct {
	logger *slog.Logger
}

// NewLogAdapter returns a new adapter logging through the given logger.
func NewLogAdapter(logger *slog.Logger) *LogAdapter {
	return &LogAdapter{logger: logger}
}

// Send logs the message and reports unconfirmed acceptance, mirroring an
// asynchronous provider that acknowledges submission without a delivery
// receipt.
func (a *LogAdapter) Send(ctx context.Context, ch domain.Channel, to domain.Recipient, msg domain.Message) (*domain.SendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.logger.Info("dispatching message",
		slog.String("channel", string(ch)),
		slog.String("user_id", to.UserID.String()),
		slog.String("title", msg.Title),
	)
	return &domain.SendResult{TransportID: uuid.NewString(), Confirmed: false}, nil
}
