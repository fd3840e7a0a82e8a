package port

import (
	"context"

	"loyalty-campaigns/internal/core/domain"
)

// ChannelAdapter is the capability interface over the concrete message
// transports. It is called once per delivery and must not assume batching.
// A domain.ErrBounced return marks a hard rejection; any other error is a
// transient transport failure recorded on the delivery. Callers bound every
// Send with a timeout context.
type ChannelAdapter interface {
	Send(ctx context.Context, ch domain.Channel, to domain.Recipient, msg domain.Message) (*domain.SendResult, error)
}
