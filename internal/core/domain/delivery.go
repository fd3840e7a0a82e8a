package domain

import (
	"time"

	"github.com/google/uuid"
)

// Channel is a concrete transport a message is dispatched on.
type Channel string

const (
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// DeliveryStatus is the dispatch state of a single delivery. Statuses only
// move forward: pending -> processing -> sent -> delivered, or processing ->
// failed | bounced.
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusProcessing DeliveryStatus = "processing"
	DeliveryStatusSent       DeliveryStatus = "sent"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusFailed     DeliveryStatus = "failed"
	DeliveryStatusBounced    DeliveryStatus = "bounced"
)

// Delivery is one channel-specific dispatch attempt of a campaign to one
// user. Rows are unique per (campaign, user, channel).
type Delivery struct {
	ID           uuid.UUID
	CampaignID   uuid.UUID
	UserID       uuid.UUID
	Channel      Channel
	Status       DeliveryStatus
	ClaimedAt    *time.Time
	SentAt       *time.Time
	DeliveredAt  *time.Time
	OpenedAt     *time.Time
	ClickedAt    *time.Time
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClaimedDelivery is a delivery claimed for dispatch, joined with the
// campaign content the processor needs to render the message.
type ClaimedDelivery struct {
	Delivery
	Content Content
}

// Message is the rendered payload handed to a channel adapter.
type Message struct {
	Title    string
	Body     string
	MediaURL string
	CTAURL   string
}

// Render maps campaign content onto the wire message. Templating and
// localization happen upstream of this subsystem; rendering here is a plain
// field mapping.
func (c Content) Render() Message {
	return Message{
		Title:    c.Title,
		Body:     c.Body,
		MediaURL: c.MediaURL,
		CTAURL:   c.CTAURL,
	}
}

// SendResult is the transport-level outcome of a channel adapter call.
type SendResult struct {
	// TransportID is the provider-side identifier of the accepted message,
	// when the transport reports one.
	TransportID string
	// Confirmed is true when the transport synchronously confirmed final
	// delivery, not just acceptance.
	Confirmed bool
}
