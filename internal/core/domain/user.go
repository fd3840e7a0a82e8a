package domain

import (
	"time"

	"github.com/google/uuid"
)

// AudienceMember is one user matched by a segmentation run, carrying the
// ranking fields and channel reachability needed downstream. Ordering within
// an audience is tier rank descending, points descending, id ascending.
type AudienceMember struct {
	UserID   uuid.UUID `json:"user_id"`
	Tier     Tier      `json:"tier"`
	Points   int       `json:"points"`
	HasEmail bool      `json:"has_email"`
	HasPhone bool      `json:"has_phone"`
	HasPush  bool      `json:"has_push"`
}

// Reachable reports whether the member has an address for the channel.
func (m AudienceMember) Reachable(ch Channel) bool {
	switch ch {
	case ChannelEmail:
		return m.HasEmail
	case ChannelSMS:
		return m.HasPhone
	case ChannelPush:
		return m.HasPush
	}
	return false
}

// AudiencePreview is the dry-run output of segmentation: the matching
// population size plus a bounded sample, without materializing deliveries.
type AudiencePreview struct {
	Total  int64            `json:"total"`
	Sample []AudienceMember `json:"sample"`
}

// Recipient holds the channel addresses of one user as read from the user
// directory at dispatch time.
type Recipient struct {
	UserID       uuid.UUID
	Email        string
	Phone        string
	PushToken    string
	PushPlatform string
}

// Address returns the channel-specific address, empty when the user is not
// reachable on that channel.
func (r Recipient) Address(ch Channel) string {
	switch ch {
	case ChannelEmail:
		return r.Email
	case ChannelSMS:
		return r.Phone
	case ChannelPush:
		return r.PushToken
	}
	return ""
}

// DirectoryUser is the read-only projection of a user as exposed by the
// user directory.
type DirectoryUser struct {
	ID           uuid.UUID
	Email        string
	Phone        string
	PushToken    string
	PushPlatform string
	Tier         Tier
	Points       int
	BirthDate    *time.Time
	RegisteredAt time.Time
}
