package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignType determines which channels a campaign dispatches on.
type CampaignType string

const (
	CampaignTypePush         CampaignType = "push"
	CampaignTypeEmail        CampaignType = "email"
	CampaignTypeSMS          CampaignType = "sms"
	CampaignTypeMultiChannel CampaignType = "multi_channel"
)

// Valid reports whether t is one of the enumerated campaign types.
func (t CampaignType) Valid() bool {
	switch t {
	case CampaignTypePush, CampaignTypeEmail, CampaignTypeSMS, CampaignTypeMultiChannel:
		return true
	}
	return false
}

// Channels returns the delivery channels a campaign of this type targets.
func (t CampaignType) Channels() []Channel {
	switch t {
	case CampaignTypePush:
		return []Channel{ChannelPush}
	case CampaignTypeEmail:
		return []Channel{ChannelEmail}
	case CampaignTypeSMS:
		return []Channel{ChannelSMS}
	case CampaignTypeMultiChannel:
		return []Channel{ChannelPush, ChannelEmail, ChannelSMS}
	}
	return nil
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// Valid reports whether s is one of the enumerated campaign statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusActive,
		CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed out of s.
func (s CampaignStatus) Terminal() bool {
	return s == CampaignStatusCompleted || s == CampaignStatusCancelled
}

// Content is the channel-agnostic message payload of a campaign. Rendering
// per channel happens at dispatch time.
type Content struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	MediaURL string `json:"media_url,omitempty"`
	CTAURL   string `json:"cta_url,omitempty"`
}

// Campaign represents a configured message with target criteria and a
// lifecycle state. It is owned by the lifecycle manager and mutated only
// through declared transitions.
type Campaign struct {
	ID             uuid.UUID
	Name           string
	Type           CampaignType
	Status         CampaignStatus
	Content        Content
	TargetCriteria TargetCriteria
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the invariants enforced at creation time. Violations are
// reported as a ValidationError naming the offending field.
func (c *Campaign) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !c.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "unknown campaign type"}
	}
	if c.Content.Title == "" {
		return &ValidationError{Field: "content.title", Reason: "must not be empty"}
	}
	if c.Content.Body == "" {
		return &ValidationError{Field: "content.body", Reason: "must not be empty"}
	}
	if c.StartDate != nil && c.EndDate != nil && !c.EndDate.After(*c.StartDate) {
		return &ValidationError{Field: "end_date", Reason: "must be after start_date"}
	}
	return c.TargetCriteria.Validate()
}

// WindowOpen reports whether the activation window of the campaign is open
// at the given instant. A nil start opens immediately, a nil end never closes.
func (c *Campaign) WindowOpen(now time.Time) bool {
	if c.StartDate != nil && now.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && !now.Before(*c.EndDate) {
		return false
	}
	return true
}

// Expired reports whether the campaign window has closed.
func (c *Campaign) Expired(now time.Time) bool {
	return c.EndDate != nil && !now.Before(*c.EndDate)
}
