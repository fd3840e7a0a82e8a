package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func validCampaign() *Campaign {
	return &Campaign{
		ID:     uuid.New(),
		Name:   "Winback gold+",
		Type:   CampaignTypeEmail,
		Status: CampaignStatusDraft,
		Content: Content{
			Title: "We miss you",
			Body:  "Come back for 2x points",
		},
	}
}

// TestCampaignValidate exercises the creation-time invariants field by field.
func TestCampaignValidate(t *testing.T) {
	if err := validCampaign().Validate(); err != nil {
		t.Fatalf("valid campaign rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Campaign)
		field  string
	}{
		{"empty name", func(c *Campaign) { c.Name = "" }, "name"},
		{"unknown type", func(c *Campaign) { c.Type = "carrier_pigeon" }, "type"},
		{"empty title", func(c *Campaign) { c.Content.Title = "" }, "content.title"},
		{"empty body", func(c *Campaign) { c.Content.Body = "" }, "content.body"},
		{"end before start", func(c *Campaign) {
			start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
			end := start.Add(-time.Hour)
			c.StartDate, c.EndDate = &start, &end
		}, "end_date"},
		{"unknown tier in criteria", func(c *Campaign) {
			c.TargetCriteria.LoyaltyTiers = []Tier{"diamond"}
		}, "loyalty_tiers"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCampaign()
			tc.mutate(c)
			err := c.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

// TestCampaignWindow checks the open/expired logic around nil bounds.
func TestCampaignWindow(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	c := validCampaign()
	if !c.WindowOpen(now) {
		t.Fatal("campaign with no bounds should be open")
	}
	if c.Expired(now) {
		t.Fatal("campaign with no end should never expire")
	}

	c.StartDate = &after
	if c.WindowOpen(now) {
		t.Fatal("campaign before its start should be closed")
	}

	c.StartDate = &before
	c.EndDate = &before
	if c.WindowOpen(now) {
		t.Fatal("campaign past its end should be closed")
	}
	if !c.Expired(now) {
		t.Fatal("campaign past its end should be expired")
	}
}

func TestCampaignStatusTerminal(t *testing.T) {
	for _, s := range []CampaignStatus{CampaignStatusCompleted, CampaignStatusCancelled} {
		if !s.Terminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	for _, s := range []CampaignStatus{CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusActive, CampaignStatusPaused} {
		if s.Terminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
	if CampaignStatus("archived").Valid() {
		t.Fatal("unknown status accepted")
	}
}

// TestCampaignTypeChannels pins the type-to-channel mapping the scheduler
// expands audiences with.
func TestCampaignTypeChannels(t *testing.T) {
	if got := CampaignTypeEmail.Channels(); len(got) != 1 || got[0] != ChannelEmail {
		t.Fatalf("email type channels = %v", got)
	}
	if got := CampaignTypeMultiChannel.Channels(); len(got) != 3 {
		t.Fatalf("multi_channel should target all channels, got %v", got)
	}
	if got := CampaignType("carrier_pigeon").Channels(); got != nil {
		t.Fatalf("unknown type should have no channels, got %v", got)
	}
}
