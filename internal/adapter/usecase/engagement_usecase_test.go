package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"log/slog"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMarkOpened(t *testing.T) {
	id := uuid.New()
	campaignID := uuid.New()

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		MarkOpened(mock.Anything, id, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	deliveries.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Delivery{ID: id, CampaignID: campaignID, Channel: domain.ChannelEmail}, nil)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		Increment(mock.Anything, mock.MatchedBy(func(inc domain.MetricIncrement) bool {
			return inc.MetricName == domain.MetricOpens &&
				inc.Dimensions["campaign_id"] == campaignID.String() &&
				inc.Dimensions["channel"] == string(domain.ChannelEmail) &&
				inc.Delta == 1
		})).
		Return(nil)

	svc := NewEngagementService(deliveries, mocks.NewMockCampaignRepository(t), metrics, discardLogger())

	if err := svc.MarkOpened(context.Background(), id); err != nil {
		t.Fatalf("MarkOpened error: %v", err)
	}
}

// TestMarkOpenedDuplicate ensures a second open signal is a classified
// no-op: no metric rollup, no state change.
func TestMarkOpenedDuplicate(t *testing.T) {
	id := uuid.New()
	opened := time.Now()

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		MarkOpened(mock.Anything, id, mock.AnythingOfType("time.Time")).
		Return(false, nil)
	deliveries.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Delivery{ID: id, Status: domain.DeliveryStatusSent, OpenedAt: &opened}, nil)

	svc := NewEngagementService(deliveries, mocks.NewMockCampaignRepository(t), mocks.NewMockMetricRepository(t), discardLogger())

	if err := svc.MarkOpened(context.Background(), id); !errors.Is(err, domain.ErrAlreadyRecorded) {
		t.Fatalf("expected ErrAlreadyRecorded, got %v", err)
	}
}

func TestMarkOpenedUnknownDelivery(t *testing.T) {
	id := uuid.New()

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		MarkOpened(mock.Anything, id, mock.AnythingOfType("time.Time")).
		Return(false, nil)
	deliveries.EXPECT().GetByID(mock.Anything, id).Return(nil, nil)

	svc := NewEngagementService(deliveries, mocks.NewMockCampaignRepository(t), mocks.NewMockMetricRepository(t), discardLogger())

	if err := svc.MarkOpened(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestMarkOpenedNeverDispatched covers a signal against a delivery still
// sitting in the queue: the conditional update refuses it and the
// classification reports the state conflict.
func TestMarkOpenedNeverDispatched(t *testing.T) {
	id := uuid.New()

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		MarkOpened(mock.Anything, id, mock.AnythingOfType("time.Time")).
		Return(false, nil)
	deliveries.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Delivery{ID: id, Status: domain.DeliveryStatusPending}, nil)

	svc := NewEngagementService(deliveries, mocks.NewMockCampaignRepository(t), mocks.NewMockMetricRepository(t), discardLogger())

	if err := svc.MarkOpened(context.Background(), id); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

// TestMarkClicked checks the happy path resolves the campaign CTA URL for
// the redirect.
func TestMarkClicked(t *testing.T) {
	id := uuid.New()
	campaignID := uuid.New()

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		MarkClicked(mock.Anything, id, mock.AnythingOfType("time.Time")).
		Return(true, nil)
	deliveries.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Delivery{ID: id, CampaignID: campaignID, Channel: domain.ChannelPush}, nil)

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().
		GetByID(mock.Anything, campaignID).
		Return(&domain.Campaign{
			ID:      campaignID,
			Content: domain.Content{Title: "t", Body: "b", CTAURL: "https://example.com/offer"},
		}, nil)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		Increment(mock.Anything, mock.MatchedBy(func(inc domain.MetricIncrement) bool {
			return inc.MetricName == domain.MetricClicks
		})).
		Return(nil)

	svc := NewEngagementService(deliveries, campaigns, metrics, discardLogger())

	target, err := svc.MarkClicked(context.Background(), id)
	if err != nil {
		t.Fatalf("MarkClicked error: %v", err)
	}
	if target != "https://example.com/offer" {
		t.Fatalf("target = %q", target)
	}
}

// TestMarkClickedDuplicate ensures a duplicate click still resolves the
// redirect target so the end user lands on the offer, while the caller can
// tell nothing was recorded.
func TestMarkClickedDuplicate(t *testing.T) {
	id := uuid.New()
	campaignID := uuid.New()
	clicked := time.Now()

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		MarkClicked(mock.Anything, id, mock.AnythingOfType("time.Time")).
		Return(false, nil)
	deliveries.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Delivery{
			ID:         id,
			CampaignID: campaignID,
			Status:     domain.DeliveryStatusSent,
			ClickedAt:  &clicked,
		}, nil)

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().
		GetByID(mock.Anything, campaignID).
		Return(&domain.Campaign{
			ID:      campaignID,
			Content: domain.Content{Title: "t", Body: "b", CTAURL: "https://example.com/offer"},
		}, nil)

	svc := NewEngagementService(deliveries, campaigns, mocks.NewMockMetricRepository(t), discardLogger())

	target, err := svc.MarkClicked(context.Background(), id)
	if !errors.Is(err, domain.ErrAlreadyRecorded) {
		t.Fatalf("expected ErrAlreadyRecorded, got %v", err)
	}
	if target != "https://example.com/offer" {
		t.Fatalf("duplicate click should still resolve the target, got %q", target)
	}
}
