package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
	"loyalty-campaigns/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func claimedDelivery(ch domain.Channel) domain.ClaimedDelivery {
	return domain.ClaimedDelivery{
		Delivery: domain.Delivery{
			ID:         uuid.New(),
			CampaignID: uuid.New(),
			UserID:     uuid.New(),
			Channel:    ch,
			Status:     domain.DeliveryStatusProcessing,
		},
		Content: domain.Content{Title: "We miss you", Body: "Come back"},
	}
}

func newTestProcessor(
	deliveries *mocks.MockDeliveryRepository,
	directory *mocks.MockUserDirectory,
	adapter *mocks.MockChannelAdapter,
	metrics *mocks.MockMetricRepository,
) *Processor {
	return NewProcessor(deliveries, directory, adapter, metrics, discardLogger(), 10, 5*time.Minute, time.Second)
}

// TestProcessorSends covers the happy path: claim, resolve recipient, send,
// mark sent, count.
func TestProcessorSends(t *testing.T) {
	cd := claimedDelivery(domain.ChannelEmail)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		ClaimBatch(mock.Anything, mock.MatchedBy(func(req port.ClaimReq) bool {
			return req.Limit == 10 && req.Lease == 5*time.Minute
		})).
		Return([]domain.ClaimedDelivery{cd}, nil)
	deliveries.EXPECT().
		MarkSent(mock.Anything, cd.ID, mock.AnythingOfType("time.Time"), false).
		Return(true, nil)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().
		GetRecipient(mock.Anything, cd.UserID).
		Return(&domain.Recipient{UserID: cd.UserID, Email: "guest@example.com"}, nil)

	adapter := mocks.NewMockChannelAdapter(t)
	adapter.EXPECT().
		Send(mock.Anything, domain.ChannelEmail, mock.AnythingOfType("domain.Recipient"), mock.MatchedBy(func(m domain.Message) bool {
			return m.Title == "We miss you"
		})).
		Return(&domain.SendResult{TransportID: "t1"}, nil)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		Increment(mock.Anything, mock.MatchedBy(func(inc domain.MetricIncrement) bool {
			return inc.MetricName == domain.MetricSent &&
				inc.Dimensions["campaign_id"] == cd.CampaignID.String()
		})).
		Return(nil)

	p := newTestProcessor(deliveries, directory, adapter, metrics)
	p.Tick(context.Background())
}

// TestProcessorConfirmedDelivery checks that a synchronously confirmed send
// also counts a delivered metric.
func TestProcessorConfirmedDelivery(t *testing.T) {
	cd := claimedDelivery(domain.ChannelPush)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		ClaimBatch(mock.Anything, mock.AnythingOfType("port.ClaimReq")).
		Return([]domain.ClaimedDelivery{cd}, nil)
	deliveries.EXPECT().
		MarkSent(mock.Anything, cd.ID, mock.AnythingOfType("time.Time"), true).
		Return(true, nil)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().
		GetRecipient(mock.Anything, cd.UserID).
		Return(&domain.Recipient{UserID: cd.UserID, PushToken: "tok"}, nil)

	adapter := mocks.NewMockChannelAdapter(t)
	adapter.EXPECT().
		Send(mock.Anything, domain.ChannelPush, mock.AnythingOfType("domain.Recipient"), mock.AnythingOfType("domain.Message")).
		Return(&domain.SendResult{TransportID: "t1", Confirmed: true}, nil)

	var names []string
	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		Increment(mock.Anything, mock.AnythingOfType("domain.MetricIncrement")).
		Run(func(ctx context.Context, inc domain.MetricIncrement) {
			names = append(names, inc.MetricName)
		}).
		Return(nil)

	p := newTestProcessor(deliveries, directory, adapter, metrics)
	p.Tick(context.Background())

	if len(names) != 2 || names[0] != domain.MetricSent || names[1] != domain.MetricDelivered {
		t.Fatalf("metrics = %v, want [sent, delivered]", names)
	}
}

// TestProcessorBounce ensures a hard bounce is recorded as bounced, not as a
// plain failure.
func TestProcessorBounce(t *testing.T) {
	cd := claimedDelivery(domain.ChannelEmail)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		ClaimBatch(mock.Anything, mock.AnythingOfType("port.ClaimReq")).
		Return([]domain.ClaimedDelivery{cd}, nil)
	deliveries.EXPECT().
		MarkFailed(mock.Anything, cd.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("string"), true).
		Return(true, nil)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().
		GetRecipient(mock.Anything, cd.UserID).
		Return(&domain.Recipient{UserID: cd.UserID, Email: "gone@example.com"}, nil)

	adapter := mocks.NewMockChannelAdapter(t)
	adapter.EXPECT().
		Send(mock.Anything, domain.ChannelEmail, mock.AnythingOfType("domain.Recipient"), mock.AnythingOfType("domain.Message")).
		Return(nil, domain.ErrBounced)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		Increment(mock.Anything, mock.MatchedBy(func(inc domain.MetricIncrement) bool {
			return inc.MetricName == domain.MetricBounced
		})).
		Return(nil)

	p := newTestProcessor(deliveries, directory, adapter, metrics)
	p.Tick(context.Background())
}

// TestProcessorSendTimeout ensures an adapter that outlives the send budget
// fails the delivery with the timeout message, not as a bounce.
func TestProcessorSendTimeout(t *testing.T) {
	cd := claimedDelivery(domain.ChannelEmail)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		ClaimBatch(mock.Anything, mock.AnythingOfType("port.ClaimReq")).
		Return([]domain.ClaimedDelivery{cd}, nil)
	deliveries.EXPECT().
		MarkFailed(mock.Anything, cd.ID, mock.AnythingOfType("time.Time"), "send timed out after 1s", false).
		Return(true, nil)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().
		GetRecipient(mock.Anything, cd.UserID).
		Return(&domain.Recipient{UserID: cd.UserID, Email: "guest@example.com"}, nil)

	adapter := mocks.NewMockChannelAdapter(t)
	adapter.EXPECT().
		Send(mock.Anything, domain.ChannelEmail, mock.AnythingOfType("domain.Recipient"), mock.AnythingOfType("domain.Message")).
		Return(nil, context.DeadlineExceeded)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		Increment(mock.Anything, mock.MatchedBy(func(inc domain.MetricIncrement) bool {
			return inc.MetricName == domain.MetricFailed
		})).
		Return(nil)

	p := newTestProcessor(deliveries, directory, adapter, metrics)
	p.Tick(context.Background())
}

// TestProcessorMissingAddress ensures a recipient without an address for the
// channel fails without ever reaching the adapter. The adapter mock has no
// expectations, so a Send call fails the test.
func TestProcessorMissingAddress(t *testing.T) {
	cd := claimedDelivery(domain.ChannelSMS)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		ClaimBatch(mock.Anything, mock.AnythingOfType("port.ClaimReq")).
		Return([]domain.ClaimedDelivery{cd}, nil)
	deliveries.EXPECT().
		MarkFailed(mock.Anything, cd.ID, mock.AnythingOfType("time.Time"), domain.ErrNoAddress.Error(), false).
		Return(true, nil)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().
		GetRecipient(mock.Anything, cd.UserID).
		Return(&domain.Recipient{UserID: cd.UserID, Email: "guest@example.com"}, nil) // no phone

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		Increment(mock.Anything, mock.MatchedBy(func(inc domain.MetricIncrement) bool {
			return inc.MetricName == domain.MetricFailed
		})).
		Return(nil)

	p := newTestProcessor(deliveries, directory, mocks.NewMockChannelAdapter(t), metrics)
	p.Tick(context.Background())
}

// TestProcessorIsolatesFailures ensures one failing delivery does not stop
// the rest of the claimed batch.
func TestProcessorIsolatesFailures(t *testing.T) {
	bad := claimedDelivery(domain.ChannelEmail)
	good := claimedDelivery(domain.ChannelEmail)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		ClaimBatch(mock.Anything, mock.AnythingOfType("port.ClaimReq")).
		Return([]domain.ClaimedDelivery{bad, good}, nil)
	deliveries.EXPECT().
		MarkFailed(mock.Anything, bad.ID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("string"), false).
		Return(true, nil)
	deliveries.EXPECT().
		MarkSent(mock.Anything, good.ID, mock.AnythingOfType("time.Time"), false).
		Return(true, nil)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().
		GetRecipient(mock.Anything, bad.UserID).
		Return(nil, errors.New("directory down")).Once()
	directory.EXPECT().
		GetRecipient(mock.Anything, good.UserID).
		Return(&domain.Recipient{UserID: good.UserID, Email: "guest@example.com"}, nil).Once()

	adapter := mocks.NewMockChannelAdapter(t)
	adapter.EXPECT().
		Send(mock.Anything, domain.ChannelEmail, mock.AnythingOfType("domain.Recipient"), mock.AnythingOfType("domain.Message")).
		Return(&domain.SendResult{}, nil)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().Increment(mock.Anything, mock.AnythingOfType("domain.MetricIncrement")).Return(nil)

	p := newTestProcessor(deliveries, directory, adapter, metrics)
	p.Tick(context.Background())
}

// TestProcessorLostLease ensures an outcome against a delivery reclaimed by
// another worker is dropped without a metric.
func TestProcessorLostLease(t *testing.T) {
	cd := claimedDelivery(domain.ChannelEmail)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		ClaimBatch(mock.Anything, mock.AnythingOfType("port.ClaimReq")).
		Return([]domain.ClaimedDelivery{cd}, nil)
	deliveries.EXPECT().
		MarkSent(mock.Anything, cd.ID, mock.AnythingOfType("time.Time"), false).
		Return(false, nil)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().
		GetRecipient(mock.Anything, cd.UserID).
		Return(&domain.Recipient{UserID: cd.UserID, Email: "guest@example.com"}, nil)

	adapter := mocks.NewMockChannelAdapter(t)
	adapter.EXPECT().
		Send(mock.Anything, domain.ChannelEmail, mock.AnythingOfType("domain.Recipient"), mock.AnythingOfType("domain.Message")).
		Return(&domain.SendResult{}, nil)

	// metric mock has no expectations: an Increment call fails the test
	p := newTestProcessor(deliveries, directory, adapter, mocks.NewMockMetricRepository(t))
	p.Tick(context.Background())
}
