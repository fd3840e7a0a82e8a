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

const testClaimLease = 5 * time.Minute

func dueCampaign(ct domain.CampaignType) domain.Campaign {
	return domain.Campaign{
		ID:     uuid.New(),
		Name:   "Winback",
		Type:   ct,
		Status: domain.CampaignStatusScheduled,
		Content: domain.Content{
			Title: "We miss you",
			Body:  "Come back",
		},
	}
}

// quietDeliveries returns a delivery mock for tests that only care about the
// activation path: the housekeeping sweep finds nothing.
func quietDeliveries(t *testing.T) *mocks.MockDeliveryRepository {
	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		FailStranded(mock.Anything, mock.AnythingOfType("time.Time"), testClaimLease).
		Return(int64(0), nil)
	return deliveries
}

// TestSchedulerActivates covers the main pass: a due email campaign gets one
// pending delivery per audience member and a materialization rollup.
func TestSchedulerActivates(t *testing.T) {
	c := dueCampaign(domain.CampaignTypeEmail)
	audience := []domain.AudienceMember{
		{UserID: uuid.New(), Tier: domain.TierGold, HasEmail: true},
		{UserID: uuid.New(), Tier: domain.TierSilver, HasEmail: false},
	}

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().CompleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil)
	campaigns.EXPECT().
		ListDueScheduled(mock.Anything, mock.AnythingOfType("time.Time"), schedulerCampaignLimit).
		Return([]domain.Campaign{c}, nil)
	campaigns.EXPECT().
		ActivateAndMaterialize(mock.Anything, c.ID, mock.MatchedBy(func(rows []port.PendingDelivery) bool {
			// single-channel campaigns materialize every member, reachable
			// or not; the processor records the missing address as failure
			return len(rows) == 2 && rows[0].Channel == domain.ChannelEmail
		})).
		Return(int64(2), true, nil)

	segmenter := mocks.NewMockSegmenter(t)
	segmenter.EXPECT().Evaluate(mock.Anything, c.TargetCriteria).Return(audience, nil)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().
		Increment(mock.Anything, mock.MatchedBy(func(inc domain.MetricIncrement) bool {
			return inc.MetricName == domain.MetricMaterialized && inc.Delta == 2 &&
				inc.Dimensions["campaign_id"] == c.ID.String()
		})).
		Return(nil)

	s := NewScheduler(campaigns, quietDeliveries(t), segmenter, metrics, discardLogger(), testClaimLease)
	s.Tick(context.Background())
}

// TestSchedulerMultiChannelReachability ensures multi_channel campaigns only
// materialize channels the member actually has an address for.
func TestSchedulerMultiChannelReachability(t *testing.T) {
	c := dueCampaign(domain.CampaignTypeMultiChannel)
	member := domain.AudienceMember{UserID: uuid.New(), HasEmail: true, HasPush: true, HasPhone: false}

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().CompleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil)
	campaigns.EXPECT().
		ListDueScheduled(mock.Anything, mock.AnythingOfType("time.Time"), schedulerCampaignLimit).
		Return([]domain.Campaign{c}, nil)
	campaigns.EXPECT().
		ActivateAndMaterialize(mock.Anything, c.ID, mock.MatchedBy(func(rows []port.PendingDelivery) bool {
			if len(rows) != 2 {
				return false
			}
			for _, r := range rows {
				if r.Channel == domain.ChannelSMS {
					return false
				}
			}
			return true
		})).
		Return(int64(2), true, nil)

	segmenter := mocks.NewMockSegmenter(t)
	segmenter.EXPECT().Evaluate(mock.Anything, c.TargetCriteria).Return([]domain.AudienceMember{member}, nil)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().Increment(mock.Anything, mock.AnythingOfType("domain.MetricIncrement")).Return(nil)

	s := NewScheduler(campaigns, quietDeliveries(t), segmenter, metrics, discardLogger(), testClaimLease)
	s.Tick(context.Background())
}

// TestSchedulerLostRace ensures a tick that loses the scheduled->active
// transition to a concurrent instance records nothing.
func TestSchedulerLostRace(t *testing.T) {
	c := dueCampaign(domain.CampaignTypeEmail)

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().CompleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil)
	campaigns.EXPECT().
		ListDueScheduled(mock.Anything, mock.AnythingOfType("time.Time"), schedulerCampaignLimit).
		Return([]domain.Campaign{c}, nil)
	campaigns.EXPECT().
		ActivateAndMaterialize(mock.Anything, c.ID, mock.Anything).
		Return(int64(0), false, nil)

	segmenter := mocks.NewMockSegmenter(t)
	segmenter.EXPECT().Evaluate(mock.Anything, c.TargetCriteria).Return([]domain.AudienceMember{}, nil)

	// metric mock has no expectations: an Increment call fails the test
	s := NewScheduler(campaigns, quietDeliveries(t), segmenter, mocks.NewMockMetricRepository(t), discardLogger(), testClaimLease)
	s.Tick(context.Background())
}

// TestSchedulerIsolatesFailures ensures one broken campaign does not stop
// the rest of the batch from activating.
func TestSchedulerIsolatesFailures(t *testing.T) {
	bad := dueCampaign(domain.CampaignTypeEmail)
	good := dueCampaign(domain.CampaignTypeEmail)

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().CompleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil)
	campaigns.EXPECT().
		ListDueScheduled(mock.Anything, mock.AnythingOfType("time.Time"), schedulerCampaignLimit).
		Return([]domain.Campaign{bad, good}, nil)
	campaigns.EXPECT().
		ActivateAndMaterialize(mock.Anything, good.ID, mock.Anything).
		Return(int64(1), true, nil)

	segmenter := mocks.NewMockSegmenter(t)
	segmenter.EXPECT().Evaluate(mock.Anything, bad.TargetCriteria).Return(nil, errors.New("boom")).Once()
	segmenter.EXPECT().
		Evaluate(mock.Anything, good.TargetCriteria).
		Return([]domain.AudienceMember{{UserID: uuid.New(), HasEmail: true}}, nil).Once()

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().Increment(mock.Anything, mock.AnythingOfType("domain.MetricIncrement")).Return(nil)

	s := NewScheduler(campaigns, quietDeliveries(t), segmenter, metrics, discardLogger(), testClaimLease)
	s.Tick(context.Background())
}

// TestSchedulerSweepsStrandedClaims ensures every tick sweeps lease-expired
// processing rows of non-active campaigns with the configured lease. A crash
// mid-dispatch followed by a completion or cancel leaves such rows behind,
// and the claim query never picks them up again.
func TestSchedulerSweepsStrandedClaims(t *testing.T) {
	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		FailStranded(mock.Anything, mock.AnythingOfType("time.Time"), testClaimLease).
		Return(int64(3), nil).Once()

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().CompleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil)
	campaigns.EXPECT().
		ListDueScheduled(mock.Anything, mock.AnythingOfType("time.Time"), schedulerCampaignLimit).
		Return(nil, nil)

	s := NewScheduler(campaigns, deliveries, mocks.NewMockSegmenter(t), mocks.NewMockMetricRepository(t), discardLogger(), testClaimLease)
	s.Tick(context.Background())
}

// TestSchedulerSweepErrorDoesNotBlockActivation ensures a failing sweep is
// logged and the tick still promotes due campaigns.
func TestSchedulerSweepErrorDoesNotBlockActivation(t *testing.T) {
	c := dueCampaign(domain.CampaignTypeEmail)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		FailStranded(mock.Anything, mock.AnythingOfType("time.Time"), testClaimLease).
		Return(int64(0), errors.New("boom"))

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().CompleteExpired(mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil)
	campaigns.EXPECT().
		ListDueScheduled(mock.Anything, mock.AnythingOfType("time.Time"), schedulerCampaignLimit).
		Return([]domain.Campaign{c}, nil)
	campaigns.EXPECT().
		ActivateAndMaterialize(mock.Anything, c.ID, mock.Anything).
		Return(int64(1), true, nil)

	segmenter := mocks.NewMockSegmenter(t)
	segmenter.EXPECT().
		Evaluate(mock.Anything, c.TargetCriteria).
		Return([]domain.AudienceMember{{UserID: uuid.New(), HasEmail: true}}, nil)

	metrics := mocks.NewMockMetricRepository(t)
	metrics.EXPECT().Increment(mock.Anything, mock.AnythingOfType("domain.MetricIncrement")).Return(nil)

	s := NewScheduler(campaigns, deliveries, segmenter, metrics, discardLogger(), testClaimLease)
	s.Tick(context.Background())
}
