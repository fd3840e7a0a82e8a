package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
)

// CreateCampaignReq is the payload accepted by campaign creation. The
// initial status is always draft regardless of input.
type CreateCampaignReq struct {
	Name           string                `json:"name"`
	Type           domain.CampaignType   `json:"type"`
	Content        domain.Content        `json:"content"`
	TargetCriteria domain.TargetCriteria `json:"target_criteria"`
	StartDate      *time.Time            `json:"start_date,omitempty"`
	EndDate        *time.Time            `json:"end_date,omitempty"`
	CreatedBy      string                `json:"created_by,omitempty"`
}

// DeliveryPage is one page of a campaign's delivery history.
type DeliveryPage struct {
	Deliveries []domain.Delivery
	Total      int64
}

// CampaignPage is one page of a campaign listing.
type CampaignPage struct {
	Campaigns []domain.Campaign
	Total     int64
}

// CampaignUseCase is the primary port of the campaign lifecycle manager and
// the management surface built on it. Transition methods surface
// domain.ErrInvalidState without mutating anything when the requested
// transition is not legal, and domain.ErrNotFound for absent campaigns.
type CampaignUseCase interface {
	// Create validates the payload and persists a new draft campaign.
	Create(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// Schedule moves a draft campaign to scheduled. It never creates
	// deliveries.
	Schedule(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// UpdateStatus sets an explicitly requested status. Only transitions
	// out of terminal states are rejected.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) (*domain.Campaign, error)
	// Get returns one campaign.
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// List returns a page of campaigns.
	List(ctx context.Context, req ListCampaignsReq) (*CampaignPage, error)
	// ListDeliveries returns a page of the campaign's delivery records.
	ListDeliveries(ctx context.Context, id uuid.UUID, page, perPage int) (*DeliveryPage, error)
	// PreviewAudience estimates the audience for a criteria set without
	// materializing deliveries.
	PreviewAudience(ctx context.Context, criteria domain.TargetCriteria) (*domain.AudiencePreview, error)
}

// Segmenter computes the full ordered audience for a criteria set. It is
// implemented by the segmentation usecase and consumed by the scheduler.
type Segmenter interface {
	Evaluate(ctx context.Context, criteria domain.TargetCriteria) ([]domain.AudienceMember, error)
}

// EngagementUseCase ingests open and click signals against deliveries. Both
// operations are idempotent: the first signal per event type wins and
// duplicates report domain.ErrAlreadyRecorded without changing anything.
type EngagementUseCase interface {
	MarkOpened(ctx context.Context, deliveryID uuid.UUID) error
	// MarkClicked records the click and resolves the campaign CTA URL the
	// caller should redirect to; empty when the campaign has none. On a
	// duplicate signal the target is still returned alongside
	// domain.ErrAlreadyRecorded.
	MarkClicked(ctx context.Context, deliveryID uuid.UUID) (string, error)
}

// AnalyticsUseCase serves read-only engagement metrics. It never mutates
// state; rates with a zero denominator are 0.
type AnalyticsUseCase interface {
	Overview(ctx context.Context, f StatsFilter) (*domain.CampaignStats, error)
	CampaignMetrics(ctx context.Context, id uuid.UUID, f StatsFilter) (*domain.CampaignStats, error)
	ByType(ctx context.Context, f StatsFilter) ([]domain.CampaignStats, error)
	TopCampaigns(ctx context.Context, metric string, limit int, f StatsFilter) ([]domain.CampaignStats, error)
}
