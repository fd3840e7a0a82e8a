package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

// CampaignService owns the campaign lifecycle and the management surface
// around it. Campaigns are mutated only through the transitions declared
// here; the dispatch pipeline consumes what this service materializes.
type CampaignService struct {
	campaigns    port.CampaignRepository
	deliveries   port.DeliveryRepository
	segmentation *Segmentation

	now func() time.Time
}

// NewCampaignService creates a new lifecycle service.
func NewCampaignService(campaigns port.CampaignRepository, deliveries port.DeliveryRepository, segmentation *Segmentation) *CampaignService {
	return &CampaignService{
		campaigns:    campaigns,
		deliveries:   deliveries,
		segmentation: segmentation,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create validates the payload and persists a new campaign. The initial
// status is always draft, whatever the caller sent.
func (s *CampaignService) Create(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	now := s.now()
	c := &domain.Campaign{
		ID:             uuid.New(),
		Name:           req.Name,
		Type:           req.Type,
		Status:         domain.CampaignStatusDraft,
		Content:        req.Content,
		TargetCriteria: req.TargetCriteria,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		CreatedBy:      req.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Schedule moves a draft campaign to scheduled. It never creates
// deliveries; materialization belongs to activation.
func (s *CampaignService) Schedule(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	ok, err := s.campaigns.TransitionStatus(ctx, id, domain.CampaignStatusDraft, domain.CampaignStatusScheduled)
	if err != nil {
		return nil, err
	}
	c, getErr := s.campaigns.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !ok {
		return nil, domain.ErrInvalidState
	}
	return c, nil
}

// UpdateStatus applies an explicitly requested status. The requested value
// must be one of the enumerated statuses; beyond that, only transitions out
// of terminal states are rejected.
func (s *CampaignService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) (*domain.Campaign, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Reason: "unknown status " + string(status)}
	}
	ok, err := s.campaigns.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	c, getErr := s.campaigns.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if !ok {
		return nil, domain.ErrInvalidState
	}
	return c, nil
}

// Get returns one campaign.
func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List returns a page of campaigns.
func (s *CampaignService) List(ctx context.Context, req port.ListCampaignsReq) (*port.CampaignPage, error) {
	normalizePage(&req.Page, &req.PerPage)
	campaigns, total, err := s.campaigns.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return &port.CampaignPage{Campaigns: campaigns, Total: total}, nil
}

// ListDeliveries returns a page of the campaign's delivery history.
func (s *CampaignService) ListDeliveries(ctx context.Context, id uuid.UUID, page, perPage int) (*port.DeliveryPage, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	normalizePage(&page, &perPage)
	deliveries, total, err := s.deliveries.ListByCampaign(ctx, id, page, perPage)
	if err != nil {
		return nil, err
	}
	return &port.DeliveryPage{Deliveries: deliveries, Total: total}, nil
}

// PreviewAudience estimates the audience for a criteria set without
// materializing anything.
func (s *CampaignService) PreviewAudience(ctx context.Context, criteria domain.TargetCriteria) (*domain.AudiencePreview, error) {
	return s.segmentation.Preview(ctx, criteria)
}

func normalizePage(page, perPage *int) {
	if *page < 1 {
		*page = 1
	}
	if *perPage < 1 || *perPage > 500 {
		*perPage = 50
	}
}
