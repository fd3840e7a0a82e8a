package usecase

import (
	"context"
	"errors"
	"testing"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
	"loyalty-campaigns/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func validCreateReq() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Name: "Winback gold+",
		Type: domain.CampaignTypeEmail,
		Content: domain.Content{
			Title: "We miss you",
			Body:  "Come back for 2x points",
		},
	}
}

// TestCreateCampaign ensures a valid payload is stored as a draft with a
// fresh id.
func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewCampaignService(repo, mocks.NewMockDeliveryRepository(t), nil)

	c, err := svc.Create(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Status != domain.CampaignStatusDraft {
		t.Fatalf("new campaign status = %s, want draft", c.Status)
	}
	if c.ID == uuid.Nil {
		t.Fatal("new campaign has no id")
	}
}

// TestCreateCampaignInvalid ensures validation failures reach the caller
// before anything touches the repository. The mock has no expectations, so
// any repository call fails the test.
func TestCreateCampaignInvalid(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignService(repo, mocks.NewMockDeliveryRepository(t), nil)

	req := validCreateReq()
	req.Content.Body = ""

	_, err := svc.Create(context.Background(), req)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "content.body" {
		t.Fatalf("expected field content.body, got %q", ve.Field)
	}
}

func TestScheduleCampaign(t *testing.T) {
	id := uuid.New()
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		TransitionStatus(mock.Anything, id, domain.CampaignStatusDraft, domain.CampaignStatusScheduled).
		Return(true, nil)
	repo.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.CampaignStatusScheduled}, nil)

	svc := NewCampaignService(repo, mocks.NewMockDeliveryRepository(t), nil)

	c, err := svc.Schedule(context.Background(), id)
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	if c.Status != domain.CampaignStatusScheduled {
		t.Fatalf("status = %s, want scheduled", c.Status)
	}
}

// TestScheduleCampaignNotDraft ensures an ineffective transition on an
// existing campaign is reported as a state conflict, not a missing resource.
func TestScheduleCampaignNotDraft(t *testing.T) {
	id := uuid.New()
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		TransitionStatus(mock.Anything, id, domain.CampaignStatusDraft, domain.CampaignStatusScheduled).
		Return(false, nil)
	repo.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.CampaignStatusActive}, nil)

	svc := NewCampaignService(repo, mocks.NewMockDeliveryRepository(t), nil)

	if _, err := svc.Schedule(context.Background(), id); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestScheduleCampaignMissing(t *testing.T) {
	id := uuid.New()
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		TransitionStatus(mock.Anything, id, domain.CampaignStatusDraft, domain.CampaignStatusScheduled).
		Return(false, nil)
	repo.EXPECT().
		GetByID(mock.Anything, id).
		Return(nil, nil)

	svc := NewCampaignService(repo, mocks.NewMockDeliveryRepository(t), nil)

	if _, err := svc.Schedule(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestUpdateStatusTerminal ensures completed and cancelled campaigns are
// frozen: the conditional update touches no row and the caller sees a
// conflict.
func TestUpdateStatusTerminal(t *testing.T) {
	id := uuid.New()
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		UpdateStatus(mock.Anything, id, domain.CampaignStatusActive).
		Return(false, nil)
	repo.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.CampaignStatusCancelled}, nil)

	svc := NewCampaignService(repo, mocks.NewMockDeliveryRepository(t), nil)

	if _, err := svc.UpdateStatus(context.Background(), id, domain.CampaignStatusActive); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignService(repo, mocks.NewMockDeliveryRepository(t), nil)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), "archived")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

// TestListDeliveriesNormalizesPaging checks both the 404 on an unknown
// campaign and the pagination defaults applied before the repository read.
func TestListDeliveriesNormalizesPaging(t *testing.T) {
	id := uuid.New()
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		GetByID(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.CampaignStatusActive}, nil)

	deliveries := mocks.NewMockDeliveryRepository(t)
	deliveries.EXPECT().
		ListByCampaign(mock.Anything, id, 1, 50).
		Return([]domain.Delivery{}, int64(0), nil)

	svc := NewCampaignService(repo, deliveries, nil)

	if _, err := svc.ListDeliveries(context.Background(), id, 0, -3); err != nil {
		t.Fatalf("ListDeliveries error: %v", err)
	}
}

func TestListDeliveriesUnknownCampaign(t *testing.T) {
	id := uuid.New()
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetByID(mock.Anything, id).Return(nil, nil)

	svc := NewCampaignService(repo, mocks.NewMockDeliveryRepository(t), nil)

	if _, err := svc.ListDeliveries(context.Background(), id, 1, 20); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
