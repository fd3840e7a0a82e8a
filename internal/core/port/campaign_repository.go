package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
)

// PendingDelivery is one row to materialize when a campaign activates.
type PendingDelivery struct {
	UserID  uuid.UUID
	Channel domain.Channel
}

// ListCampaignsReq filters and paginates campaign listings.
type ListCampaignsReq struct {
	Status  *domain.CampaignStatus
	Page    int
	PerPage int
}

// CampaignRepository is the persistence port for campaigns. Status mutations
// are conditional single statements so concurrent actors cannot race a
// transition; a false return means the precondition no longer held.
type CampaignRepository interface {
	// Create inserts a new campaign row. The entity's ID and timestamps
	// must already be set.
	Create(ctx context.Context, c *domain.Campaign) error
	// GetByID returns the campaign or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// List returns a page of campaigns plus the total count.
	List(ctx context.Context, req ListCampaignsReq) ([]domain.Campaign, int64, error)
	// TransitionStatus atomically moves the campaign from one exact status
	// to another. It reports whether a row was updated.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.CampaignStatus) (bool, error)
	// UpdateStatus sets the status unless the campaign is in a terminal
	// state. It reports whether a row was updated.
	UpdateStatus(ctx context.Context, id uuid.UUID, to domain.CampaignStatus) (bool, error)
	// ListDueScheduled returns scheduled campaigns whose activation window
	// is open at now.
	ListDueScheduled(ctx context.Context, now time.Time, limit int) ([]domain.Campaign, error)
	// ActivateAndMaterialize transitions the campaign scheduled->active and
	// bulk-inserts one pending delivery per entry in a single transaction.
	// Inserts are conflict-ignoring on (campaign, user, channel) so repeated
	// activation attempts are idempotent. It returns the number of rows
	// actually inserted and whether the activation happened in this call.
	ActivateAndMaterialize(ctx context.Context, id uuid.UUID, rows []PendingDelivery) (int64, bool, error)
	// CompleteExpired transitions active or still-scheduled campaigns whose
	// end date has passed to completed, returning how many changed.
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
}
