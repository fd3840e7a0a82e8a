package port

import (
	"context"

	"github.com/google/uuid"

	"loyalty-campaigns/internal/core/domain"
)

// UserDirectory is the read-only view of the user population this subsystem
// consumes. Implementations must apply all present criteria predicates with
// AND semantics, exclude deleted users, and order results tier rank
// descending, points descending, user id ascending.
type UserDirectory interface {
	// SelectAudience returns every user matching the criteria, ordered.
	SelectAudience(ctx context.Context, criteria domain.TargetCriteria) ([]domain.AudienceMember, error)
	// CountAudience returns the matching population size and a bounded
	// sample without materializing anything.
	CountAudience(ctx context.Context, criteria domain.TargetCriteria, sampleSize int) (*domain.AudiencePreview, error)
	// GetRecipient returns the channel addresses of one user, or nil when
	// the user is absent or deleted.
	GetRecipient(ctx context.Context, userID uuid.UUID) (*domain.Recipient, error)
}
