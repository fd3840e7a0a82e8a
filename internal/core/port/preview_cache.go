package port

import (
	"context"
	"time"

	"loyalty-campaigns/internal/core/domain"
)

// PreviewCache stores audience preview estimates under a canonical criteria
// key. Previews are estimation-only reads, so stale entries within the TTL
// are acceptable. A nil, nil Get means cache miss; cache errors are treated
// as misses by callers, never surfaced.
type PreviewCache interface {
	Get(ctx context.Context, key string) (*domain.AudiencePreview, error)
	Set(ctx context.Context, key string, p *domain.AudiencePreview, ttl time.Duration) error
}
