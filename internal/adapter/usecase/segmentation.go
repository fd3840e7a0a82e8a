package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port"
)

// Segmentation evaluates target criteria against the user population. It is
// the only component that turns criteria into audiences; everything else
// consumes its output. Criteria are validated before any query executes.
type Segmentation struct {
	directory port.UserDirectory
	cache     port.PreviewCache
	logger    *slog.Logger

	sampleSize int
	previewTTL time.Duration
}

// NewSegmentation creates the segmentation engine. cache may be nil, in
// which case previews always hit the directory.
func NewSegmentation(directory port.UserDirectory, cache port.PreviewCache, logger *slog.Logger, sampleSize int, previewTTL time.Duration) *Segmentation {
	if sampleSize <= 0 {
		sampleSize = 20
	}
	return &Segmentation{
		directory:  directory,
		cache:      cache,
		logger:     logger,
		sampleSize: sampleSize,
		previewTTL: previewTTL,
	}
}

// Evaluate returns the full ordered audience for the criteria.
func (s *Segmentation) Evaluate(ctx context.Context, criteria domain.TargetCriteria) ([]domain.AudienceMember, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	return s.directory.SelectAudience(ctx, criteria)
}

// Preview is the dry-run mode: population size plus a bounded sample,
// without materializing delivery records. Results may come from the cache;
// cache failures degrade to a directory read, never to an error.
func (s *Segmentation) Preview(ctx context.Context, criteria domain.TargetCriteria) (*domain.AudiencePreview, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	key := criteriaKey(criteria)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("preview cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	preview, err := s.directory.CountAudience(ctx, criteria, s.sampleSize)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, preview, s.previewTTL); err != nil {
			s.logger.Warn("preview cache write failed", slog.Any("error", err))
		}
	}
	return preview, nil
}

// criteriaKey derives a stable cache key from the criteria. JSON
// marshalling of the struct is deterministic, so equal criteria share a key.
func criteriaKey(criteria domain.TargetCriteria) string {
	raw, _ := json.Marshal(criteria)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
