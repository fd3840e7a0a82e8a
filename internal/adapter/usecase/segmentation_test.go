package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-campaigns/internal/core/domain"
	"loyalty-campaigns/internal/core/port/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func intPtr(v int) *int { return &v }

// TestEvaluateValidatesFirst ensures malformed criteria never reach the
// directory.
func TestEvaluateValidatesFirst(t *testing.T) {
	directory := mocks.NewMockUserDirectory(t)
	seg := NewSegmentation(directory, nil, discardLogger(), 20, time.Minute)

	_, err := seg.Evaluate(context.Background(), domain.TargetCriteria{MinAge: intPtr(-1)})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	criteria := domain.TargetCriteria{LoyaltyTiers: []domain.Tier{domain.TierGold}}
	audience := []domain.AudienceMember{
		{UserID: uuid.New(), Tier: domain.TierGold, Points: 900},
		{UserID: uuid.New(), Tier: domain.TierGold, Points: 100},
	}

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().SelectAudience(mock.Anything, criteria).Return(audience, nil)

	seg := NewSegmentation(directory, nil, discardLogger(), 20, time.Minute)

	got, err := seg.Evaluate(context.Background(), criteria)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("audience size = %d, want 2", len(got))
	}
}

// TestPreviewCacheHit ensures a cached preview short-circuits the directory
// entirely. The directory mock has no expectations, so any read fails the
// test.
func TestPreviewCacheHit(t *testing.T) {
	criteria := domain.TargetCriteria{MinCompletedBookings: intPtr(2)}
	cached := &domain.AudiencePreview{Total: 42}

	cache := mocks.NewMockPreviewCache(t)
	cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).Return(cached, nil)

	seg := NewSegmentation(mocks.NewMockUserDirectory(t), cache, discardLogger(), 20, time.Minute)

	got, err := seg.Preview(context.Background(), criteria)
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if got.Total != 42 {
		t.Fatalf("total = %d, want 42", got.Total)
	}
}

// TestPreviewCacheMiss ensures a miss falls through to the directory and
// writes the result back with the configured TTL.
func TestPreviewCacheMiss(t *testing.T) {
	criteria := domain.TargetCriteria{MinCompletedBookings: intPtr(2)}
	preview := &domain.AudiencePreview{Total: 7}

	cache := mocks.NewMockPreviewCache(t)
	cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	cache.EXPECT().Set(mock.Anything, mock.AnythingOfType("string"), preview, time.Minute).Return(nil)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().CountAudience(mock.Anything, criteria, 20).Return(preview, nil)

	seg := NewSegmentation(directory, cache, discardLogger(), 20, time.Minute)

	got, err := seg.Preview(context.Background(), criteria)
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	if got.Total != 7 {
		t.Fatalf("total = %d, want 7", got.Total)
	}
}

// TestPreviewCacheFailureDegrades ensures a broken cache never breaks
// previews: reads and writes both fail, the directory still answers.
func TestPreviewCacheFailureDegrades(t *testing.T) {
	criteria := domain.TargetCriteria{MinCompletedBookings: intPtr(2)}
	preview := &domain.AudiencePreview{Total: 7}

	cacheErr := errors.New("connection refused")
	cache := mocks.NewMockPreviewCache(t)
	cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).Return(nil, cacheErr)
	cache.EXPECT().Set(mock.Anything, mock.AnythingOfType("string"), preview, time.Minute).Return(cacheErr)

	directory := mocks.NewMockUserDirectory(t)
	directory.EXPECT().CountAudience(mock.Anything, criteria, 20).Return(preview, nil)

	seg := NewSegmentation(directory, cache, discardLogger(), 20, time.Minute)

	got, err := seg.Preview(context.Background(), criteria)
	if err != nil {
		t.Fatalf("Preview should degrade, got error: %v", err)
	}
	if got.Total != 7 {
		t.Fatalf("total = %d, want 7", got.Total)
	}
}

// TestCriteriaKeyStable pins that equal criteria share a cache key and
// different criteria do not.
func TestCriteriaKeyStable(t *testing.T) {
	a := domain.TargetCriteria{MinCompletedBookings: intPtr(2)}
	b := domain.TargetCriteria{MinCompletedBookings: intPtr(2)}
	c := domain.TargetCriteria{MinCompletedBookings: intPtr(3)}

	if criteriaKey(a) != criteriaKey(b) {
		t.Fatal("equal criteria should share a key")
	}
	if criteriaKey(a) == criteriaKey(c) {
		t.Fatal("different criteria should not share a key")
	}
}
