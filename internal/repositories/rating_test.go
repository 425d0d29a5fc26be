package repositories

import (
	"context"
	"errors"
	"testing"

	"okoloBack/internal/models"
)

func TestApplyCompletedRating_RejectsOutOfRange(t *testing.T) {
	// Validation runs before any database work, so no DB is needed here.
	r := ReputationRepository{}

	for _, rating := range []int{0, 6, -3} {
		if err := r.ApplyCompletedRating(context.Background(), 1, rating); !errors.Is(err, models.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}
