package handlers

import (
	"errors"
	"net/http"
	"testing"

	"okoloBack/internal/models"
)

func TestSettlementErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"post not found", models.ErrPostNotFound, http.StatusNotFound},
		{"interaction not found", models.ErrInteractionNotFound, http.StatusNotFound},
		{"forbidden", models.ErrForbidden, http.StatusForbidden},
		{"already confirmed", models.ErrAlreadyConfirmed, http.StatusConflict},
		{"lost finalization race", models.ErrSettlementConflict, http.StatusConflict},
		{"rating required", models.ErrRatingRequired, http.StatusBadRequest},
		{"invalid rating", models.ErrInvalidRating, http.StatusBadRequest},
		{"unknown defaults to 500", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := settlementErrorStatus(tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
