package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"okoloBack/internal/models"
	"okoloBack/internal/services"
)

type FeedHandler struct {
	Service *services.FeedService
}

// GetFeed returns the ranked nearby posts for the authenticated caller. An
// empty feed is a 200 with an empty list.
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	feed, err := h.Service.RankNearby(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		case errors.Is(err, models.ErrLocationMissing):
			http.Error(w, "profile location missing", http.StatusPreconditionFailed)
		default:
			http.Error(w, "could not load feed", http.StatusInternalServerError)
		}
		return
	}
	if feed == nil {
		feed = []models.FeedPost{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feed)
}
