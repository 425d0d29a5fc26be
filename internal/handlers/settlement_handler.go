package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"okoloBack/internal/models"
	"okoloBack/internal/services"
)

type SettlementHandler struct {
	Service *services.SettlementService
}

// settlementErrorStatus maps settlement errors to HTTP status codes. The
// conflict case is deliberately 409: the other party finalized first and the
// client should re-fetch, not retry.
func settlementErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrPostNotFound), errors.Is(err, models.ErrInteractionNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrAlreadyConfirmed), errors.Is(err, models.ErrSettlementConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrRatingRequired), errors.Is(err, models.ErrInvalidRating):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *SettlementHandler) ConfirmInteraction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	postID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}
	interactionID, err := strconv.Atoi(r.URL.Query().Get(":interaction_id"))
	if err != nil {
		http.Error(w, "invalid interaction id", http.StatusBadRequest)
		return
	}

	var input struct {
		Role   string `json:"role"`
		Rating *int   `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := h.Service.Confirm(r.Context(), postID, interactionID, userID, input.Role, input.Rating)
	if err != nil {
		http.Error(w, err.Error(), settlementErrorStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
