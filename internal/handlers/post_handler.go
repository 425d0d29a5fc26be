package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"okoloBack/internal/models"
	"okoloBack/internal/services"
)

type PostHandler struct {
	Service *services.PostService
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Content     string        `json:"content"`
		Radius      float64       `json:"radius"`
		CategoryTag string        `json:"category_tag"`
		Location    *models.Point `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	post, err := h.Service.CreatePost(r.Context(), userID, input.Content, input.Radius, input.CategoryTag, input.Location)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRadius), errors.Is(err, models.ErrInvalidCoordinates), errors.Is(err, models.ErrLocationMissing):
			http.Error(w, err.Error(), http.StatusPreconditionFailed)
		case errors.Is(err, models.ErrUserNotFound):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			http.Error(w, "could not create post", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(post)
}

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.Service.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not load post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(post)
}

func (h *PostHandler) CreateInteraction(w http.ResponseWriter, r *http.Request) {
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

	var input struct {
		Kind    string   `json:"kind"`
		Details string   `json:"details"`
		Price   *float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	interaction, err := h.Service.AddInteraction(r.Context(), postID, userID, input.Kind, input.Details, input.Price)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidKind):
			http.Error(w, "kind must be help, rent or sell", http.StatusBadRequest)
		case errors.Is(err, models.ErrPostNotFound):
			http.Error(w, "post not found", http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, "cannot respond to own post", http.StatusForbidden)
		default:
			http.Error(w, "could not create interaction", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(interaction)
}

func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var input struct {
		Content  string                  `json:"content"`
		Analysis *models.CommentAnalysis `json:"analysis"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	comment, err := h.Service.AddComment(r.Context(), postID, userID, input.Content, input.Analysis)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPostNotFound):
			http.Error(w, "post not found", http.StatusNotFound)
		case errors.Is(err, models.ErrForbidden):
			http.Error(w, "interaction required to comment", http.StatusForbidden)
		default:
			http.Error(w, "could not create comment", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comment)
}
