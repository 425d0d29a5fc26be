package models

import (
	"time"
)

// CommentAnalysis is produced by the external content classifier and stored
// opaquely. The core never computes or interprets it.
type CommentAnalysis struct {
	IsToxic       bool     `json:"is_toxic"`
	Intent        string   `json:"intent"`
	DetectedPrice *float64 `json:"detected_price,omitempty"`
}

const DefaultCommentIntent = "general"

type Comment struct {
	ID        int             `json:"id"`
	PostID    int             `json:"post_id"`
	UserID    int             `json:"user_id"`
	Content   string          `json:"content"`
	Analysis  CommentAnalysis `json:"analysis"`
	CreatedAt time.Time       `json:"created_at"`
}
