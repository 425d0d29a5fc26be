package models

import (
	"time"
)

const DefaultCategoryTag = "General"

type Post struct {
	ID           int           `json:"id"`
	UserID       int           `json:"user_id"`
	Content      string        `json:"content"`
	CategoryTag  string        `json:"category_tag"`
	Location     Point         `json:"location"`
	Radius       float64       `json:"radius"`
	Interactions []Interaction `json:"interactions,omitempty"`
	Comments     []Comment     `json:"comments,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// FeedPost is one ranked feed entry: the post plus its distance from the
// caller and a redacted author view.
type FeedPost struct {
	Post           Post       `json:"post"`
	Author         PublicUser `json:"author"`
	DistanceMeters float64    `json:"distance_meters"`
}
