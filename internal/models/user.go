package models

import (
	"time"
)

type User struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	IsShopkeeper     bool       `json:"is_shopkeeper"`
	SellerCategories []string   `json:"seller_categories"`
	CompletedCount   int        `json:"completed_transactions_count"`
	TotalRatingSum   float64    `json:"total_rating_sum"`
	AverageRating    float64    `json:"average_rating"`
	Location         *Point     `json:"location,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// PublicUser is the redacted author view attached to feed entries. It never
// carries the author's location or credential fields.
type PublicUser struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	IsShopkeeper  bool    `json:"is_shopkeeper"`
	AverageRating float64 `json:"average_rating"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Name:          u.Name,
		IsShopkeeper:  u.IsShopkeeper,
		AverageRating: u.AverageRating,
	}
}

// ProfileUpdate is the subset of a user the profile editor may change.
type ProfileUpdate struct {
	Name             *string  `json:"name,omitempty"`
	IsShopkeeper     *bool    `json:"is_shopkeeper,omitempty"`
	SellerCategories []string `json:"seller_categories,omitempty"`
	Location         *Point   `json:"location,omitempty"`
}
