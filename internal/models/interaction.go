package models

import (
	"time"
)

const (
	KindHelp = "help"
	KindRent = "rent"
	KindSell = "sell"
)

// Settlement roles. The requester is always the post's author, the responder
// is always the interaction's creator; neither is stored, both are derived.
const (
	RoleRequester = "requester"
	RoleResponder = "responder"
)

type Interaction struct {
	ID                 int        `json:"id"`
	PostID             int        `json:"post_id"`
	UserID             int        `json:"user_id"`
	Kind               string     `json:"kind"`
	Details            string     `json:"details"`
	Price              *float64   `json:"price,omitempty"`
	RequesterConfirmed bool       `json:"requester_confirmed"`
	ResponderConfirmed bool       `json:"responder_confirmed"`
	IsCompleted        bool       `json:"is_completed"`
	CompletionDate     *time.Time `json:"completion_date,omitempty"`
	ResponderRating    *int       `json:"responder_rating,omitempty"`
	RequesterRating    *int       `json:"requester_rating,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func ValidKind(kind string) bool {
	switch kind {
	case KindHelp, KindRent, KindSell:
		return true
	}
	return false
}

// SettlementResult is what a confirm call returns: the interaction as it
// stands after the update, and whether this confirmation finalized the
// exchange and retired the post.
type SettlementResult struct {
	Interaction Interaction `json:"interaction"`
	PostDeleted bool        `json:"post_deleted"`
}
