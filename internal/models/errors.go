package models

import (
	"errors"
)

var (
	ErrNoRecord            = errors.New("models: no matching record found")
	ErrUserNotFound        = errors.New("models: user not found")
	ErrPostNotFound        = errors.New("models: post not found")
	ErrInteractionNotFound = errors.New("models: interaction not found")
	ErrForbidden           = errors.New("models: forbidden")
	ErrAlreadyConfirmed    = errors.New("models: already confirmed")
	ErrRatingRequired      = errors.New("models: rating required")
	ErrInvalidRating       = errors.New("models: rating out of range")
	ErrSettlementConflict  = errors.New("models: settlement finished by other party")
	ErrLocationMissing     = errors.New("models: user location missing")
	ErrInvalidCoordinates  = errors.New("models: invalid coordinates")
	ErrInvalidRadius       = errors.New("models: radius out of bounds")
	ErrInvalidKind         = errors.New("models: unknown interaction kind")
)
