package services

import (
	"context"
	"errors"
	"log"

	"okoloBack/internal/geo"
	"okoloBack/internal/models"
	"okoloBack/internal/repositories"
)

type SettlementService struct {
	SettlementRepo *repositories.SettlementRepository
	Locator        *geo.PostLocator
}

// Confirm records one party's confirmation of an interaction. When it is the
// finalizing one the repository transaction also applies reputation and
// deletes the post; this service then drops the post from the geo index.
//
// An interaction that resolves now but is gone by the time the transaction
// takes its lock was finalized by the other party in between; that caller
// gets ErrSettlementConflict and should re-read state, not retry.
func (s *SettlementService) Confirm(ctx context.Context, postID, interactionID, actorID int, role string, rating *int) (models.SettlementResult, error) {
	if role != models.RoleRequester && role != models.RoleResponder {
		return models.SettlementResult{}, models.ErrForbidden
	}

	postExists, interactionExists, err := s.SettlementRepo.Resolve(ctx, postID, interactionID)
	if err != nil {
		return models.SettlementResult{}, err
	}
	if !postExists {
		return models.SettlementResult{}, models.ErrPostNotFound
	}
	if !interactionExists {
		return models.SettlementResult{}, models.ErrInteractionNotFound
	}

	result, err := s.SettlementRepo.Confirm(ctx, postID, interactionID, actorID, role, rating)
	if errors.Is(err, models.ErrPostNotFound) || errors.Is(err, models.ErrInteractionNotFound) {
		return models.SettlementResult{}, models.ErrSettlementConflict
	}
	if err != nil {
		return models.SettlementResult{}, err
	}

	if result.PostDeleted {
		if err := s.Locator.Remove(ctx, postID); err != nil {
			log.Printf("SettlementService.Confirm: geo remove failed for post %d: %v", postID, err)
		}
	}
	return result, nil
}
