package repositories

import (
	"context"
	"database/sql"
	"time"

	"okoloBack/internal/models"
)

type SettlementRepository struct {
	DB *sql.DB
}

// Resolve reports whether the post and the interaction currently exist. The
// settlement service uses it to tell a never-existing interaction apart from
// one that vanished because the other party finalized first.
func (r *SettlementRepository) Resolve(ctx context.Context, postID, interactionID int) (postExists, interactionExists bool, err error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1),
               EXISTS (SELECT 1 FROM interactions WHERE id = $2 AND post_id = $1)
    `
	err = r.DB.QueryRowContext(ctx, query, postID, interactionID).Scan(&postExists, &interactionExists)
	return postExists, interactionExists, err
}

// Confirm is the single authoritative read-modify-write of the settlement
// protocol. The post row is locked for the whole transaction, so two
// confirmations on the same interaction serialize and exactly one of them
// observes "both flags now true". The finalizing confirmation marks the
// interaction completed, applies the responder's reputation and deletes the
// post (cascading its interactions and comments) before a single commit.
func (r *SettlementRepository) Confirm(ctx context.Context, postID, interactionID, actorID int, claimedRole string, rating *int) (models.SettlementResult, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.SettlementResult{}, err
	}
	defer tx.Rollback()

	var authorID int
	err = tx.QueryRowContext(ctx,
		`SELECT user_id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&authorID)
	if err == sql.ErrNoRows {
		return models.SettlementResult{}, models.ErrPostNotFound
	}
	if err != nil {
		return models.SettlementResult{}, err
	}

	var in models.Interaction
	err = tx.QueryRowContext(ctx, `
        SELECT id, post_id, user_id, kind, details, price,
               requester_confirmed, responder_confirmed, is_completed, completion_date,
               responder_rating, requester_rating, created_at
        FROM interactions
        WHERE id = $1 AND post_id = $2
        FOR UPDATE
    `, interactionID, postID).Scan(
		&in.ID, &in.PostID, &in.UserID, &in.Kind, &in.Details, &in.Price,
		&in.RequesterConfirmed, &in.ResponderConfirmed, &in.IsCompleted, &in.CompletionDate,
		&in.ResponderRating, &in.RequesterRating, &in.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.SettlementResult{}, models.ErrInteractionNotFound
	}
	if err != nil {
		return models.SettlementResult{}, err
	}

	derived, err := models.DeriveRole(actorID, authorID, in.UserID)
	if err != nil {
		return models.SettlementResult{}, err
	}
	if claimedRole != derived {
		return models.SettlementResult{}, models.ErrForbidden
	}

	finalizing, err := in.ApplyConfirmation(derived, rating)
	if err != nil {
		return models.SettlementResult{}, err
	}

	if finalizing {
		now := time.Now()
		in.IsCompleted = true
		in.CompletionDate = &now
	}

	_, err = tx.ExecContext(ctx, `
        UPDATE interactions
        SET requester_confirmed = $2, responder_confirmed = $3,
            responder_rating = $4, requester_rating = $5,
            is_completed = $6, completion_date = $7
        WHERE id = $1
    `, in.ID, in.RequesterConfirmed, in.ResponderConfirmed,
		in.ResponderRating, in.RequesterRating, in.IsCompleted, in.CompletionDate)
	if err != nil {
		return models.SettlementResult{}, err
	}

	if finalizing {
		if err := applyCompletedRating(ctx, tx, in.UserID, *in.ResponderRating); err != nil {
			return models.SettlementResult{}, err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID); err != nil {
			return models.SettlementResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.SettlementResult{}, err
	}
	return models.SettlementResult{Interaction: in, PostDeleted: finalizing}, nil
}
