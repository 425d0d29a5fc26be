package repositories

import (
	"context"
	"database/sql"
	"time"

	"okoloBack/internal/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// applyCompletedRating folds one completed-interaction rating into the user's
// running reputation in a single UPDATE, so concurrent completions for the
// same user cannot lose updates. It performs no idempotency check: the
// settlement transaction guarantees at most one call per interaction.
func applyCompletedRating(ctx context.Context, ex execer, userID, rating int) error {
	if !models.ValidRating(rating) {
		return models.ErrInvalidRating
	}
	query := `
        UPDATE users
        SET total_rating_sum = total_rating_sum + $2,
            completed_transactions_count = completed_transactions_count + 1,
            average_rating = (total_rating_sum + $2) / (completed_transactions_count + 1),
            updated_at = $3
        WHERE id = $1
    `
	result, err := ex.ExecContext(ctx, query, userID, rating, time.Now())
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

type ReputationRepository struct {
	DB *sql.DB
}

func (r *ReputationRepository) ApplyCompletedRating(ctx context.Context, userID, rating int) error {
	return applyCompletedRating(ctx, r.DB, userID, rating)
}
