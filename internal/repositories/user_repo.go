package repositories

import (
	"context"
	"database/sql"
	"time"

	"okoloBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	var lon, lat sql.NullFloat64
	query := `
        SELECT id, name, email, is_shopkeeper,
               completed_transactions_count, total_rating_sum, average_rating,
               longitude, latitude, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.IsShopkeeper,
		&user.CompletedCount, &user.TotalRatingSum, &user.AverageRating,
		&lon, &lat, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if lon.Valid && lat.Valid {
		user.Location = &models.Point{Longitude: lon.Float64, Latitude: lat.Float64}
	}

	user.SellerCategories, err = r.getSellerCategories(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) getSellerCategories(ctx context.Context, userID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT category FROM user_seller_categories WHERE user_id = $1 ORDER BY category`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UpdateProfile applies a partial profile edit. Seller categories are
// replaced wholesale when present in the update; the reputation columns are
// never touched here.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int, upd models.ProfileUpdate) (models.User, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `
        UPDATE users
        SET name = COALESCE($2, name),
            is_shopkeeper = COALESCE($3, is_shopkeeper),
            longitude = COALESCE($4, longitude),
            latitude = COALESCE($5, latitude),
            updated_at = $6
        WHERE id = $1
    `
	var lon, lat *float64
	if upd.Location != nil {
		lon = &upd.Location.Longitude
		lat = &upd.Location.Latitude
	}
	result, err := tx.ExecContext(ctx, query, userID, upd.Name, upd.IsShopkeeper, lon, lat, now)
	if err != nil {
		return models.User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rowsAffected == 0 {
		return models.User{}, models.ErrUserNotFound
	}

	if upd.SellerCategories != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM user_seller_categories WHERE user_id = $1`, userID); err != nil {
			return models.User{}, err
		}
		for _, c := range upd.SellerCategories {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO user_seller_categories (user_id, category) VALUES ($1, $2)`, userID, c); err != nil {
				return models.User{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, err
	}
	return r.GetUserByID(ctx, userID)
}
