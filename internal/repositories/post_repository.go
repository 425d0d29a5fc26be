package repositories

import (
	"context"
	"database/sql"
	"time"

	"okoloBack/internal/models"
)

type PostRepository struct {
	DB *sql.DB
}

func (r *PostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	query := `
        INSERT INTO posts (user_id, content, category_tag, longitude, latitude, radius, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	post.CreatedAt = time.Now()
	err := r.DB.QueryRowContext(ctx, query,
		post.UserID, post.Content, post.CategoryTag,
		post.Location.Longitude, post.Location.Latitude, post.Radius, post.CreatedAt,
	).Scan(&post.ID)
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id int) (models.Post, error) {
	var post models.Post
	query := `
        SELECT id, user_id, content, category_tag, longitude, latitude, radius, created_at
        FROM posts
        WHERE id = $1
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Content, &post.CategoryTag,
		&post.Location.Longitude, &post.Location.Latitude, &post.Radius, &post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Post{}, models.ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, err
	}

	post.Interactions, err = r.getInteractionsByPostID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	post.Comments, err = r.getCommentsByPostID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// getInteractionsByPostID returns the post's interactions in insertion order.
func (r *PostRepository) getInteractionsByPostID(ctx context.Context, postID int) ([]models.Interaction, error) {
	query := `
        SELECT id, post_id, user_id, kind, details, price,
               requester_confirmed, responder_confirmed, is_completed, completion_date,
               responder_rating, requester_rating, created_at
        FROM interactions
        WHERE post_id = $1
        ORDER BY id
    `
	rows, err := r.DB.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []models.Interaction
	for rows.Next() {
		var in models.Interaction
		if err := rows.Scan(
			&in.ID, &in.PostID, &in.UserID, &in.Kind, &in.Details, &in.Price,
			&in.RequesterConfirmed, &in.ResponderConfirmed, &in.IsCompleted, &in.CompletionDate,
			&in.ResponderRating, &in.RequesterRating, &in.CreatedAt,
		); err != nil {
			return nil, err
		}
		interactions = append(interactions, in)
	}
	return interactions, rows.Err()
}

// getCommentsByPostID returns the post's comments in insertion order.
func (r *PostRepository) getCommentsByPostID(ctx context.Context, postID int) ([]models.Comment, error) {
	query := `
        SELECT id, post_id, user_id, content, is_toxic, intent, detected_price, created_at
        FROM comments
        WHERE post_id = $1
        ORDER BY id
    `
	rows, err := r.DB.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.UserID, &c.Content,
			&c.Analysis.IsToxic, &c.Analysis.Intent, &c.Analysis.DetectedPrice, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// GetFeedPostsByIDs hydrates feed candidates from the posts table, joins the
// redacted author fields and computes the distance from the viewer to each
// post's stored location. Rows come back ordered by post id; ranking is the
// caller's job. IDs without a matching row (stale geo members) are simply
// absent from the result.
func (r *PostRepository) GetFeedPostsByIDs(ctx context.Context, ids []int, viewer models.Point) ([]models.FeedPost, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
        SELECT p.id, p.user_id, p.content, p.category_tag, p.longitude, p.latitude, p.radius, p.created_at,
               u.id, u.name, u.is_shopkeeper, u.average_rating
        FROM posts p
        JOIN users u ON u.id = p.user_id
        WHERE p.id = ANY($1)
        ORDER BY p.id
    `
	rows, err := r.DB.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feed []models.FeedPost
	for rows.Next() {
		var fp models.FeedPost
		if err := rows.Scan(
			&fp.Post.ID, &fp.Post.UserID, &fp.Post.Content, &fp.Post.CategoryTag,
			&fp.Post.Location.Longitude, &fp.Post.Location.Latitude, &fp.Post.Radius, &fp.Post.CreatedAt,
			&fp.Author.ID, &fp.Author.Name, &fp.Author.IsShopkeeper, &fp.Author.AverageRating,
		); err != nil {
			return nil, err
		}
		fp.DistanceMeters = haversineMeters(
			viewer.Latitude, viewer.Longitude,
			fp.Post.Location.Latitude, fp.Post.Location.Longitude,
		)
		feed = append(feed, fp)
	}
	return feed, rows.Err()
}

func (r *PostRepository) DeletePost(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) AddInteraction(ctx context.Context, in models.Interaction) (models.Interaction, error) {
	query := `
        INSERT INTO interactions (post_id, user_id, kind, details, price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	in.CreatedAt = time.Now()
	err := r.DB.QueryRowContext(ctx, query,
		in.PostID, in.UserID, in.Kind, in.Details, in.Price, in.CreatedAt,
	).Scan(&in.ID)
	if err != nil {
		return models.Interaction{}, err
	}
	return in, nil
}

func (r *PostRepository) AddComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	query := `
        INSERT INTO comments (post_id, user_id, content, is_toxic, intent, detected_price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	c.CreatedAt = time.Now()
	err := r.DB.QueryRowContext(ctx, query,
		c.PostID, c.UserID, c.Content,
		c.Analysis.IsToxic, c.Analysis.Intent, c.Analysis.DetectedPrice, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

func (r *PostRepository) HasInteractionByUser(ctx context.Context, postID, userID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM interactions WHERE post_id = $1 AND user_id = $2)`
	if err := r.DB.QueryRowContext(ctx, query, postID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// PostLocation is the minimal projection the geo reconciler works with.
type PostLocation struct {
	ID        int
	Longitude float64
	Latitude  float64
}

func (r *PostRepository) ListPostLocations(ctx context.Context) ([]PostLocation, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, longitude, latitude FROM posts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []PostLocation
	for rows.Next() {
		var pl PostLocation
		if err := rows.Scan(&pl.ID, &pl.Longitude, &pl.Latitude); err != nil {
			return nil, err
		}
		locations = append(locations, pl)
	}
	return locations, rows.Err()
}
