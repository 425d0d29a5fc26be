package services

import (
	"context"
	"log"
	"strings"

	"okoloBack/internal/geo"
	"okoloBack/internal/models"
	"okoloBack/internal/repositories"
)

type PostService struct {
	PostRepo *repositories.PostRepository
	UserRepo *repositories.UserRepository
	Locator  *geo.PostLocator

	MinRadiusMeters float64
	MaxRadiusMeters float64
}

// CreatePost stores a new post at the author's location (or an explicit one)
// with the given broadcast radius. The category tag comes from the external
// classifier and defaults to "General". The location is a snapshot: later
// profile moves do not affect existing posts.
func (s *PostService) CreatePost(ctx context.Context, authorID int, content string, radius float64, categoryTag string, location *models.Point) (models.Post, error) {
	if radius < s.MinRadiusMeters || radius > s.MaxRadiusMeters {
		return models.Post{}, models.ErrInvalidRadius
	}

	if location == nil {
		author, err := s.UserRepo.GetUserByID(ctx, authorID)
		if err != nil {
			return models.Post{}, err
		}
		if author.Location == nil {
			return models.Post{}, models.ErrLocationMissing
		}
		location = author.Location
	}
	if !location.Valid() {
		return models.Post{}, models.ErrInvalidCoordinates
	}

	categoryTag = strings.TrimSpace(categoryTag)
	if categoryTag == "" {
		categoryTag = models.DefaultCategoryTag
	}

	post, err := s.PostRepo.CreatePost(ctx, models.Post{
		UserID:      authorID,
		Content:     content,
		CategoryTag: categoryTag,
		Location:    *location,
		Radius:      radius,
	})
	if err != nil {
		return models.Post{}, err
	}

	// Best effort: a failed GEO write leaves the post invisible to the feed
	// until the reconciler resyncs the index.
	if err := s.Locator.Add(ctx, post.ID, post.Location.Longitude, post.Location.Latitude); err != nil {
		log.Printf("PostService.CreatePost: geo add failed for post %d: %v", post.ID, err)
	}
	return post, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int) (models.Post, error) {
	return s.PostRepo.GetPostByID(ctx, id)
}

// AddInteraction appends a typed response to someone else's post. The post
// author cannot respond to their own post.
func (s *PostService) AddInteraction(ctx context.Context, postID, responderID int, kind, details string, price *float64) (models.Interaction, error) {
	if !models.ValidKind(kind) {
		return models.Interaction{}, models.ErrInvalidKind
	}
	post, err := s.PostRepo.GetPostByID(ctx, postID)
	if err != nil {
		return models.Interaction{}, err
	}
	if post.UserID == responderID {
		return models.Interaction{}, models.ErrForbidden
	}
	return s.PostRepo.AddInteraction(ctx, models.Interaction{
		PostID:  postID,
		UserID:  responderID,
		Kind:    kind,
		Details: details,
		Price:   price,
	})
}

// AddComment appends a comment. Only the post author and users who already
// hold an interaction on the post may comment. The analysis annotation is
// stored opaquely; absent fields get neutral defaults.
func (s *PostService) AddComment(ctx context.Context, postID, authorID int, content string, analysis *models.CommentAnalysis) (models.Comment, error) {
	post, err := s.PostRepo.GetPostByID(ctx, postID)
	if err != nil {
		return models.Comment{}, err
	}
	if post.UserID != authorID {
		has, err := s.PostRepo.HasInteractionByUser(ctx, postID, authorID)
		if err != nil {
			return models.Comment{}, err
		}
		if !has {
			return models.Comment{}, models.ErrForbidden
		}
	}

	a := models.CommentAnalysis{Intent: models.DefaultCommentIntent}
	if analysis != nil {
		a = *analysis
		if strings.TrimSpace(a.Intent) == "" {
			a.Intent = models.DefaultCommentIntent
		}
	}

	return s.PostRepo.AddComment(ctx, models.Comment{
		PostID:   postID,
		UserID:   authorID,
		Content:  content,
		Analysis: a,
	})
}
