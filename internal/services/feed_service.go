package services

import (
	"context"
	"sort"
	"time"

	"okoloBack/internal/geo"
	"okoloBack/internal/models"
	"okoloBack/internal/repositories"
)

// feedReadAttempts bounds retries of the candidate hydration query. Only this
// read is retried; writes are never retried here.
const feedReadAttempts = 3

type FeedService struct {
	UserRepo *repositories.UserRepository
	PostRepo *repositories.PostRepository
	Locator  *geo.PostLocator

	// SearchCeilingMeters is the system-wide index cutoff; each post's own
	// radius is applied afterwards as a per-post filter.
	SearchCeilingMeters float64
	CandidateLimit      int
}

// RankNearby returns the posts visible from the caller's profile location,
// ordered by seller-category match, then distance, then recency. The caller's
// own posts are excluded. An empty feed is a success, not an error.
func (s *FeedService) RankNearby(ctx context.Context, callerID int) ([]models.FeedPost, error) {
	caller, err := s.UserRepo.GetUserByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Location == nil {
		return nil, models.ErrLocationMissing
	}

	near, err := s.Locator.Nearby(ctx,
		caller.Location.Longitude, caller.Location.Latitude,
		s.SearchCeilingMeters, s.CandidateLimit)
	if err != nil {
		return nil, err
	}
	if len(near) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(near))
	for _, n := range near {
		ids = append(ids, n.ID)
	}

	candidates, err := s.hydrate(ctx, ids, *caller.Location)
	if err != nil {
		return nil, err
	}

	feed := filterVisible(candidates, callerID)
	rankFeed(feed, caller.SellerCategories)
	return feed, nil
}

func (s *FeedService) hydrate(ctx context.Context, ids []int, viewer models.Point) ([]models.FeedPost, error) {
	var lastErr error
	for attempt := 0; attempt < feedReadAttempts; attempt++ {
		feed, err := s.PostRepo.GetFeedPostsByIDs(ctx, ids, viewer)
		if err == nil {
			return feed, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
		}
	}
	return nil, lastErr
}

// filterVisible keeps posts whose own broadcast radius covers the viewer and
// drops the viewer's own posts. Visibility is the poster's choice, not the
// viewer's.
func filterVisible(candidates []models.FeedPost, viewerID int) []models.FeedPost {
	feed := make([]models.FeedPost, 0, len(candidates))
	for _, fp := range candidates {
		if fp.Post.UserID == viewerID {
			continue
		}
		if fp.DistanceMeters > fp.Post.Radius {
			continue
		}
		feed = append(feed, fp)
	}
	return feed
}

// categoryBoost is 1 when the post carries a non-default tag that exactly
// matches one of the viewer's seller categories. Case-sensitive, no partial
// matching.
func categoryBoost(tag string, sellerCategories []string) int {
	if tag == "" || tag == models.DefaultCategoryTag {
		return 0
	}
	for _, c := range sellerCategories {
		if c == tag {
			return 1
		}
	}
	return 0
}

// rankFeed orders the feed in place: category boost descending, distance
// ascending, creation time descending. The stable sort keeps the incoming
// order for full ties, so repeated calls on unchanged data return the same
// sequence.
func rankFeed(feed []models.FeedPost, sellerCategories []string) {
	sort.SliceStable(feed, func(i, j int) bool {
		bi := categoryBoost(feed[i].Post.CategoryTag, sellerCategories)
		bj := categoryBoost(feed[j].Post.CategoryTag, sellerCategories)
		if bi != bj {
			return bi > bj
		}
		if feed[i].DistanceMeters != feed[j].DistanceMeters {
			return feed[i].DistanceMeters < feed[j].DistanceMeters
		}
		return feed[i].Post.CreatedAt.After(feed[j].Post.CreatedAt)
	})
}
