package services

import (
	"testing"
	"time"

	"okoloBack/internal/models"
)

func feedPost(id, userID int, tag string, dist, radius float64, createdAt time.Time) models.FeedPost {
	return models.FeedPost{
		Post: models.Post{
			ID:          id,
			UserID:      userID,
			CategoryTag: tag,
			Radius:      radius,
			CreatedAt:   createdAt,
		},
		DistanceMeters: dist,
	}
}

func feedIDs(feed []models.FeedPost) []int {
	ids := make([]int, 0, len(feed))
	for _, fp := range feed {
		ids = append(ids, fp.Post.ID)
	}
	return ids
}

func TestFilterVisible(t *testing.T) {
	now := time.Now()
	candidates := []models.FeedPost{
		feedPost(1, 10, "General", 500, 1000, now),  // inside its radius
		feedPost(2, 10, "General", 1500, 1000, now), // outside its radius
		feedPost(3, 99, "General", 100, 1000, now),  // viewer's own post
	}

	feed := filterVisible(candidates, 99)

	if got := feedIDs(feed); len(got) != 1 || got[0] != 1 {
		t.Fatalf("visible ids mismatch: %v", got)
	}
}

func TestFilterVisible_EmptyIsNotAnError(t *testing.T) {
	feed := filterVisible(nil, 1)
	if len(feed) != 0 {
		t.Fatalf("expected empty feed, got %d entries", len(feed))
	}
}

func TestCategoryBoost(t *testing.T) {
	sellers := []string{"Electronics", "Tools"}

	cases := []struct {
		name string
		tag  string
		want int
	}{
		{"matching tag", "Tools", 1},
		{"non-matching tag", "Food", 0},
		{"default tag never boosts", "General", 0},
		{"empty tag never boosts", "", 0},
		{"match is case-sensitive", "tools", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := categoryBoost(tc.tag, sellers); got != tc.want {
				t.Errorf("boost mismatch for %q: got %d want %d", tc.tag, got, tc.want)
			}
		})
	}
}

func TestRankFeed_CategoryBeforeDistanceBeforeRecency(t *testing.T) {
	now := time.Now()
	feed := []models.FeedPost{
		feedPost(1, 10, "General", 100, 5000, now),
		feedPost(2, 11, "Tools", 4000, 5000, now), // category match wins despite distance
		feedPost(3, 12, "General", 300, 5000, now),
		feedPost(4, 13, "General", 300, 5000, now.Add(time.Hour)), // same distance, newer first
	}

	rankFeed(feed, []string{"Tools"})

	want := []int{2, 1, 4, 3}
	got := feedIDs(feed)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got %v want %v", got, want)
		}
	}
}

func TestRankFeed_Deterministic(t *testing.T) {
	now := time.Now()
	build := func() []models.FeedPost {
		return []models.FeedPost{
			feedPost(1, 10, "General", 200, 5000, now),
			feedPost(2, 11, "General", 200, 5000, now), // full tie with 1
			feedPost(3, 12, "Tools", 900, 5000, now),
		}
	}

	first := build()
	rankFeed(first, []string{"Tools"})
	for i := 0; i < 5; i++ {
		again := build()
		rankFeed(again, []string{"Tools"})
		for j := range first {
			if first[j].Post.ID != again[j].Post.ID {
				t.Fatalf("run %d: order changed: %v vs %v", i, feedIDs(first), feedIDs(again))
			}
		}
	}

	// Full ties keep insertion order.
	if got := feedIDs(first); got[1] != 1 || got[2] != 2 {
		t.Fatalf("tie order mismatch: %v", got)
	}
}
