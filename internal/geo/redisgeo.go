package geo

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NearbyPost represents a post returned from Redis GEO queries.
type NearbyPost struct {
	ID   int
	Dist float64
	Lon  float64
	Lat  float64
}

// PostLocator handles post geo operations in Redis.
type PostLocator struct {
	rdb *redis.Client
	key string
}

// NewPostLocator creates a new locator over the given GEO set key.
func NewPostLocator(rdb *redis.Client, key string) *PostLocator {
	if key == "" {
		key = "posts:geo"
	}
	return &PostLocator{rdb: rdb, key: key}
}

func memberName(postID int) string {
	return fmt.Sprintf("post:%d", postID)
}

func parsePostMember(member string) (int, error) {
	parts := strings.Split(member, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid member %q", member)
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Add validates input and stores the post location in the GEO set.
func (l *PostLocator) Add(ctx context.Context, postID int, lon, lat float64) error {
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return fmt.Errorf("PostLocator.Add: invalid coords lon=%.8f lat=%.8f", lon, lat)
	}
	if math.Abs(lon) < 1e-4 && math.Abs(lat) < 1e-4 {
		return fmt.Errorf("PostLocator.Add: near-zero coords lon=%.8f lat=%.8f", lon, lat)
	}
	return l.rdb.GeoAdd(ctx, l.key, &redis.GeoLocation{Name: memberName(postID), Longitude: lon, Latitude: lat}).Err()
}

// Remove drops the post from the GEO set. Removing an absent member is not
// an error.
func (l *PostLocator) Remove(ctx context.Context, postID int) error {
	return l.rdb.ZRem(ctx, l.key, memberName(postID)).Err()
}

// Members returns the ids of every post currently in the GEO set. Malformed
// members are skipped with a log line.
func (l *PostLocator) Members(ctx context.Context) ([]int, error) {
	members, err := l.rdb.ZRange(ctx, l.key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := parsePostMember(m)
		if err != nil {
			log.Printf("PostLocator.Members: skip invalid member %s: %v", m, err)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Nearby returns posts within radiusMeters of the query point sorted by
// ascending distance. Zero results is a nil slice, not an error.
func (l *PostLocator) Nearby(ctx context.Context, lon, lat, radiusMeters float64, limit int) ([]NearbyPost, error) {
	res, err := l.rdb.GeoSearchLocation(ctx, l.key, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  lon,
			Latitude:   lat,
			Radius:     radiusMeters,
			RadiusUnit: "m",
			Sort:       "ASC",
			Count:      limit,
		},
		WithCoord: true,
		WithDist:  true,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	posts := make([]NearbyPost, 0, len(res))
	for _, item := range res {
		id, err := parsePostMember(item.Name)
		if err != nil {
			log.Printf("PostLocator.Nearby: skip invalid member %s: %v", item.Name, err)
			continue
		}
		posts = append(posts, NearbyPost{
			ID:   id,
			Dist: item.Dist,
			Lon:  item.Longitude,
			Lat:  item.Latitude,
		})
	}
	return posts, nil
}
