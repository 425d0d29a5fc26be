package main

import (
	"context"
	"log"
	"time"

	"okoloBack/internal/geo"
	"okoloBack/internal/repositories"
)

const geoReconcilerTimeout = 1 * time.Minute

// startGeoReconciler keeps the Redis GEO set and the posts table in step: a
// finalized settlement deletes the post row in one transaction, but the geo
// member removal afterwards is best effort, and a failed GeoAdd at post
// creation leaves a post invisible. Each run re-adds every live post and
// removes members whose post row is gone.
func startGeoReconciler(ctx context.Context, repo *repositories.PostRepository, locator *geo.PostLocator, interval time.Duration, infoLog, errorLog *log.Logger) {
	if repo == nil || locator == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, geoReconcilerTimeout)
			defer cancel()

			locations, err := repo.ListPostLocations(runCtx)
			if err != nil {
				errorLog.Printf("geo reconciler: failed to list post locations: %v", err)
				return
			}
			live := make(map[int]bool, len(locations))
			added := 0
			for _, pl := range locations {
				live[pl.ID] = true
				if err := locator.Add(runCtx, pl.ID, pl.Longitude, pl.Latitude); err != nil {
					errorLog.Printf("geo reconciler: failed to add post %d: %v", pl.ID, err)
					continue
				}
				added++
			}

			members, err := locator.Members(runCtx)
			if err != nil {
				errorLog.Printf("geo reconciler: failed to list members: %v", err)
				return
			}
			removed := 0
			for _, id := range members {
				if live[id] {
					continue
				}
				if err := locator.Remove(runCtx, id); err != nil {
					errorLog.Printf("geo reconciler: failed to remove stale post %d: %v", id, err)
					continue
				}
				removed++
			}

			if removed > 0 {
				infoLog.Printf("geo reconciler: synced %d posts, removed %d stale members", added, removed)
			}
		}

		runOnce()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
