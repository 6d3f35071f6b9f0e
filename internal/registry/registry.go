// Package registry puts a read-through cache in front of the athlete store.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/storage"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultCacheCapacity is the default number of athletes to cache.
	DefaultCacheCapacity = 10000
	// DefaultCacheTTL bounds how stale a cached profile may get.
	DefaultCacheTTL = 5 * time.Minute
)

// Store is what the cached registry reads from and writes through to.
type Store interface {
	storage.AthleteRegistry
	storage.AthleteWriter
}

// CachedRegistry serves athlete lookups from an LRU cache and falls back to
// the store on a miss. Unknown athletes are not cached, so a newly registered
// athlete is visible on the next lookup.
type CachedRegistry struct {
	store Store
	cache *LRUCache
	group singleflight.Group
}

var (
	_ storage.AthleteRegistry = (*CachedRegistry)(nil)
	_ storage.AthleteWriter   = (*CachedRegistry)(nil)
)

// NewCachedRegistry creates a registry with the default cache settings.
func NewCachedRegistry(store Store) *CachedRegistry {
	return NewCachedRegistryWithCache(store, DefaultCacheCapacity, DefaultCacheTTL)
}

// NewCachedRegistryWithCache creates a registry with a custom cache capacity and TTL.
func NewCachedRegistryWithCache(store Store, capacity int, ttl time.Duration) *CachedRegistry {
	return &CachedRegistry{
		store: store,
		cache: NewLRUCache(capacity, ttl),
	}
}

// GetAthlete returns the cached profile or loads it. Concurrent misses for
// the same athlete share one store read.
func (r *CachedRegistry) GetAthlete(ctx context.Context, athleteID string) (*v1.Athlete, error) {
	if athlete := r.cache.Get(athleteID); athlete != nil {
		return athlete, nil
	}

	v, err, _ := r.group.Do(athleteID, func() (any, error) {
		athlete, err := r.store.GetAthlete(ctx, athleteID)
		if err != nil {
			return nil, err
		}
		if athlete != nil {
			r.cache.Put(*athlete)
		}
		return athlete, nil
	})
	if err != nil {
		return nil, err
	}

	athlete, _ := v.(*v1.Athlete)
	if athlete == nil {
		return nil, nil
	}
	cp := *athlete
	return &cp, nil
}

// PutAthlete validates and writes the profile, then refreshes the cache.
func (r *CachedRegistry) PutAthlete(ctx context.Context, athlete v1.Athlete) error {
	if err := athlete.Validate(); err != nil {
		return fmt.Errorf("invalid athlete: %w", err)
	}
	if err := r.store.PutAthlete(ctx, athlete); err != nil {
		r.cache.Invalidate(athlete.ID)
		return err
	}
	r.cache.Put(athlete)

	slog.Debug("[Registry] Athlete registered",
		"athlete_id", athlete.ID,
		"gender", athlete.Gender,
		"age_category", athlete.AgeCategory)
	return nil
}
