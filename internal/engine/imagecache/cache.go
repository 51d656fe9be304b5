// Package imagecache implements the per-item artifact cache for generated
// food images. A cache hit requires both a fresh metadata entry and a still
// existing artifact in the object store; anything else is a miss that forces
// regeneration. Stale entries are never purged, only ignored.
package imagecache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports"
)

// DefaultTTL is the maximum age after which a cache entry is treated as
// stale regardless of artifact existence.
const DefaultTTL = 7 * 24 * time.Hour

// Cache maps (week, food-description) pairs to previously generated images.
type Cache struct {
	meta   ports.MetadataStore
	store  ports.ObjectStore
	gen    ports.Generator
	logger ports.Logger
	clock  ports.Clock
	ttl    time.Duration
}

// NewCache creates a new Cache with the default 7 day TTL.
func NewCache(
	meta ports.MetadataStore,
	store ports.ObjectStore,
	gen ports.Generator,
	logger ports.Logger,
	clock ports.Clock,
) *Cache {
	return &Cache{
		meta:   meta,
		store:  store,
		gen:    gen,
		logger: logger,
		clock:  clock,
		ttl:    DefaultTTL,
	}
}

// WithTTL overrides the freshness window. Used by tests.
func (c *Cache) WithTTL(ttl time.Duration) *Cache {
	c.ttl = ttl
	return c
}

// DeriveKey computes the cache key for a (food, week) pairing. The key is a
// pure function of its inputs: same food name (case-insensitively) and week
// identifier always produce the same key, across calls and restarts.
func DeriveKey(foodName string, weekID domain.WeekID) string {
	digest := xxhash.Sum64String(weekID.String() + "_" + strings.ToLower(foodName))
	return fmt.Sprintf("%016x", digest)
}

// Lookup returns the public URL of a cached image for the given food and
// week, or ok=false on a miss. Metadata read failures degrade to a miss so
// a broken cache never blocks generation.
func (c *Cache) Lookup(ctx context.Context, foodName string, weekID domain.WeekID) (string, bool) {
	key := DeriveKey(foodName, weekID)

	entry, err := c.meta.GetEntry(key)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("cache metadata read failed for %q, regenerating: %v", foodName, err))
		return "", false
	}
	if entry == nil {
		return "", false
	}

	if !entry.FreshAt(c.clock.Now(), c.ttl) {
		// Stale entries stay in place; the next Record overwrites them.
		return "", false
	}

	exists, err := c.store.Exists(ctx, entry.ImagePath)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("artifact existence check failed for %s: %v", entry.ImagePath, err))
		return "", false
	}
	if !exists {
		return "", false
	}

	return c.store.PublicURL(entry.ImagePath), true
}

// Record persists the metadata for a freshly generated image, overwriting
// any prior entry for the key. Write failures are logged and swallowed: the
// artifact is still usable this run, it just will not be cached for next time.
func (c *Cache) Record(key, imagePath string, weekID domain.WeekID, foodName string) {
	entry := domain.CacheEntry{
		ImagePath: imagePath,
		WeekID:    weekID.String(),
		FoodItem:  foodName,
		Timestamp: c.clock.Now(),
	}
	if err := c.meta.PutEntry(key, entry); err != nil {
		c.logger.Warn(fmt.Sprintf("cache metadata write failed for %q: %v", foodName, err))
	}
}

// EnsureImage returns a public URL for an image of the item's meal,
// generating and uploading one if the cache has no usable entry. Sentinel
// names ("No School", "Holiday", ...) bypass the cache entirely and yield
// no image. Generation and upload failures are per-day fail-soft: the day
// simply goes without an image.
func (c *Cache) EnsureImage(ctx context.Context, item domain.MenuItem, weekID domain.WeekID) (string, error) {
	if item.SkipsGeneration() {
		return "", nil
	}

	if url, ok := c.Lookup(ctx, item.Name, weekID); ok {
		c.logger.Info(fmt.Sprintf("using cached image for %q", item.Name))
		return url, nil
	}

	data, err := c.gen.Generate(ctx, item.Name)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		c.logger.Warn(fmt.Sprintf("image generation failed for %q: %v", item.Name, err))
		return "", nil
	}
	if len(data) == 0 {
		c.logger.Warn(fmt.Sprintf("image generation produced nothing for %q", item.Name))
		return "", nil
	}

	key := DeriveKey(item.Name, weekID)
	path := domain.MenuImagePath(weekID, key)

	url, err := c.store.Upload(ctx, path, data, "image/png")
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		c.logger.Warn(fmt.Sprintf("image upload failed for %q: %v", item.Name, err))
		return "", nil
	}

	c.Record(key, path, weekID, item.Name)
	return url, nil
}
