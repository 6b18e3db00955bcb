package usecase

import (
	"context"
	"log"
	"time"

	"titansync/internal/usecase/interfaces"
)

const (
	defaultClassificationTTL      = 15 * time.Minute
	defaultClassificationPageSize = 500
)

// ClassificationCache is the in-memory SKU id -> cross-sale category map
// backing the attribution calculator.
//
// The full pricebook table is bulk-loaded on first access and again after
// the TTL expires. Lookups that miss the loaded set fall back to one point
// read; negative results are cached (empty category) so a missing SKU costs
// at most one round trip per load cycle.
//
// Attribution is a secondary metric, so the cache favors availability over
// consistency: a failed bulk load is logged and callers proceed with
// whatever is already cached.
//
// Not safe for concurrent use. The pipeline is single-threaded.
type ClassificationCache struct {
	repo     interfaces.IPricebookRepository
	ttl      time.Duration
	pageSize int

	entries  map[int64]string
	loadedAt time.Time
}

func NewClassificationCache(repo interfaces.IPricebookRepository, ttl time.Duration) *ClassificationCache {
	if ttl <= 0 {
		ttl = defaultClassificationTTL
	}
	return &ClassificationCache{
		repo:     repo,
		ttl:      ttl,
		pageSize: defaultClassificationPageSize,
	}
}

// Get resolves a SKU id to its category. ok=false means unknown or
// uncategorized.
func (c *ClassificationCache) Get(ctx context.Context, skuID int64) (string, bool) {
	c.ensureLoaded(ctx)

	if category, hit := c.entries[skuID]; hit {
		return category, category != ""
	}

	item, err := c.repo.GetBySKU(ctx, skuID)
	if err != nil {
		// Point lookup failed; leave the entry absent so a later call can
		// retry, and treat the SKU as uncategorized for this record.
		log.Printf("[classify][cache] point lookup sku=%d failed: %v", skuID, err)
		return "", false
	}
	c.entries[skuID] = item.CrossSaleGroup
	return item.CrossSaleGroup, item.CrossSaleGroup != ""
}

// Classify binds ctx and returns the pure-function view the attribution
// calculator consumes.
func (c *ClassificationCache) Classify(ctx context.Context) ClassifyFunc {
	return func(skuID int64) (string, bool) {
		return c.Get(ctx, skuID)
	}
}

// Refresh forces a full reload and resets the TTL clock.
func (c *ClassificationCache) Refresh(ctx context.Context) error {
	return c.load(ctx)
}

// Clear drops all cached entries; the next Get bulk-loads again.
func (c *ClassificationCache) Clear() {
	c.entries = nil
	c.loadedAt = time.Time{}
}

func (c *ClassificationCache) ensureLoaded(ctx context.Context) {
	if c.entries != nil && time.Since(c.loadedAt) < c.ttl {
		return
	}
	if err := c.load(ctx); err != nil {
		log.Printf("[classify][cache] bulk load failed, serving stale data: %v", err)
		if c.entries == nil {
			c.entries = map[int64]string{}
		}
		// Reset the clock anyway so a broken store is not hammered on
		// every lookup; the next TTL expiry retries.
		c.loadedAt = time.Now()
	}
}

func (c *ClassificationCache) load(ctx context.Context) error {
	entries := map[int64]string{}
	for offset := 0; ; offset += c.pageSize {
		page, err := c.repo.ListPage(ctx, c.pageSize, offset)
		if err != nil {
			return err
		}
		for _, item := range page {
			entries[item.SKUID] = item.CrossSaleGroup
		}
		if len(page) < c.pageSize {
			break
		}
	}
	c.entries = entries
	c.loadedAt = time.Now()
	log.Printf("[classify][cache] loaded %d pricebook entries", len(entries))
	return nil
}
