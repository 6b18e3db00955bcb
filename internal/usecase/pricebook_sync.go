package usecase

import (
	"context"
	"fmt"
	"log"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

const pricebookUpsertBatchSize = 100

// PricebookSyncUseCase mirrors the upstream pricebook (materials,
// equipment, services) into the pricebook_items table and then refreshes
// the classification cache so the next ingestion pass sees the new
// categories.
type PricebookSyncUseCase struct {
	source interfaces.IPricebookSource
	repo   interfaces.IPricebookRepository
	cache  *ClassificationCache
}

func NewPricebookSyncUseCase(source interfaces.IPricebookSource, repo interfaces.IPricebookRepository, cache *ClassificationCache) *PricebookSyncUseCase {
	return &PricebookSyncUseCase{source: source, repo: repo, cache: cache}
}

// Run syncs all three item types sequentially. A failure mid-type aborts
// the run; items already upserted stay (idempotent on SKU id).
func (u *PricebookSyncUseCase) Run(ctx context.Context) (int, error) {
	total := 0
	types := []entities.PricebookItemType{
		entities.PricebookItemMaterial,
		entities.PricebookItemEquipment,
		entities.PricebookItemService,
	}

	for _, itemType := range types {
		batch := make([]entities.PricebookItem, 0, pricebookUpsertBatchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := u.repo.UpsertBatch(ctx, batch); err != nil {
				return err
			}
			total += len(batch)
			batch = batch[:0]
			return nil
		}

		err := u.source.ListPricebook(ctx, itemType, func(item entities.PricebookItem) error {
			batch = append(batch, item)
			if len(batch) >= pricebookUpsertBatchSize {
				return flush()
			}
			return nil
		})
		if err != nil {
			return total, fmt.Errorf("sync pricebook %s: %w", itemType, err)
		}
		if err := flush(); err != nil {
			return total, fmt.Errorf("sync pricebook %s: %w", itemType, err)
		}
		log.Printf("[pricebook][sync] %s done", itemType)
	}

	if err := u.cache.Refresh(ctx); err != nil {
		// The cache serves stale data on its own; a failed refresh here is
		// worth reporting but the sync itself succeeded.
		log.Printf("[pricebook][sync] cache refresh failed: %v", err)
	}
	log.Printf("[pricebook][sync] upserted %d items", total)
	return total, nil
}
