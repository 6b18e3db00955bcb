package interfaces

import (
	"context"

	"titansync/internal/domain/entities"
)

// IPricebookRepository abstracts Postgres persistence for pricebook SKUs.
//
// ListPage is range-paginated (ORDER BY sku_id LIMIT/OFFSET) so the
// classification cache can bulk-load the whole table. A zero-valued
// PricebookItem (SKUID == 0) from GetBySKU means "not found".
type IPricebookRepository interface {
	UpsertBatch(ctx context.Context, items []entities.PricebookItem) error
	GetBySKU(ctx context.Context, skuID int64) (entities.PricebookItem, error)
	ListPage(ctx context.Context, limit, offset int) ([]entities.PricebookItem, error)
}

// ISalespeopleRepository abstracts the denormalized salespeople table.
type ISalespeopleRepository interface {
	Upsert(ctx context.Context, sp entities.Salesperson) error
}
