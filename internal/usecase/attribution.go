package usecase

import (
	"fmt"

	"titansync/internal/domain/entities"
)

// ClassifyFunc resolves a pricebook SKU id to its cross-sale category.
// ok=false means the SKU is unknown or uncategorized.
type ClassifyFunc func(skuID int64) (category string, ok bool)

// CalculateAttribution buckets an estimate's line totals by cross-sale
// category. Items without a SKU or whose SKU resolves to no category are
// ignored (not an error). Amounts are summed as-is; no rounding beyond the
// precision of the source line totals.
//
// Whether a category is "present" on the estimate is derived from the
// result via Attribution.Has: strictly positive summed amount.
func CalculateAttribution(items []entities.EstimateItem, classify ClassifyFunc) entities.Attribution {
	result := entities.Attribution{}
	for _, it := range items {
		if it.SKUID == 0 {
			continue
		}
		category, ok := classify(it.SKUID)
		if !ok || category == "" {
			continue
		}
		bucket := result[category]
		bucket.Amount = bucket.Amount.Add(it.Total)
		bucket.Count++
		bucket.Items = append(bucket.Items, itemLabel(it))
		result[category] = bucket
	}
	return result
}

func itemLabel(it entities.EstimateItem) string {
	if it.SKUName != "" {
		return it.SKUName
	}
	return fmt.Sprintf("SKU %d", it.SKUID)
}
