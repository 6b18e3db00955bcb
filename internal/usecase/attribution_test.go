package usecase

import (
	"testing"

	"github.com/shopspring/decimal"

	"titansync/internal/domain/entities"
)

func classifyFromMap(m map[int64]string) ClassifyFunc {
	return func(skuID int64) (string, bool) {
		cat, ok := m[skuID]
		return cat, ok && cat != ""
	}
}

func TestCalculateAttribution(t *testing.T) {
	t.Run("no items yields empty attribution", func(t *testing.T) {
		got := CalculateAttribution(nil, classifyFromMap(nil))
		if len(got) != 0 {
			t.Fatalf("expected empty attribution, got %v", got)
		}
	})

	t.Run("items without sku are skipped", func(t *testing.T) {
		items := []entities.EstimateItem{
			{SKUID: 0, SKUName: "misc labor", Total: decimal.NewFromInt(500)},
		}
		got := CalculateAttribution(items, classifyFromMap(map[int64]string{}))
		if len(got) != 0 {
			t.Fatalf("expected empty attribution, got %v", got)
		}
	})

	t.Run("uncategorized skus are skipped", func(t *testing.T) {
		items := []entities.EstimateItem{
			{SKUID: 11, SKUName: "filter", Total: decimal.NewFromInt(30)},
		}
		got := CalculateAttribution(items, classifyFromMap(map[int64]string{11: ""}))
		if len(got) != 0 {
			t.Fatalf("expected empty attribution, got %v", got)
		}
	})

	t.Run("sums per category and leaves the rest out", func(t *testing.T) {
		classify := classifyFromMap(map[int64]string{
			1: entities.CategoryWaterQuality,
			2: entities.CategoryWaterQuality,
			3: "", // known sku, no cross-sale group
		})
		items := []entities.EstimateItem{
			{SKUID: 1, SKUName: "softener", Total: decimal.NewFromInt(30)},
			{SKUID: 2, SKUName: "ro system", Total: decimal.NewFromInt(20)},
			{SKUID: 3, SKUName: "copper pipe", Total: decimal.NewFromInt(30)},
		}

		got := CalculateAttribution(items, classify)

		water, ok := got[entities.CategoryWaterQuality]
		if !ok {
			t.Fatalf("expected WATER QUALITY bucket, got %v", got)
		}
		if !water.Amount.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected WATER QUALITY amount 50, got %s", water.Amount)
		}
		if water.Count != 2 {
			t.Fatalf("expected WATER QUALITY count 2, got %d", water.Count)
		}
		if len(got) != 1 {
			t.Fatalf("expected only one category, got %v", got)
		}
	})

	t.Run("categories are additive and independent", func(t *testing.T) {
		classify := classifyFromMap(map[int64]string{
			1: entities.CategoryWaterQuality,
			2: entities.CategoryAirQuality,
		})
		items := []entities.EstimateItem{
			{SKUID: 1, Total: decimal.RequireFromString("10.25")},
			{SKUID: 2, Total: decimal.RequireFromString("99.75")},
			{SKUID: 1, Total: decimal.RequireFromString("0.75")},
		}

		got := CalculateAttribution(items, classify)

		if !got.Amount(entities.CategoryWaterQuality).Equal(decimal.RequireFromString("11.00")) {
			t.Fatalf("expected water amount 11.00, got %s", got.Amount(entities.CategoryWaterQuality))
		}
		if !got.Amount(entities.CategoryAirQuality).Equal(decimal.RequireFromString("99.75")) {
			t.Fatalf("expected air amount 99.75, got %s", got.Amount(entities.CategoryAirQuality))
		}
	})

	t.Run("zero-total item never marks a category present", func(t *testing.T) {
		classify := classifyFromMap(map[int64]string{1: entities.CategoryAirQuality})
		items := []entities.EstimateItem{
			{SKUID: 1, SKUName: "free filter", Total: decimal.Zero},
		}

		got := CalculateAttribution(items, classify)

		air := got[entities.CategoryAirQuality]
		if air.Count != 1 {
			t.Fatalf("expected the item to be counted, got %d", air.Count)
		}
		if got.Has(entities.CategoryAirQuality) {
			t.Fatalf("zero amount must not mark the category present")
		}
	})

	t.Run("item labels fall back to the sku id", func(t *testing.T) {
		classify := classifyFromMap(map[int64]string{42: entities.CategoryWaterQuality})
		items := []entities.EstimateItem{
			{SKUID: 42, Total: decimal.NewFromInt(5)},
		}

		got := CalculateAttribution(items, classify)

		labels := got[entities.CategoryWaterQuality].Items
		if len(labels) != 1 || labels[0] != "SKU 42" {
			t.Fatalf("expected label [SKU 42], got %v", labels)
		}
	})
}
