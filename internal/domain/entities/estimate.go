package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// IngestSource marks how a stored estimate row entered the system.
//
// Domain notes:
//   - "live" rows come from the incremental poll loop (soldAfter paging).
//   - "backfill" rows come from the export endpoint over a historical range.
//
// Re-ingesting the same estimate from either path upserts the same row; the
// source marker reflects the most recent writer.
type IngestSource string

const (
	IngestSourceLive     IngestSource = "live"
	IngestSourceBackfill IngestSource = "backfill"
)

// Estimate is a sold estimate as returned by the ServiceTitan sales API.
//
// Invariants:
//   - ID is unique and stable across API calls; it is the natural key for
//     every downstream upsert.
//   - Items carry the pricebook SKU id when the line was built from the
//     pricebook; ad hoc lines have SKUID == 0.
type Estimate struct {
	ID         int64           `json:"id"`
	JobID      int64           `json:"jobId"`
	Name       string          `json:"name"`
	CustomerID int64           `json:"customerId"`
	SoldBy     int64           `json:"soldBy"`
	SoldOn     time.Time       `json:"soldOn"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Status     string          `json:"status"`
	Items      []EstimateItem  `json:"items"`
	Raw        json.RawMessage `json:"-"`
}

// EstimateItem is one line on an estimate.
type EstimateItem struct {
	SKUID    int64           `json:"skuId"`
	SKUName  string          `json:"skuName"`
	Total    decimal.Decimal `json:"total"`
	Quantity decimal.Decimal `json:"qty"`
}

// Cross-sale category labels as they appear in the pricebook sync. The
// attribution map is keyed by whatever labels the pricebook carries; these
// two get dedicated columns on the estimates table.
const (
	CategoryWaterQuality = "WATER QUALITY"
	CategoryAirQuality   = "AIR QUALITY"
)

// CategoryAttribution is the per-category slice of an estimate's revenue.
type CategoryAttribution struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
	Items  []string        `json:"items"`
}

// Attribution maps a cross-sale category label to its attributed revenue.
// It is recomputed on every ingestion pass, never incrementally maintained.
type Attribution map[string]CategoryAttribution

// Amount returns the summed amount attributed to cat, zero when absent.
func (a Attribution) Amount(cat string) decimal.Decimal {
	if b, ok := a[cat]; ok {
		return b.Amount
	}
	return decimal.Zero
}

// Has reports whether cat is present on the estimate. A category is present
// iff its summed amount is strictly greater than zero; zero-total items do
// not mark a category present.
func (a Attribution) Has(cat string) bool {
	return a.Amount(cat).GreaterThan(decimal.Zero)
}

// SoldEstimate is the denormalized row persisted in the estimates table.
//
// Storage model (Postgres):
//   - unique key: external_id (the ServiceTitan estimate id)
//   - attribution is stored as JSONB; water/air amounts and flags are
//     denormalized into their own columns for reporting queries
type SoldEstimate struct {
	ExternalID      int64           `json:"external_id"`
	Name            string          `json:"name"`
	SoldOn          time.Time       `json:"sold_on"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	SalespersonID   int64           `json:"salesperson_id"`
	SalespersonName string          `json:"salesperson_name"`
	CustomerID      int64           `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	IsTGL           bool            `json:"is_tgl"`
	IsBigSale       bool            `json:"is_big_sale"`
	Attribution     Attribution     `json:"attribution"`
	Raw             json.RawMessage `json:"raw"`
	Source          IngestSource    `json:"source"`
	ProcessedAt     time.Time       `json:"processed_at"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SoldWindow is the inclusive time range an ingestion run covers.
type SoldWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// PlaceholderTechnicianName is the fallback used when the directory lookup
// for a technician id finds no record. Missing is not an error.
func PlaceholderTechnicianName(id int64) string {
	return fmt.Sprintf("Technician #%d", id)
}

// PlaceholderCustomerName is the customer-side placeholder fallback.
func PlaceholderCustomerName(id int64) string {
	return fmt.Sprintf("Customer #%d", id)
}
