package entities

import "time"

// PricebookItemType distinguishes which pricebook endpoint an item came from.
type PricebookItemType string

const (
	PricebookItemMaterial  PricebookItemType = "material"
	PricebookItemEquipment PricebookItemType = "equipment"
	PricebookItemService   PricebookItemType = "service"
)

// PricebookItem is one SKU from the ServiceTitan pricebook.
//
// Storage model (Postgres):
//   - unique key: sku_id
//   - CrossSaleGroup is the category label used for attribution; empty
//     means uncategorized (the column is nullable upstream)
//
// Rows are bulk-loaded by the periodic pricebook sync and read back through
// the classification cache.
type PricebookItem struct {
	SKUID          int64             `json:"sku_id"`
	Code           string            `json:"code"`
	DisplayName    string            `json:"display_name"`
	Type           PricebookItemType `json:"type"`
	CrossSaleGroup string            `json:"cross_sale_group"`
	Active         bool              `json:"active"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Salesperson is the denormalized technician row kept for reporting.
//
// Storage model (Postgres):
//   - unique key: technician_id
type Salesperson struct {
	TechnicianID int64     `json:"technician_id"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	UpdatedAt    time.Time `json:"updated_at"`
}
