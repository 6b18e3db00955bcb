package servicetitan

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

var _ interfaces.IPricebookSource = (*Client)(nil)

type pricebookPage struct {
	Data    []wirePricebookItem `json:"data"`
	HasMore bool                `json:"hasMore"`
}

type wirePricebookItem struct {
	ID             int64  `json:"id"`
	Code           string `json:"code"`
	DisplayName    string `json:"displayName"`
	Active         bool   `json:"active"`
	CrossSaleGroup string `json:"crossSaleGroup"`
}

var pricebookResources = map[entities.PricebookItemType]string{
	entities.PricebookItemMaterial:  "materials",
	entities.PricebookItemEquipment: "equipment",
	entities.PricebookItemService:   "services",
}

// ListPricebook pages one pricebook item type with page-number paging.
// Termination: hasMore false, or a page shorter than the page size.
func (c *Client) ListPricebook(ctx context.Context, itemType entities.PricebookItemType, yield func(entities.PricebookItem) error) error {
	resource, ok := pricebookResources[itemType]
	if !ok {
		return fmt.Errorf("unknown pricebook item type %q", itemType)
	}
	path := c.tenantPath("pricebook", resource)

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("pageSize", strconv.Itoa(c.cfg.PageSize))

		var body pricebookPage
		if err := c.getJSON(ctx, path, query, &body); err != nil {
			return fmt.Errorf("pricebook %s page %d: %w", itemType, page, err)
		}

		now := time.Now().UTC()
		for _, w := range body.Data {
			item := entities.PricebookItem{
				SKUID:          w.ID,
				Code:           w.Code,
				DisplayName:    w.DisplayName,
				Type:           itemType,
				CrossSaleGroup: w.CrossSaleGroup,
				Active:         w.Active,
				UpdatedAt:      now,
			}
			if err := yield(item); err != nil {
				return err
			}
		}

		if !body.HasMore || len(body.Data) < c.cfg.PageSize {
			return nil
		}
		if err := c.pause(ctx); err != nil {
			return err
		}
	}
}
