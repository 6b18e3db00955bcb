package servicetitan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

var _ interfaces.IEstimateSource = (*Client)(nil)

// estimatePage keeps each element raw so the original payload can be
// persisted alongside the normalized record.
type estimatePage struct {
	Data         []json.RawMessage `json:"data"`
	ContinueFrom string            `json:"continueFrom"`
}

type wireEstimate struct {
	ID         int64           `json:"id"`
	JobID      int64           `json:"jobId"`
	Name       string          `json:"name"`
	CustomerID int64           `json:"customerId"`
	SoldBy     int64           `json:"soldBy"`
	SoldOn     time.Time       `json:"soldOn"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Status     wireStatus      `json:"status"`
	Items      []wireItem      `json:"items"`
}

type wireStatus struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

type wireItem struct {
	SKU   wireSKU         `json:"sku"`
	Total decimal.Decimal `json:"total"`
	Qty   decimal.Decimal `json:"qty"`
}

type wireSKU struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
}

// StreamSold pages the live estimates endpoint with page-number paging.
// Termination: a page shorter than the requested page size is the last.
func (c *Client) StreamSold(ctx context.Context, window entities.SoldWindow, yield func(entities.Estimate) error) error {
	path := c.tenantPath("sales", "estimates")

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("soldAfter", window.From.UTC().Format(time.RFC3339))
		if !window.To.IsZero() {
			query.Set("soldBefore", window.To.UTC().Format(time.RFC3339))
		}
		query.Set("page", strconv.Itoa(page))
		query.Set("pageSize", strconv.Itoa(c.cfg.PageSize))

		var body estimatePage
		if err := c.getJSON(ctx, path, query, &body); err != nil {
			return fmt.Errorf("estimates page %d: %w", page, err)
		}

		if err := yieldPage(body.Data, yield); err != nil {
			return err
		}

		if len(body.Data) < c.cfg.PageSize {
			return nil
		}
		if err := c.pause(ctx); err != nil {
			return err
		}
	}
}

// ExportSold pages the export endpoint with continuation-token paging.
// Termination: no continueFrom token, or an empty page.
func (c *Client) ExportSold(ctx context.Context, window entities.SoldWindow, yield func(entities.Estimate) error) error {
	path := c.tenantPath("sales", "estimates/export")

	token := ""
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("soldOnOrAfter", window.From.UTC().Format("2006-01-02"))
		if !window.To.IsZero() {
			query.Set("soldOnOrBefore", window.To.UTC().Format("2006-01-02"))
		}
		query.Set("status", "Sold")
		query.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
		if token != "" {
			query.Set("continueFrom", token)
		}

		var body estimatePage
		if err := c.getJSON(ctx, path, query, &body); err != nil {
			return fmt.Errorf("estimates export page %d: %w", page, err)
		}

		if len(body.Data) == 0 {
			return nil
		}
		if err := yieldPage(body.Data, yield); err != nil {
			return err
		}

		if body.ContinueFrom == "" {
			return nil
		}
		token = body.ContinueFrom
		if err := c.pause(ctx); err != nil {
			return err
		}
	}
}

func yieldPage(raw []json.RawMessage, yield func(entities.Estimate) error) error {
	for _, payload := range raw {
		var w wireEstimate
		if err := json.Unmarshal(payload, &w); err != nil {
			return fmt.Errorf("decode estimate: %w", err)
		}
		if err := yield(normalizeEstimate(w, payload)); err != nil {
			return err
		}
	}
	return nil
}

func normalizeEstimate(w wireEstimate, raw json.RawMessage) entities.Estimate {
	items := make([]entities.EstimateItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, entities.EstimateItem{
			SKUID:    it.SKU.ID,
			SKUName:  it.SKU.DisplayName,
			Total:    it.Total,
			Quantity: it.Qty,
		})
	}
	return entities.Estimate{
		ID:         w.ID,
		JobID:      w.JobID,
		Name:       w.Name,
		CustomerID: w.CustomerID,
		SoldBy:     w.SoldBy,
		SoldOn:     w.SoldOn,
		Subtotal:   w.Subtotal,
		Status:     w.Status.Name,
		Items:      items,
		Raw:        raw,
	}
}
