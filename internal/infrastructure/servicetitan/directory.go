package servicetitan

import (
	"context"
	"errors"
	"fmt"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

var _ interfaces.IDirectory = (*Client)(nil)

type wireNamed struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TechnicianName resolves a technician's display name. A missing record is
// not an error: the synthesized placeholder is returned instead.
func (c *Client) TechnicianName(ctx context.Context, id int64) (string, error) {
	path := c.tenantPath("settings", fmt.Sprintf("technicians/%d", id))

	var body wireNamed
	if err := c.getJSON(ctx, path, nil, &body); err != nil {
		if errors.Is(err, ErrNotFound) {
			return entities.PlaceholderTechnicianName(id), nil
		}
		return "", err
	}
	if body.Name == "" {
		return entities.PlaceholderTechnicianName(id), nil
	}
	return body.Name, nil
}

// CustomerName resolves a customer's display name, placeholder on missing.
func (c *Client) CustomerName(ctx context.Context, id int64) (string, error) {
	path := c.tenantPath("crm", fmt.Sprintf("customers/%d", id))

	var body wireNamed
	if err := c.getJSON(ctx, path, nil, &body); err != nil {
		if errors.Is(err, ErrNotFound) {
			return entities.PlaceholderCustomerName(id), nil
		}
		return "", err
	}
	if body.Name == "" {
		return entities.PlaceholderCustomerName(id), nil
	}
	return body.Name, nil
}
