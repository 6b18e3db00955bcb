package request

import (
	"strings"

	"titansync/internal/usecase"
)

// CreateWebhookRequest is the POST /webhooks payload.
type CreateWebhookRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

func (r CreateWebhookRequest) ResolveName() string { return strings.TrimSpace(r.Name) }
func (r CreateWebhookRequest) ResolveURL() string  { return strings.TrimSpace(r.URL) }

// PatchWebhookRequest is the PATCH /webhooks/:id payload.
type PatchWebhookRequest struct {
	Name    *string `json:"name"`
	URL     *string `json:"url"`
	Enabled *bool   `json:"enabled"`
}

func (r PatchWebhookRequest) ToPatch() usecase.WebhookPatch {
	return usecase.WebhookPatch{
		Name:    r.Name,
		URL:     r.URL,
		Enabled: r.Enabled,
	}
}

// CreateGifRequest is the POST /gifs payload.
type CreateGifRequest struct {
	URL string `json:"url" binding:"required"`
}

func (r CreateGifRequest) ResolveURL() string { return strings.TrimSpace(r.URL) }
