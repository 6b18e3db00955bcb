package response

import (
	"time"

	"titansync/internal/domain/entities"
)

type WebhookResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromWebhook(w entities.Webhook) WebhookResponse {
	return WebhookResponse{
		ID:        w.ID,
		Name:      w.Name,
		URL:       w.URL,
		Enabled:   w.Enabled,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func FromWebhooks(hooks []entities.Webhook) []WebhookResponse {
	out := make([]WebhookResponse, 0, len(hooks))
	for _, w := range hooks {
		out = append(out, FromWebhook(w))
	}
	return out
}

type GifResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func FromGif(g entities.Gif) GifResponse {
	return GifResponse{ID: g.ID, URL: g.URL, CreatedAt: g.CreatedAt}
}

func FromGifs(gifs []entities.Gif) []GifResponse {
	out := make([]GifResponse, 0, len(gifs))
	for _, g := range gifs {
		out = append(out, FromGif(g))
	}
	return out
}

// WebhookTestResponse reports the delivery status of a manual test send.
type WebhookTestResponse struct {
	StatusCode int  `json:"status_code"`
	Delivered  bool `json:"delivered"`
}

// ClearTestDataResponse reports rows deleted per table.
type ClearTestDataResponse struct {
	Deleted map[string]int64 `json:"deleted"`
}
