package entities

import "time"

// Webhook is a registered chat-webhook destination for celebration and
// report messages.
//
// Storage model (Postgres):
//   - PK: id (uuid)
//
// Deleting is guarded: at least one enabled webhook must always remain so
// events are never silently dropped.
type Webhook struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Gif is one celebration image candidate. TGL celebration cards pick one at
// random.
type Gif struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage is the outbound chat payload. Either Text is set (plain
// message) or the Card fields are (celebration card with an image).
type ChatMessage struct {
	Text          string `json:"text,omitempty"`
	CardTitle     string `json:"card_title,omitempty"`
	CardSubtitle  string `json:"card_subtitle,omitempty"`
	CardImageURL  string `json:"card_image_url,omitempty"`
}

// WebhookEventKind tags why a webhook message was sent.
type WebhookEventKind string

const (
	WebhookEventTGL     WebhookEventKind = "tgl"
	WebhookEventBigSale WebhookEventKind = "big_sale"
	WebhookEventTest    WebhookEventKind = "test"
)

// WebhookLog records one delivery attempt. Deliveries are never retried
// automatically; the log plus the test endpoint are the recovery path.
type WebhookLog struct {
	ID                 string           `json:"id"`
	WebhookID          string           `json:"webhook_id"`
	EstimateExternalID int64            `json:"estimate_external_id"`
	Kind               WebhookEventKind `json:"kind"`
	StatusCode         int              `json:"status_code"`
	Success            bool             `json:"success"`
	Error              string           `json:"error"`
	SentAt             time.Time        `json:"sent_at"`
}
