package interfaces

import (
	"context"

	"titansync/internal/domain/entities"
)

// IWebhookRepository abstracts Postgres persistence for webhook
// destinations. A zero-valued Webhook (ID == "") means "not found".
type IWebhookRepository interface {
	List(ctx context.Context) ([]entities.Webhook, error)
	ListEnabled(ctx context.Context) ([]entities.Webhook, error)
	GetByID(ctx context.Context, id string) (entities.Webhook, error)
	Create(ctx context.Context, w entities.Webhook) (entities.Webhook, error)
	Update(ctx context.Context, w entities.Webhook) (entities.Webhook, error)
	Delete(ctx context.Context, id string) error
	CountEnabled(ctx context.Context) (int, error)
}

// IGifRepository abstracts the celebration gif pool.
type IGifRepository interface {
	List(ctx context.Context) ([]entities.Gif, error)
	Create(ctx context.Context, g entities.Gif) (entities.Gif, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// IWebhookLogRepository is append-only delivery logging.
type IWebhookLogRepository interface {
	Append(ctx context.Context, l entities.WebhookLog) error
}
