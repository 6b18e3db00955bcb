package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

var (
	ErrWebhookNotFound    = errors.New("webhook not found")
	ErrInvalidWebhookURL  = errors.New("invalid webhook url")
	ErrInvalidWebhookName = errors.New("invalid webhook name")
	ErrLastEnabledWebhook = errors.New("cannot remove the last enabled webhook")
	ErrGifNotFound        = errors.New("gif not found")
	ErrInvalidGifURL      = errors.New("invalid gif url")
	ErrMinGifCount        = errors.New("cannot delete below the minimum gif count")
)

// MinGifsRemaining is the floor the gif-delete guard enforces so TGL
// celebration cards always have an image to pick.
const MinGifsRemaining = 1

// WebhookPatch carries PATCH fields for a webhook; nil means unchanged.
type WebhookPatch struct {
	Name    *string
	URL     *string
	Enabled *bool
}

// IWebhookAdminUseCase exposes the webhook/gif administration operations.
type IWebhookAdminUseCase interface {
	ListWebhooks(ctx context.Context) ([]entities.Webhook, error)
	CreateWebhook(ctx context.Context, name, rawURL string) (entities.Webhook, error)
	UpdateWebhook(ctx context.Context, id string, patch WebhookPatch) (entities.Webhook, error)
	DeleteWebhook(ctx context.Context, id string) error
	TestWebhook(ctx context.Context, id string) (int, error)
	ListGifs(ctx context.Context) ([]entities.Gif, error)
	AddGif(ctx context.Context, rawURL string) (entities.Gif, error)
	DeleteGif(ctx context.Context, id string) error
}

// WebhookAdminUseCase manages chat-webhook destinations and the
// celebration gif pool.
type WebhookAdminUseCase struct {
	webhooks interfaces.IWebhookRepository
	gifs     interfaces.IGifRepository
	chat     interfaces.IChatNotifier
	logs     interfaces.IWebhookLogRepository
}

var _ IWebhookAdminUseCase = (*WebhookAdminUseCase)(nil)

func NewWebhookAdminUseCase(webhooks interfaces.IWebhookRepository, gifs interfaces.IGifRepository, chat interfaces.IChatNotifier, logs interfaces.IWebhookLogRepository) *WebhookAdminUseCase {
	return &WebhookAdminUseCase{webhooks: webhooks, gifs: gifs, chat: chat, logs: logs}
}

func (u *WebhookAdminUseCase) ListWebhooks(ctx context.Context) ([]entities.Webhook, error) {
	return u.webhooks.List(ctx)
}

func (u *WebhookAdminUseCase) CreateWebhook(ctx context.Context, name, rawURL string) (entities.Webhook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Webhook{}, ErrInvalidWebhookName
	}
	if !validHTTPURL(rawURL) {
		return entities.Webhook{}, ErrInvalidWebhookURL
	}

	now := time.Now().UTC()
	return u.webhooks.Create(ctx, entities.Webhook{
		ID:        uuid.NewString(),
		Name:      name,
		URL:       rawURL,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *WebhookAdminUseCase) UpdateWebhook(ctx context.Context, id string, patch WebhookPatch) (entities.Webhook, error) {
	hook, err := u.getWebhook(ctx, id)
	if err != nil {
		return entities.Webhook{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Webhook{}, ErrInvalidWebhookName
		}
		hook.Name = name
	}
	if patch.URL != nil {
		if !validHTTPURL(*patch.URL) {
			return entities.Webhook{}, ErrInvalidWebhookURL
		}
		hook.URL = *patch.URL
	}
	if patch.Enabled != nil {
		// Disabling counts toward the same guard as deleting: never leave
		// zero enabled destinations.
		if hook.Enabled && !*patch.Enabled {
			if err := u.guardEnabledFloor(ctx); err != nil {
				return entities.Webhook{}, err
			}
		}
		hook.Enabled = *patch.Enabled
	}

	hook.UpdatedAt = time.Now().UTC()
	return u.webhooks.Update(ctx, hook)
}

func (u *WebhookAdminUseCase) DeleteWebhook(ctx context.Context, id string) error {
	hook, err := u.getWebhook(ctx, id)
	if err != nil {
		return err
	}
	if hook.Enabled {
		if err := u.guardEnabledFloor(ctx); err != nil {
			return err
		}
	}
	return u.webhooks.Delete(ctx, id)
}

// TestWebhook sends a fixed verification message so an operator can
// re-verify delivery after a failure. The attempt is logged either way.
func (u *WebhookAdminUseCase) TestWebhook(ctx context.Context, id string) (int, error) {
	hook, err := u.getWebhook(ctx, id)
	if err != nil {
		return 0, err
	}

	status, sendErr := u.chat.Send(ctx, hook.URL, entities.ChatMessage{
		Text: "titansync test message: webhook delivery is working.",
	})

	entry := entities.WebhookLog{
		ID:         uuid.NewString(),
		WebhookID:  hook.ID,
		Kind:       entities.WebhookEventTest,
		StatusCode: status,
		Success:    sendErr == nil,
		SentAt:     time.Now().UTC(),
	}
	if sendErr != nil {
		entry.Error = sendErr.Error()
	}
	if err := u.logs.Append(ctx, entry); err != nil {
		return status, err
	}
	return status, sendErr
}

func (u *WebhookAdminUseCase) ListGifs(ctx context.Context) ([]entities.Gif, error) {
	return u.gifs.List(ctx)
}

func (u *WebhookAdminUseCase) AddGif(ctx context.Context, rawURL string) (entities.Gif, error) {
	if !validHTTPURL(rawURL) {
		return entities.Gif{}, ErrInvalidGifURL
	}
	return u.gifs.Create(ctx, entities.Gif{
		ID:        uuid.NewString(),
		URL:       rawURL,
		CreatedAt: time.Now().UTC(),
	})
}

func (u *WebhookAdminUseCase) DeleteGif(ctx context.Context, id string) error {
	count, err := u.gifs.Count(ctx)
	if err != nil {
		return err
	}
	if count <= MinGifsRemaining {
		return ErrMinGifCount
	}
	return u.gifs.Delete(ctx, id)
}

func (u *WebhookAdminUseCase) getWebhook(ctx context.Context, id string) (entities.Webhook, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Webhook{}, ErrWebhookNotFound
	}
	hook, err := u.webhooks.GetByID(ctx, id)
	if err != nil {
		return entities.Webhook{}, err
	}
	if hook.ID == "" {
		return entities.Webhook{}, ErrWebhookNotFound
	}
	return hook, nil
}

func (u *WebhookAdminUseCase) guardEnabledFloor(ctx context.Context) error {
	enabled, err := u.webhooks.CountEnabled(ctx)
	if err != nil {
		return err
	}
	if enabled <= 1 {
		return ErrLastEnabledWebhook
	}
	return nil
}

func validHTTPURL(raw string) bool {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
