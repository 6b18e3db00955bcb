package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

const defaultSendTimeout = 10 * time.Second

// GoogleChatNotifier posts messages to Google Chat incoming-webhook URLs.
// A plain message uses {"text": ...}; celebration messages use the cardsV2
// format with an image widget. Non-2xx responses are delivery failures;
// nothing is retried automatically.
type GoogleChatNotifier struct {
	http *http.Client
}

var _ interfaces.IChatNotifier = (*GoogleChatNotifier)(nil)

func NewGoogleChatNotifier() *GoogleChatNotifier {
	return &GoogleChatNotifier{http: &http.Client{Timeout: defaultSendTimeout}}
}

func (n *GoogleChatNotifier) Send(ctx context.Context, webhookURL string, msg entities.ChatMessage) (int, error) {
	payload, err := json.Marshal(buildPayload(msg))
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := n.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("chat webhook: status %d", resp.StatusCode)
	}
	log.Printf("[chat][notifier] delivered status=%d", resp.StatusCode)
	return resp.StatusCode, nil
}

func buildPayload(msg entities.ChatMessage) map[string]any {
	if msg.Text != "" {
		return map[string]any{"text": msg.Text}
	}

	card := map[string]any{
		"header": map[string]any{
			"title":    msg.CardTitle,
			"subtitle": msg.CardSubtitle,
		},
	}
	if msg.CardImageURL != "" {
		card["sections"] = []any{
			map[string]any{
				"widgets": []any{
					map[string]any{
						"image": map[string]any{"imageUrl": msg.CardImageURL},
					},
				},
			},
		}
	}

	return map[string]any{
		"cardsV2": []any{
			map[string]any{
				"cardId": uuid.NewString(),
				"card":   card,
			},
		},
	}
}
