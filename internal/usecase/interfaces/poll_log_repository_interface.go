package interfaces

import (
	"context"

	"titansync/internal/domain/entities"
)

// IPollLogRepository is append-then-update logging for ingestion runs: one
// row is appended when a run starts and updated (by run id) as it
// progresses and finishes.
type IPollLogRepository interface {
	Append(ctx context.Context, l entities.PollLog) error
	Update(ctx context.Context, l entities.PollLog) error
	ListRecent(ctx context.Context, limit int) ([]entities.PollLog, error)
}

// IMaintenanceRepository hosts destructive operator actions. ClearTestData
// truncates ingested-data tables only (estimates, poll_logs, webhook_logs);
// configuration tables (app_state, webhooks, gifs, pricebook_items) are
// preserved. Returns rows deleted per table.
type IMaintenanceRepository interface {
	ClearTestData(ctx context.Context) (map[string]int64, error)
}
