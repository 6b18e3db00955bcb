package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"titansync/internal/usecase/interfaces"
)

// MaintenancePgRepository implements the destructive clear-test-data
// operation. Scope is fixed: ingested-data tables only. Configuration
// tables (app_state, webhooks, gifs, pricebook_items, salespeople) are
// deliberately not touched.
type MaintenancePgRepository struct {
	db     *pgxpool.Pool
	tables []string
}

var _ interfaces.IMaintenanceRepository = (*MaintenancePgRepository)(nil)

func NewMaintenancePgRepository(db *pgxpool.Pool) *MaintenancePgRepository {
	return &MaintenancePgRepository{
		db: db,
		tables: []string{
			getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
			getenvDefault("POLL_LOGS_TABLE", defaultPollLogsTableName),
			getenvDefault("WEBHOOK_LOGS_TABLE", defaultWebhookLogsTableName),
		},
	}
}

func (r *MaintenancePgRepository) ClearTestData(ctx context.Context) (map[string]int64, error) {
	deleted := make(map[string]int64, len(r.tables))
	for _, table := range r.tables {
		tag, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, table))
		if err != nil {
			return deleted, fmt.Errorf("clear %s: %w", table, err)
		}
		deleted[table] = tag.RowsAffected()
	}
	return deleted, nil
}
