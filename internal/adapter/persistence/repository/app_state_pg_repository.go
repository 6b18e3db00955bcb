package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"titansync/internal/usecase/interfaces"
)

const defaultAppStateTableName = "app_state"

// AppStatePgRepository is the key/value store behind runtime settings.
// Upsert key: key.
type AppStatePgRepository struct {
	db        *pgxpool.Pool
	tableName string
}

var _ interfaces.IAppStateRepository = (*AppStatePgRepository)(nil)

func NewAppStatePgRepository(db *pgxpool.Pool) *AppStatePgRepository {
	return &AppStatePgRepository{
		db:        db,
		tableName: getenvDefault("APP_STATE_TABLE", defaultAppStateTableName),
	}
}

func (r *AppStatePgRepository) Get(ctx context.Context, key string) (string, bool, error) {
	sql := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, r.tableName)

	var value string
	err := r.db.QueryRow(ctx, sql, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *AppStatePgRepository) Set(ctx context.Context, key, value string) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (key, value, updated_at)
		VALUES ($1,$2,now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`, r.tableName)

	_, err := r.db.Exec(ctx, sql, key, value)
	return err
}
