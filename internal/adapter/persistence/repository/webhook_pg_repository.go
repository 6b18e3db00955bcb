package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

const (
	defaultWebhooksTableName    = "webhooks"
	defaultGifsTableName        = "gifs"
	defaultWebhookLogsTableName = "webhook_logs"
)

// WebhookPgRepository persists webhook destinations. PK: id (uuid).
type WebhookPgRepository struct {
	db        *pgxpool.Pool
	tableName string
}

var _ interfaces.IWebhookRepository = (*WebhookPgRepository)(nil)

func NewWebhookPgRepository(db *pgxpool.Pool) *WebhookPgRepository {
	return &WebhookPgRepository{
		db:        db,
		tableName: getenvDefault("WEBHOOKS_TABLE", defaultWebhooksTableName),
	}
}

func (r *WebhookPgRepository) List(ctx context.Context) ([]entities.Webhook, error) {
	return r.list(ctx, fmt.Sprintf(`SELECT id, name, url, enabled, created_at, updated_at FROM %s ORDER BY created_at`, r.tableName))
}

func (r *WebhookPgRepository) ListEnabled(ctx context.Context) ([]entities.Webhook, error) {
	return r.list(ctx, fmt.Sprintf(`SELECT id, name, url, enabled, created_at, updated_at FROM %s WHERE enabled ORDER BY created_at`, r.tableName))
}

func (r *WebhookPgRepository) list(ctx context.Context, sql string) ([]entities.Webhook, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Webhook
	for rows.Next() {
		var w entities.Webhook
		if err := rows.Scan(&w.ID, &w.Name, &w.URL, &w.Enabled, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WebhookPgRepository) GetByID(ctx context.Context, id string) (entities.Webhook, error) {
	sql := fmt.Sprintf(`SELECT id, name, url, enabled, created_at, updated_at FROM %s WHERE id = $1`, r.tableName)

	var w entities.Webhook
	err := r.db.QueryRow(ctx, sql, id).Scan(&w.ID, &w.Name, &w.URL, &w.Enabled, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Webhook{}, nil
	}
	if err != nil {
		return entities.Webhook{}, err
	}
	return w, nil
}

func (r *WebhookPgRepository) Create(ctx context.Context, w entities.Webhook) (entities.Webhook, error) {
	sql := fmt.Sprintf(`
		INSERT INTO %s (id, name, url, enabled, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`, r.tableName)

	_, err := r.db.Exec(ctx, sql, w.ID, w.Name, w.URL, w.Enabled, w.CreatedAt.UTC(), w.UpdatedAt.UTC())
	if err != nil {
		return entities.Webhook{}, err
	}
	return w, nil
}

func (r *WebhookPgRepository) Update(ctx context.Context, w entities.Webhook) (entities.Webhook, error) {
	sql := fmt.Sprintf(`
		UPDATE %s SET name = $2, url = $3, enabled = $4, updated_at = $5
		WHERE id = $1`, r.tableName)

	tag, err := r.db.Exec(ctx, sql, w.ID, w.Name, w.URL, w.Enabled, w.UpdatedAt.UTC())
	if err != nil {
		return entities.Webhook{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Webhook{}, nil
	}
	return w, nil
}

func (r *WebhookPgRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tableName), id)
	return err
}

func (r *WebhookPgRepository) CountEnabled(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT count(*) FROM %s WHERE enabled`, r.tableName)).Scan(&count)
	return count, err
}

// GifPgRepository persists the celebration gif pool. PK: id (uuid).
type GifPgRepository struct {
	db        *pgxpool.Pool
	tableName string
}

var _ interfaces.IGifRepository = (*GifPgRepository)(nil)

func NewGifPgRepository(db *pgxpool.Pool) *GifPgRepository {
	return &GifPgRepository{
		db:        db,
		tableName: getenvDefault("GIFS_TABLE", defaultGifsTableName),
	}
}

func (r *GifPgRepository) List(ctx context.Context) ([]entities.Gif, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT id, url, created_at FROM %s ORDER BY created_at`, r.tableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Gif
	for rows.Next() {
		var g entities.Gif
		if err := rows.Scan(&g.ID, &g.URL, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *GifPgRepository) Create(ctx context.Context, g entities.Gif) (entities.Gif, error) {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (id, url, created_at) VALUES ($1,$2,$3)`, r.tableName),
		g.ID, g.URL, g.CreatedAt.UTC())
	if err != nil {
		return entities.Gif{}, err
	}
	return g, nil
}

func (r *GifPgRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tableName), id)
	return err
}

func (r *GifPgRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT count(*) FROM %s`, r.tableName)).Scan(&count)
	return count, err
}

// WebhookLogPgRepository is append-only delivery logging.
type WebhookLogPgRepository struct {
	db        *pgxpool.Pool
	tableName string
}

var _ interfaces.IWebhookLogRepository = (*WebhookLogPgRepository)(nil)

func NewWebhookLogPgRepository(db *pgxpool.Pool) *WebhookLogPgRepository {
	return &WebhookLogPgRepository{
		db:        db,
		tableName: getenvDefault("WEBHOOK_LOGS_TABLE", defaultWebhookLogsTableName),
	}
}

func (r *WebhookLogPgRepository) Append(ctx context.Context, l entities.WebhookLog) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (id, webhook_id, estimate_external_id, kind, status_code, success, error, sent_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`, r.tableName)

	_, err := r.db.Exec(ctx, sql,
		l.ID, l.WebhookID, l.EstimateExternalID, string(l.Kind), l.StatusCode, l.Success, l.Error, l.SentAt.UTC())
	return err
}
