package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

const defaultPollLogsTableName = "poll_logs"

// PollLogPgRepository stores one row per ingestion run, appended at start
// and updated (by run_id) as the run progresses.
type PollLogPgRepository struct {
	db        *pgxpool.Pool
	tableName string
}

var _ interfaces.IPollLogRepository = (*PollLogPgRepository)(nil)

func NewPollLogPgRepository(db *pgxpool.Pool) *PollLogPgRepository {
	return &PollLogPgRepository{
		db:        db,
		tableName: getenvDefault("POLL_LOGS_TABLE", defaultPollLogsTableName),
	}
}

func (r *PollLogPgRepository) Append(ctx context.Context, l entities.PollLog) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (id, run_id, source, window_from, window_to, state,
		                processed, inserted, updated, errored, message, started_at, finished_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`, r.tableName)

	_, err := r.db.Exec(ctx, sql,
		l.ID, l.RunID, string(l.Source), l.WindowFrom.UTC(), l.WindowTo.UTC(), string(l.State),
		l.Processed, l.Inserted, l.Updated, l.Errored, l.Message, l.StartedAt.UTC(), nullableTime(l.FinishedAt))
	return err
}

func (r *PollLogPgRepository) Update(ctx context.Context, l entities.PollLog) error {
	sql := fmt.Sprintf(`
		UPDATE %s SET state = $2, processed = $3, inserted = $4, updated = $5,
		              errored = $6, message = $7, finished_at = $8
		WHERE run_id = $1`, r.tableName)

	_, err := r.db.Exec(ctx, sql,
		l.RunID, string(l.State), l.Processed, l.Inserted, l.Updated, l.Errored, l.Message, nullableTime(l.FinishedAt))
	return err
}

func (r *PollLogPgRepository) ListRecent(ctx context.Context, limit int) ([]entities.PollLog, error) {
	sql := fmt.Sprintf(`
		SELECT id, run_id, source, window_from, window_to, state,
		       processed, inserted, updated, errored, message, started_at, COALESCE(finished_at, 'epoch')
		FROM %s ORDER BY started_at DESC LIMIT $1`, r.tableName)

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.PollLog
	for rows.Next() {
		var (
			l      entities.PollLog
			source string
			state  string
		)
		if err := rows.Scan(&l.ID, &l.RunID, &source, &l.WindowFrom, &l.WindowTo, &state,
			&l.Processed, &l.Inserted, &l.Updated, &l.Errored, &l.Message, &l.StartedAt, &l.FinishedAt); err != nil {
			return nil, err
		}
		l.Source = entities.IngestSource(source)
		l.State = entities.BatchState(state)
		out = append(out, l)
	}
	return out, rows.Err()
}
