package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

const defaultEstimatesTableName = "estimates"

// EstimatePgRepository persists sold estimates in Postgres.
//
// Table requirements:
//   - UNIQUE (external_id) — the natural key every upsert targets
//   - attribution/raw are JSONB; water/air flags and amounts are
//     denormalized columns maintained on every write
//
// `(xmax = 0)` after the upsert distinguishes insert from update, which the
// pipeline reports in its run summary.
type EstimatePgRepository struct {
	db        *pgxpool.Pool
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimatePgRepository)(nil)

func NewEstimatePgRepository(db *pgxpool.Pool) *EstimatePgRepository {
	return &EstimatePgRepository{
		db:        db,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimatePgRepository) Upsert(ctx context.Context, rec entities.SoldEstimate) (bool, error) {
	attribution, err := json.Marshal(rec.Attribution)
	if err != nil {
		return false, err
	}

	raw := rec.Raw
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s (
			external_id, name, sold_on, subtotal,
			salesperson_id, salesperson_name, customer_id, customer_name,
			is_tgl, is_big_sale,
			has_water_quality, water_quality_amount,
			has_air_quality, air_quality_amount,
			attribution, raw, source, processed_at,
			created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,now(),now())
		ON CONFLICT (external_id) DO UPDATE SET
			name = EXCLUDED.name,
			sold_on = EXCLUDED.sold_on,
			subtotal = EXCLUDED.subtotal,
			salesperson_id = EXCLUDED.salesperson_id,
			salesperson_name = EXCLUDED.salesperson_name,
			customer_id = EXCLUDED.customer_id,
			customer_name = EXCLUDED.customer_name,
			is_tgl = EXCLUDED.is_tgl,
			is_big_sale = EXCLUDED.is_big_sale,
			has_water_quality = EXCLUDED.has_water_quality,
			water_quality_amount = EXCLUDED.water_quality_amount,
			has_air_quality = EXCLUDED.has_air_quality,
			air_quality_amount = EXCLUDED.air_quality_amount,
			attribution = EXCLUDED.attribution,
			raw = EXCLUDED.raw,
			source = EXCLUDED.source,
			processed_at = EXCLUDED.processed_at,
			updated_at = now()
		RETURNING (xmax = 0)`, r.tableName)

	var inserted bool
	err = r.db.QueryRow(ctx, sql,
		rec.ExternalID, rec.Name, rec.SoldOn.UTC(), rec.Subtotal,
		rec.SalespersonID, rec.SalespersonName, rec.CustomerID, rec.CustomerName,
		rec.IsTGL, rec.IsBigSale,
		rec.Attribution.Has(entities.CategoryWaterQuality), rec.Attribution.Amount(entities.CategoryWaterQuality),
		rec.Attribution.Has(entities.CategoryAirQuality), rec.Attribution.Amount(entities.CategoryAirQuality),
		attribution, []byte(raw), string(rec.Source), rec.ProcessedAt.UTC(),
	).Scan(&inserted)
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (r *EstimatePgRepository) GetByExternalID(ctx context.Context, externalID int64) (entities.SoldEstimate, error) {
	sql := fmt.Sprintf(`
		SELECT external_id, name, sold_on, subtotal,
		       salesperson_id, salesperson_name, customer_id, customer_name,
		       is_tgl, is_big_sale, attribution, raw, source, processed_at,
		       created_at, updated_at
		FROM %s WHERE external_id = $1`, r.tableName)

	rec, err := scanSoldEstimate(r.db.QueryRow(ctx, sql, externalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.SoldEstimate{}, nil
	}
	return rec, err
}

func (r *EstimatePgRepository) ListSoldBetween(ctx context.Context, from, to time.Time) ([]entities.SoldEstimate, error) {
	sql := fmt.Sprintf(`
		SELECT external_id, name, sold_on, subtotal,
		       salesperson_id, salesperson_name, customer_id, customer_name,
		       is_tgl, is_big_sale, attribution, raw, source, processed_at,
		       created_at, updated_at
		FROM %s
		WHERE sold_on >= $1 AND sold_on <= $2
		ORDER BY sold_on`, r.tableName)

	rows, err := r.db.Query(ctx, sql, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.SoldEstimate
	for rows.Next() {
		rec, err := scanSoldEstimate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanSoldEstimate(row pgx.Row) (entities.SoldEstimate, error) {
	var (
		rec         entities.SoldEstimate
		attribution []byte
		raw         []byte
		source      string
	)
	err := row.Scan(
		&rec.ExternalID, &rec.Name, &rec.SoldOn, &rec.Subtotal,
		&rec.SalespersonID, &rec.SalespersonName, &rec.CustomerID, &rec.CustomerName,
		&rec.IsTGL, &rec.IsBigSale, &attribution, &raw, &source, &rec.ProcessedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return entities.SoldEstimate{}, err
	}
	if len(attribution) > 0 {
		if err := json.Unmarshal(attribution, &rec.Attribution); err != nil {
			return entities.SoldEstimate{}, err
		}
	}
	rec.Raw = json.RawMessage(raw)
	rec.Source = entities.IngestSource(source)
	return rec, nil
}
