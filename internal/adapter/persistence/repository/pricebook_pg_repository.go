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

const defaultPricebookTableName = "pricebook_items"

// PricebookPgRepository persists pricebook SKUs.
//
// Table requirements:
//   - UNIQUE (sku_id)
//   - cross_sale_group nullable; NULL reads back as "" (uncategorized)
type PricebookPgRepository struct {
	db        *pgxpool.Pool
	tableName string
}

var _ interfaces.IPricebookRepository = (*PricebookPgRepository)(nil)

func NewPricebookPgRepository(db *pgxpool.Pool) *PricebookPgRepository {
	return &PricebookPgRepository{
		db:        db,
		tableName: getenvDefault("PRICEBOOK_TABLE", defaultPricebookTableName),
	}
}

func (r *PricebookPgRepository) UpsertBatch(ctx context.Context, items []entities.PricebookItem) error {
	if len(items) == 0 {
		return nil
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s (sku_id, code, display_name, item_type, cross_sale_group, active, updated_at)
		VALUES ($1,$2,$3,$4,NULLIF($5,''),$6,$7)
		ON CONFLICT (sku_id) DO UPDATE SET
			code = EXCLUDED.code,
			display_name = EXCLUDED.display_name,
			item_type = EXCLUDED.item_type,
			cross_sale_group = EXCLUDED.cross_sale_group,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`, r.tableName)

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(sql, it.SKUID, it.Code, it.DisplayName, string(it.Type), it.CrossSaleGroup, it.Active, it.UpdatedAt.UTC())
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return results.Close()
}

func (r *PricebookPgRepository) GetBySKU(ctx context.Context, skuID int64) (entities.PricebookItem, error) {
	sql := fmt.Sprintf(`
		SELECT sku_id, code, display_name, item_type, COALESCE(cross_sale_group, ''), active, updated_at
		FROM %s WHERE sku_id = $1`, r.tableName)

	item, err := scanPricebookItem(r.db.QueryRow(ctx, sql, skuID))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.PricebookItem{}, nil
	}
	return item, err
}

func (r *PricebookPgRepository) ListPage(ctx context.Context, limit, offset int) ([]entities.PricebookItem, error) {
	sql := fmt.Sprintf(`
		SELECT sku_id, code, display_name, item_type, COALESCE(cross_sale_group, ''), active, updated_at
		FROM %s ORDER BY sku_id LIMIT $1 OFFSET $2`, r.tableName)

	rows, err := r.db.Query(ctx, sql, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.PricebookItem
	for rows.Next() {
		item, err := scanPricebookItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func scanPricebookItem(row pgx.Row) (entities.PricebookItem, error) {
	var (
		item     entities.PricebookItem
		itemType string
	)
	err := row.Scan(&item.SKUID, &item.Code, &item.DisplayName, &itemType, &item.CrossSaleGroup, &item.Active, &item.UpdatedAt)
	if err != nil {
		return entities.PricebookItem{}, err
	}
	item.Type = entities.PricebookItemType(itemType)
	return item, nil
}
