package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

const defaultSalespeopleTableName = "salespeople"

// SalespeoplePgRepository keeps the denormalized technician directory.
// Upsert key: technician_id.
type SalespeoplePgRepository struct {
	db        *pgxpool.Pool
	tableName string
}

var _ interfaces.ISalespeopleRepository = (*SalespeoplePgRepository)(nil)

func NewSalespeoplePgRepository(db *pgxpool.Pool) *SalespeoplePgRepository {
	return &SalespeoplePgRepository{
		db:        db,
		tableName: getenvDefault("SALESPEOPLE_TABLE", defaultSalespeopleTableName),
	}
}

func (r *SalespeoplePgRepository) Upsert(ctx context.Context, sp entities.Salesperson) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (technician_id, name, active, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (technician_id) DO UPDATE SET
			name = EXCLUDED.name,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`, r.tableName)

	_, err := r.db.Exec(ctx, sql, sp.TechnicianID, sp.Name, sp.Active, sp.UpdatedAt.UTC())
	return err
}
