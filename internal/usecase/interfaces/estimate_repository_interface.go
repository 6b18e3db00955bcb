package interfaces

import (
	"context"
	"time"

	"titansync/internal/domain/entities"
)

// IEstimateRepository abstracts Postgres persistence for sold estimates.
//
// Upsert is keyed by the external estimate id, which makes every ingestion
// run idempotent: re-running over the same window is a no-op for unchanged
// estimates and a correction for changed ones.
//
// A zero-valued SoldEstimate (ExternalID == 0) means "not found".
type IEstimateRepository interface {
	Upsert(ctx context.Context, rec entities.SoldEstimate) (inserted bool, err error)
	GetByExternalID(ctx context.Context, externalID int64) (entities.SoldEstimate, error)
	ListSoldBetween(ctx context.Context, from, to time.Time) ([]entities.SoldEstimate, error)
}
