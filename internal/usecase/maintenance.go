package usecase

import (
	"context"
	"log"

	"titansync/internal/usecase/interfaces"
)

// IMaintenanceUseCase exposes destructive operator actions.
type IMaintenanceUseCase interface {
	ClearTestData(ctx context.Context) (map[string]int64, error)
}

// MaintenanceUseCase fronts the clear-test-data operation. The scope is
// fixed in the repository: ingested data only, configuration tables
// untouched.
type MaintenanceUseCase struct {
	repo interfaces.IMaintenanceRepository
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(repo interfaces.IMaintenanceRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo}
}

func (u *MaintenanceUseCase) ClearTestData(ctx context.Context) (map[string]int64, error) {
	deleted, err := u.repo.ClearTestData(ctx)
	if err != nil {
		return nil, err
	}
	for table, n := range deleted {
		log.Printf("[maintenance] cleared %d rows from %s", n, table)
	}
	return deleted, nil
}
