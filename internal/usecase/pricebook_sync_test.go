package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"titansync/internal/domain/entities"
	mock_interfaces "titansync/internal/usecase/interfaces/mocks"
)

func TestPricebookSyncUseCase_Run(t *testing.T) {
	t.Run("syncs all item types and refreshes the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricebookSource(ctrl)
		repo := mock_interfaces.NewMockIPricebookRepository(ctrl)
		uc := NewPricebookSyncUseCase(source, repo, NewClassificationCache(repo, time.Hour))

		for _, itemType := range []entities.PricebookItemType{
			entities.PricebookItemMaterial,
			entities.PricebookItemEquipment,
			entities.PricebookItemService,
		} {
			it := itemType
			source.EXPECT().ListPricebook(gomock.Any(), it, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ entities.PricebookItemType, yield func(entities.PricebookItem) error) error {
					return yield(entities.PricebookItem{SKUID: 1, Type: it})
				})
		}
		repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		// Cache refresh at the end.
		repo.EXPECT().ListPage(gomock.Any(), gomock.Any(), 0).Return(nil, nil)

		n, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 3 {
			t.Fatalf("expected 3 items synced, got %d", n)
		}
	})

	t.Run("flushes full batches mid-type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricebookSource(ctrl)
		repo := mock_interfaces.NewMockIPricebookRepository(ctrl)
		uc := NewPricebookSyncUseCase(source, repo, NewClassificationCache(repo, time.Hour))

		source.EXPECT().ListPricebook(gomock.Any(), entities.PricebookItemMaterial, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.PricebookItemType, yield func(entities.PricebookItem) error) error {
				for i := 0; i < pricebookUpsertBatchSize+1; i++ {
					if err := yield(entities.PricebookItem{SKUID: int64(i + 1)}); err != nil {
						return err
					}
				}
				return nil
			})
		source.EXPECT().ListPricebook(gomock.Any(), entities.PricebookItemEquipment, gomock.Any()).Return(nil)
		source.EXPECT().ListPricebook(gomock.Any(), entities.PricebookItemService, gomock.Any()).Return(nil)

		gomock.InOrder(
			repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(pricebookUpsertBatchSize)).Return(nil),
			repo.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(1)).Return(nil),
		)
		repo.EXPECT().ListPage(gomock.Any(), gomock.Any(), 0).Return(nil, nil)

		n, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != pricebookUpsertBatchSize+1 {
			t.Fatalf("expected %d items synced, got %d", pricebookUpsertBatchSize+1, n)
		}
	})

	t.Run("upstream failure aborts but reports partial progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricebookSource(ctrl)
		repo := mock_interfaces.NewMockIPricebookRepository(ctrl)
		uc := NewPricebookSyncUseCase(source, repo, NewClassificationCache(repo, time.Hour))

		source.EXPECT().ListPricebook(gomock.Any(), entities.PricebookItemMaterial, gomock.Any()).Return(errors.New("429"))

		if _, err := uc.Run(context.Background()); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestMaintenanceUseCase_ClearTestData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
	uc := NewMaintenanceUseCase(repo)

	want := map[string]int64{"estimates": 12, "poll_logs": 3, "webhook_logs": 5}
	repo.EXPECT().ClearTestData(gomock.Any()).Return(want, nil)

	got, err := uc.ClearTestData(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["estimates"] != 12 || got["poll_logs"] != 3 || got["webhook_logs"] != 5 {
		t.Fatalf("unexpected counts: %v", got)
	}
}
