package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"titansync/internal/domain/entities"
	mock_interfaces "titansync/internal/usecase/interfaces/mocks"
)

func TestSettingsUseCase_Load(t *testing.T) {
	t.Run("absent keys fall back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		state := mock_interfaces.NewMockIAppStateRepository(ctrl)
		uc := NewSettingsUseCase(state, nil)

		state.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, nil).Times(4)

		got, err := uc.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TGLMarker != entities.DefaultTGLMarker {
			t.Fatalf("expected default marker, got %q", got.TGLMarker)
		}
		if !got.BigSaleThreshold.Equal(decimal.NewFromInt(700)) {
			t.Fatalf("expected default threshold 700, got %s", got.BigSaleThreshold)
		}
		if got.PollIntervalSeconds != entities.DefaultPollIntervalSeconds {
			t.Fatalf("expected default interval, got %d", got.PollIntervalSeconds)
		}
		if !got.PollingEnabled {
			t.Fatalf("expected polling enabled by default")
		}
	})

	t.Run("stored values win over defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		state := mock_interfaces.NewMockIAppStateRepository(ctrl)
		uc := NewSettingsUseCase(state, nil)

		state.EXPECT().Get(gomock.Any(), entities.StateKeyTGLMarker).Return("Option D - Premium", true, nil)
		state.EXPECT().Get(gomock.Any(), entities.StateKeyBigSaleThreshold).Return("12500.50", true, nil)
		state.EXPECT().Get(gomock.Any(), entities.StateKeyPollIntervalSeconds).Return("60", true, nil)
		state.EXPECT().Get(gomock.Any(), entities.StateKeyPollingEnabled).Return("false", true, nil)

		got, err := uc.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TGLMarker != "Option D - Premium" {
			t.Fatalf("expected stored marker, got %q", got.TGLMarker)
		}
		if !got.BigSaleThreshold.Equal(decimal.RequireFromString("12500.50")) {
			t.Fatalf("expected stored threshold, got %s", got.BigSaleThreshold)
		}
		if got.PollIntervalSeconds != 60 {
			t.Fatalf("expected stored interval 60, got %d", got.PollIntervalSeconds)
		}
		if got.PollingEnabled {
			t.Fatalf("expected polling disabled")
		}
	})

	t.Run("storage error aborts the load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		state := mock_interfaces.NewMockIAppStateRepository(ctrl)
		uc := NewSettingsUseCase(state, nil)

		state.EXPECT().Get(gomock.Any(), entities.StateKeyTGLMarker).Return("", false, errors.New("db down"))

		if _, err := uc.Load(context.Background()); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestSettingsUseCase_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }

	t.Run("empty marker is rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		state := mock_interfaces.NewMockIAppStateRepository(ctrl)
		uc := NewSettingsUseCase(state, nil)

		_, err := uc.Update(context.Background(), SettingsPatch{TGLMarker: strPtr("   ")})
		if !errors.Is(err, ErrEmptyTGLMarker) {
			t.Fatalf("expected ErrEmptyTGLMarker, got %v", err)
		}
	})

	t.Run("marker is trimmed before storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		state := mock_interfaces.NewMockIAppStateRepository(ctrl)
		uc := NewSettingsUseCase(state, nil)

		state.EXPECT().Set(gomock.Any(), entities.StateKeyTGLMarker, "Option C - System Update").Return(nil)
		state.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, nil).Times(4)

		if _, err := uc.Update(context.Background(), SettingsPatch{TGLMarker: strPtr("  Option C - System Update  ")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-positive threshold is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		state := mock_interfaces.NewMockIAppStateRepository(ctrl)
		uc := NewSettingsUseCase(state, nil)

		zero := decimal.Zero
		_, err := uc.Update(context.Background(), SettingsPatch{BigSaleThreshold: &zero})
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("expected ErrInvalidThreshold, got %v", err)
		}
	})

	t.Run("poll interval below one second is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		state := mock_interfaces.NewMockIAppStateRepository(ctrl)
		uc := NewSettingsUseCase(state, nil)

		_, err := uc.Update(context.Background(), SettingsPatch{PollIntervalSeconds: intPtr(0)})
		if !errors.Is(err, ErrInvalidPollInterval) {
			t.Fatalf("expected ErrInvalidPollInterval, got %v", err)
		}
	})

	t.Run("valid patch writes each field and reloads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		state := mock_interfaces.NewMockIAppStateRepository(ctrl)
		uc := NewSettingsUseCase(state, nil)

		threshold := decimal.RequireFromString("15000")
		enabled := false

		state.EXPECT().Set(gomock.Any(), entities.StateKeyBigSaleThreshold, "15000").Return(nil)
		state.EXPECT().Set(gomock.Any(), entities.StateKeyPollIntervalSeconds, "120").Return(nil)
		state.EXPECT().Set(gomock.Any(), entities.StateKeyPollingEnabled, "false").Return(nil)

		state.EXPECT().Get(gomock.Any(), entities.StateKeyTGLMarker).Return("", false, nil)
		state.EXPECT().Get(gomock.Any(), entities.StateKeyBigSaleThreshold).Return("15000", true, nil)
		state.EXPECT().Get(gomock.Any(), entities.StateKeyPollIntervalSeconds).Return("120", true, nil)
		state.EXPECT().Get(gomock.Any(), entities.StateKeyPollingEnabled).Return("false", true, nil)

		got, err := uc.Update(context.Background(), SettingsPatch{
			BigSaleThreshold:    &threshold,
			PollIntervalSeconds: intPtr(120),
			PollingEnabled:      &enabled,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.BigSaleThreshold.Equal(threshold) {
			t.Fatalf("expected reloaded threshold 15000, got %s", got.BigSaleThreshold)
		}
		if got.PollIntervalSeconds != 120 || got.PollingEnabled {
			t.Fatalf("expected reloaded interval 120 / disabled, got %+v", got)
		}
	})
}

func TestSettingsUseCase_RecentRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	state := mock_interfaces.NewMockIAppStateRepository(ctrl)
	pollLogs := mock_interfaces.NewMockIPollLogRepository(ctrl)
	uc := NewSettingsUseCase(state, pollLogs)

	pollLogs.EXPECT().ListRecent(gomock.Any(), defaultRecentRunLimit).Return([]entities.PollLog{{RunID: "r1"}}, nil)

	runs, err := uc.RecentRuns(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != "r1" {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}
