package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

var (
	ErrEmptyTGLMarker      = errors.New("tgl marker must not be empty")
	ErrInvalidThreshold    = errors.New("big sale threshold must be greater than zero")
	ErrInvalidPollInterval = errors.New("poll interval must be at least 1 second")
)

// SettingsPatch carries the fields of a PATCH request; nil means "leave
// unchanged".
type SettingsPatch struct {
	TGLMarker           *string
	BigSaleThreshold    *decimal.Decimal
	PollIntervalSeconds *int
	PollingEnabled      *bool
}

// ISettingsUseCase exposes the runtime settings stored in app_state plus
// the recent-run view the polling status endpoint serves.
type ISettingsUseCase interface {
	Load(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, patch SettingsPatch) (entities.Settings, error)
	RecentRuns(ctx context.Context, limit int) ([]entities.PollLog, error)
}

// SettingsUseCase reads and writes the app_state key/value table. Absent
// keys fall back to the defaults; writes are validated here so an empty
// TGL marker can never reach the classifier.
type SettingsUseCase struct {
	state    interfaces.IAppStateRepository
	pollLogs interfaces.IPollLogRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(state interfaces.IAppStateRepository, pollLogs interfaces.IPollLogRepository) *SettingsUseCase {
	return &SettingsUseCase{state: state, pollLogs: pollLogs}
}

const defaultRecentRunLimit = 20

func (u *SettingsUseCase) RecentRuns(ctx context.Context, limit int) ([]entities.PollLog, error) {
	if limit <= 0 {
		limit = defaultRecentRunLimit
	}
	return u.pollLogs.ListRecent(ctx, limit)
}

func (u *SettingsUseCase) Load(ctx context.Context) (entities.Settings, error) {
	s := entities.DefaultSettings()

	if v, ok, err := u.state.Get(ctx, entities.StateKeyTGLMarker); err != nil {
		return entities.Settings{}, err
	} else if ok {
		s.TGLMarker = v
	}

	if v, ok, err := u.state.Get(ctx, entities.StateKeyBigSaleThreshold); err != nil {
		return entities.Settings{}, err
	} else if ok {
		threshold, err := decimal.NewFromString(v)
		if err != nil {
			return entities.Settings{}, fmt.Errorf("app_state %s: %w", entities.StateKeyBigSaleThreshold, err)
		}
		s.BigSaleThreshold = threshold
	}

	if v, ok, err := u.state.Get(ctx, entities.StateKeyPollIntervalSeconds); err != nil {
		return entities.Settings{}, err
	} else if ok {
		interval, err := strconv.Atoi(v)
		if err != nil {
			return entities.Settings{}, fmt.Errorf("app_state %s: %w", entities.StateKeyPollIntervalSeconds, err)
		}
		s.PollIntervalSeconds = interval
	}

	if v, ok, err := u.state.Get(ctx, entities.StateKeyPollingEnabled); err != nil {
		return entities.Settings{}, err
	} else if ok {
		s.PollingEnabled = v == "true"
	}

	return s, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, patch SettingsPatch) (entities.Settings, error) {
	if patch.TGLMarker != nil {
		marker := strings.TrimSpace(*patch.TGLMarker)
		if marker == "" {
			return entities.Settings{}, ErrEmptyTGLMarker
		}
		if err := u.state.Set(ctx, entities.StateKeyTGLMarker, marker); err != nil {
			return entities.Settings{}, err
		}
	}

	if patch.BigSaleThreshold != nil {
		if !patch.BigSaleThreshold.GreaterThan(decimal.Zero) {
			return entities.Settings{}, ErrInvalidThreshold
		}
		if err := u.state.Set(ctx, entities.StateKeyBigSaleThreshold, patch.BigSaleThreshold.String()); err != nil {
			return entities.Settings{}, err
		}
	}

	if patch.PollIntervalSeconds != nil {
		if *patch.PollIntervalSeconds < 1 {
			return entities.Settings{}, ErrInvalidPollInterval
		}
		if err := u.state.Set(ctx, entities.StateKeyPollIntervalSeconds, strconv.Itoa(*patch.PollIntervalSeconds)); err != nil {
			return entities.Settings{}, err
		}
	}

	if patch.PollingEnabled != nil {
		if err := u.state.Set(ctx, entities.StateKeyPollingEnabled, strconv.FormatBool(*patch.PollingEnabled)); err != nil {
			return entities.Settings{}, err
		}
	}

	return u.Load(ctx)
}
