package request

import (
	"errors"

	"github.com/shopspring/decimal"

	"titansync/internal/usecase"
)

var ErrInvalidThresholdValue = errors.New("invalid threshold value")

// SettingsRequest is the PATCH /settings payload. Omitted fields are left
// unchanged; the threshold travels as a string so currency precision is
// never rounded through a float.
type SettingsRequest struct {
	TGLMarker           *string `json:"tgl_marker"`
	BigSaleThreshold    *string `json:"big_sale_threshold"`
	PollIntervalSeconds *int    `json:"poll_interval_seconds"`
	PollingEnabled      *bool   `json:"polling_enabled"`
}

func (r SettingsRequest) ToPatch() (usecase.SettingsPatch, error) {
	patch := usecase.SettingsPatch{
		TGLMarker:           r.TGLMarker,
		PollIntervalSeconds: r.PollIntervalSeconds,
		PollingEnabled:      r.PollingEnabled,
	}
	if r.BigSaleThreshold != nil {
		threshold, err := decimal.NewFromString(*r.BigSaleThreshold)
		if err != nil {
			return usecase.SettingsPatch{}, ErrInvalidThresholdValue
		}
		patch.BigSaleThreshold = &threshold
	}
	return patch, nil
}

// PollingRequest is the PATCH /polling payload.
type PollingRequest struct {
	Enabled         *bool `json:"enabled"`
	IntervalSeconds *int  `json:"interval_seconds"`
}

func (r PollingRequest) ToPatch() usecase.SettingsPatch {
	return usecase.SettingsPatch{
		PollingEnabled:      r.Enabled,
		PollIntervalSeconds: r.IntervalSeconds,
	}
}
