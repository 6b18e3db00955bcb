package entities

import "github.com/shopspring/decimal"

// app_state keys. The table is a plain key/value store; Settings is the
// typed view every classification pass reads.
const (
	StateKeyTGLMarker           = "tgl_marker"
	StateKeyBigSaleThreshold    = "big_sale_threshold"
	StateKeyPollIntervalSeconds = "poll_interval_seconds"
	StateKeyPollingEnabled      = "polling_enabled"
)

// Defaults applied when a key is absent from app_state.
const (
	DefaultTGLMarker           = "Option C - System Update"
	DefaultBigSaleThreshold    = "700"
	DefaultPollIntervalSeconds = 300
	DefaultPollingEnabled      = true
)

// Settings is the process-wide runtime configuration read from app_state.
//
// The stored values are the single source of truth; long-running batches
// must re-read them per batch rather than caching across batches.
type Settings struct {
	TGLMarker           string          `json:"tgl_marker"`
	BigSaleThreshold    decimal.Decimal `json:"big_sale_threshold"`
	PollIntervalSeconds int             `json:"poll_interval_seconds"`
	PollingEnabled      bool            `json:"polling_enabled"`
}

// DefaultSettings returns the settings used before any PATCH has been made.
func DefaultSettings() Settings {
	threshold, _ := decimal.NewFromString(DefaultBigSaleThreshold)
	return Settings{
		TGLMarker:           DefaultTGLMarker,
		BigSaleThreshold:    threshold,
		PollIntervalSeconds: DefaultPollIntervalSeconds,
		PollingEnabled:      DefaultPollingEnabled,
	}
}
