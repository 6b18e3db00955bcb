package response

import (
	"time"

	"titansync/internal/domain/entities"
)

// SettingsResponse mirrors the stored runtime settings. The threshold is a
// string to preserve currency precision.
type SettingsResponse struct {
	TGLMarker           string `json:"tgl_marker"`
	BigSaleThreshold    string `json:"big_sale_threshold"`
	PollIntervalSeconds int    `json:"poll_interval_seconds"`
	PollingEnabled      bool   `json:"polling_enabled"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		TGLMarker:           s.TGLMarker,
		BigSaleThreshold:    s.BigSaleThreshold.String(),
		PollIntervalSeconds: s.PollIntervalSeconds,
		PollingEnabled:      s.PollingEnabled,
	}
}

// PollingStatusResponse is served by GET /polling.
type PollingStatusResponse struct {
	Enabled         bool              `json:"enabled"`
	IntervalSeconds int               `json:"interval_seconds"`
	RecentRuns      []PollLogResponse `json:"recent_runs"`
}

// PollLogResponse is one ingestion run summary row.
type PollLogResponse struct {
	RunID      string    `json:"run_id"`
	Source     string    `json:"source"`
	State      string    `json:"state"`
	WindowFrom time.Time `json:"window_from"`
	WindowTo   time.Time `json:"window_to"`
	Processed  int       `json:"processed"`
	Inserted   int       `json:"inserted"`
	Updated    int       `json:"updated"`
	Errored    int       `json:"errored"`
	Message    string    `json:"message,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func FromPollLog(l entities.PollLog) PollLogResponse {
	return PollLogResponse{
		RunID:      l.RunID,
		Source:     string(l.Source),
		State:      string(l.State),
		WindowFrom: l.WindowFrom,
		WindowTo:   l.WindowTo,
		Processed:  l.Processed,
		Inserted:   l.Inserted,
		Updated:    l.Updated,
		Errored:    l.Errored,
		Message:    l.Message,
		StartedAt:  l.StartedAt,
		FinishedAt: l.FinishedAt,
	}
}

func FromPollLogs(logs []entities.PollLog) []PollLogResponse {
	out := make([]PollLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, FromPollLog(l))
	}
	return out
}
