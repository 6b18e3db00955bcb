package entities

import "time"

// BatchState is the per-run state machine of the ingestion pipeline.
// FAILED is reachable from any state.
type BatchState string

const (
	BatchFetching    BatchState = "FETCHING"
	BatchEnriching   BatchState = "ENRICHING"
	BatchClassifying BatchState = "CLASSIFYING"
	BatchUpserting   BatchState = "UPSERTING"
	BatchDone        BatchState = "DONE"
	BatchFailed      BatchState = "FAILED"
)

// PollLog is one row in poll_logs summarizing an ingestion run.
type PollLog struct {
	ID         string       `json:"id"`
	RunID      string       `json:"run_id"`
	Source     IngestSource `json:"source"`
	WindowFrom time.Time    `json:"window_from"`
	WindowTo   time.Time    `json:"window_to"`
	State      BatchState   `json:"state"`
	Processed  int          `json:"processed"`
	Inserted   int          `json:"inserted"`
	Updated    int          `json:"updated"`
	Errored    int          `json:"errored"`
	Message    string       `json:"message"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}
