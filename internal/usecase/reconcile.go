package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

// EventRecord is the minimal shape the reconciler needs from either side:
// a date, an identifying tuple, and optionally a shared external id.
type EventRecord struct {
	ExternalID int64
	Name       string
	Date       time.Time
}

// DayDiff is the per-calendar-day comparison between the upstream API
// (source) and the stored rows (store).
type DayDiff struct {
	Day         string // YYYY-MM-DD in the report time zone
	SourceCount int
	StoreCount  int
	CountMatch  bool
	OnlyInSource []EventRecord
	OnlyInStore  []EventRecord
}

// ReconcileUseCase produces a best-effort audit of stored estimates against
// the upstream export. It is a diagnostic, not a correctness-critical path:
// when records share an external id they are matched exactly, otherwise the
// fuzzy name heuristic below applies.
type ReconcileUseCase struct {
	source    interfaces.IEstimateSource
	estimates interfaces.IEstimateRepository
	loc       *time.Location
}

func NewReconcileUseCase(source interfaces.IEstimateSource, estimates interfaces.IEstimateRepository, loc *time.Location) *ReconcileUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ReconcileUseCase{source: source, estimates: estimates, loc: loc}
}

// Report fetches both sides for the window and diffs them by day.
func (u *ReconcileUseCase) Report(ctx context.Context, window entities.SoldWindow) ([]DayDiff, error) {
	var upstream []EventRecord
	err := u.source.ExportSold(ctx, window, func(e entities.Estimate) error {
		upstream = append(upstream, EventRecord{ExternalID: e.ID, Name: e.Name, Date: e.SoldOn})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch upstream estimates: %w", err)
	}

	rows, err := u.estimates.ListSoldBetween(ctx, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("list stored estimates: %w", err)
	}
	stored := make([]EventRecord, 0, len(rows))
	for _, r := range rows {
		stored = append(stored, EventRecord{ExternalID: r.ExternalID, Name: r.Name, Date: r.SoldOn})
	}

	return DiffByDay(upstream, stored, u.loc), nil
}

// DiffByDay groups both collections by calendar day in loc and reports the
// per-day set differences. Records match when their external ids are equal
// (both non-zero), or else when FuzzyNameMatch holds.
func DiffByDay(source, store []EventRecord, loc *time.Location) []DayDiff {
	sourceByDay := groupByDay(source, loc)
	storeByDay := groupByDay(store, loc)

	days := map[string]struct{}{}
	for d := range sourceByDay {
		days[d] = struct{}{}
	}
	for d := range storeByDay {
		days[d] = struct{}{}
	}

	ordered := make([]string, 0, len(days))
	for d := range days {
		ordered = append(ordered, d)
	}
	sort.Strings(ordered)

	diffs := make([]DayDiff, 0, len(ordered))
	for _, day := range ordered {
		a, b := sourceByDay[day], storeByDay[day]
		diff := DayDiff{
			Day:          day,
			SourceCount:  len(a),
			StoreCount:   len(b),
			CountMatch:   len(a) == len(b),
			OnlyInSource: unmatched(a, b),
			OnlyInStore:  unmatched(b, a),
		}
		diffs = append(diffs, diff)
	}
	return diffs
}

func groupByDay(records []EventRecord, loc *time.Location) map[string][]EventRecord {
	grouped := map[string][]EventRecord{}
	for _, r := range records {
		day := r.Date.In(loc).Format("2006-01-02")
		grouped[day] = append(grouped[day], r)
	}
	return grouped
}

func unmatched(from, against []EventRecord) []EventRecord {
	var missing []EventRecord
	for _, r := range from {
		if !containsMatch(against, r) {
			missing = append(missing, r)
		}
	}
	return missing
}

func containsMatch(haystack []EventRecord, needle EventRecord) bool {
	for _, h := range haystack {
		if needle.ExternalID != 0 && h.ExternalID != 0 {
			if needle.ExternalID == h.ExternalID {
				return true
			}
			continue
		}
		if FuzzyNameMatch(needle.Name, h.Name) {
			return true
		}
	}
	return false
}

// FuzzyNameMatch is a best-effort heuristic, not an exact matcher: it
// lowercases both names and reports a match when any token of at least
// three characters from one name appears as a substring of the other.
// Manually recorded ledgers abbreviate and misspell, so false positives
// and negatives are expected and acceptable for a diagnostic report.
func FuzzyNameMatch(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == "" || lb == "" {
		return false
	}
	for _, tok := range strings.Fields(la) {
		if len(tok) >= 3 && strings.Contains(lb, tok) {
			return true
		}
	}
	for _, tok := range strings.Fields(lb) {
		if len(tok) >= 3 && strings.Contains(la, tok) {
			return true
		}
	}
	return false
}
