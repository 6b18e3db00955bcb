package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"titansync/internal/domain/entities"
	"titansync/internal/usecase/interfaces"
)

// IngestDeps wires the pipeline's collaborators. Everything is injected so
// runs can be tested in isolation and multiple pipelines could coexist.
type IngestDeps struct {
	Source         interfaces.IEstimateSource
	Directory      interfaces.IDirectory
	Estimates      interfaces.IEstimateRepository
	Salespeople    interfaces.ISalespeopleRepository
	Classification *ClassificationCache
	Settings       ISettingsUseCase
	Webhooks       interfaces.IWebhookRepository
	Gifs           interfaces.IGifRepository
	Chat           interfaces.IChatNotifier
	WebhookLogs    interfaces.IWebhookLogRepository
	PollLogs       interfaces.IPollLogRepository
}

// RunOptions tweaks a single pipeline run.
type RunOptions struct {
	// Notify enables chat notifications for newly inserted TGL / big-sale
	// rows. Poll runs notify; backfills normally do not.
	Notify bool
	// ThresholdOverride, when set, replaces the stored big-sale threshold
	// for this run only. Divergence from the stored value is reported as a
	// configuration-drift warning, never silently unified.
	ThresholdOverride *decimal.Decimal
}

// RunSummary is the per-run report printed to the console and persisted in
// poll_logs.
type RunSummary struct {
	RunID     string
	Source    entities.IngestSource
	Window    entities.SoldWindow
	State     entities.BatchState
	Processed int
	Inserted  int
	Updated   int
	Errored   int
	Message   string
	StartedAt time.Time
	EndedAt   time.Time
}

func (s RunSummary) String() string {
	return fmt.Sprintf("run=%s source=%s state=%s processed=%d inserted=%d updated=%d errored=%d",
		s.RunID, s.Source, s.State, s.Processed, s.Inserted, s.Updated, s.Errored)
}

// IngestUseCase is the idempotent ingestion pipeline:
// fetch -> enrich -> classify -> upsert, strictly sequential.
//
// Per-record failures (a name lookup or a single upsert) are logged,
// counted, and skipped; batch-level failures (settings load, fetch,
// authentication) abort the run. Because storage is upserted by the
// external estimate id, re-running any window is safe.
type IngestUseCase struct {
	deps      IngestDeps
	techNames *nameCache
	custNames *nameCache
	pickGif   func(n int) int
}

func NewIngestUseCase(deps IngestDeps) *IngestUseCase {
	return &IngestUseCase{
		deps:      deps,
		techNames: newNameCache(defaultNameCacheSize),
		custNames: newNameCache(defaultNameCacheSize),
		pickGif:   rand.Intn,
	}
}

// Run executes one batch over the window. source selects the upstream
// pagination protocol: live uses the page-number endpoint, backfill the
// continuation-token export.
func (u *IngestUseCase) Run(ctx context.Context, window entities.SoldWindow, source entities.IngestSource, opts RunOptions) (RunSummary, error) {
	summary := RunSummary{
		RunID:     uuid.NewString(),
		Source:    source,
		Window:    window,
		State:     entities.BatchFetching,
		StartedAt: time.Now().UTC(),
	}

	settings, err := u.deps.Settings.Load(ctx)
	if err != nil {
		return u.fail(ctx, summary, fmt.Errorf("load settings: %w", err))
	}

	threshold := settings.BigSaleThreshold
	if opts.ThresholdOverride != nil {
		threshold = *opts.ThresholdOverride
		if !threshold.Equal(settings.BigSaleThreshold) {
			log.Printf("[sync][drift] big-sale threshold override %s differs from stored setting %s; using override for this run only",
				threshold.String(), settings.BigSaleThreshold.String())
			summary.Message = fmt.Sprintf("threshold override %s (stored %s)", threshold.String(), settings.BigSaleThreshold.String())
		}
	}

	u.appendPollLog(ctx, summary)

	classify := u.deps.Classification.Classify(ctx)

	process := func(e entities.Estimate) error {
		summary.Processed++

		summary.State = entities.BatchEnriching
		techName, custName, enrichErrs := u.enrich(ctx, e)
		summary.Errored += enrichErrs

		summary.State = entities.BatchClassifying
		rec := entities.SoldEstimate{
			ExternalID:      e.ID,
			Name:            e.Name,
			SoldOn:          e.SoldOn,
			Subtotal:        e.Subtotal,
			SalespersonID:   e.SoldBy,
			SalespersonName: techName,
			CustomerID:      e.CustomerID,
			CustomerName:    custName,
			IsTGL:           IsTGL(e, settings.TGLMarker),
			IsBigSale:       IsBigSale(e.Subtotal, threshold),
			Attribution:     CalculateAttribution(e.Items, classify),
			Raw:             e.Raw,
			Source:          source,
			ProcessedAt:     time.Now().UTC(),
		}

		summary.State = entities.BatchUpserting
		inserted, err := u.deps.Estimates.Upsert(ctx, rec)
		if err != nil {
			log.Printf("[sync][pipeline] upsert estimate=%d failed: %v", e.ID, err)
			summary.Errored++
			return nil // per-record failure, keep the batch going
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Updated++
		}

		if opts.Notify && inserted {
			u.notify(ctx, rec)
		}
		return nil
	}

	summary.State = entities.BatchFetching
	switch source {
	case entities.IngestSourceBackfill:
		err = u.deps.Source.ExportSold(ctx, window, process)
	default:
		err = u.deps.Source.StreamSold(ctx, window, process)
	}
	if err != nil {
		return u.fail(ctx, summary, fmt.Errorf("fetch estimates: %w", err))
	}

	summary.State = entities.BatchDone
	summary.EndedAt = time.Now().UTC()
	u.updatePollLog(ctx, summary)
	log.Printf("[sync][pipeline] %s", summary)
	return summary, nil
}

// enrich resolves the salesperson and customer display names through the
// FIFO caches and keeps the salespeople table current. Failures substitute
// placeholders and come back as an error count; they never stop the record.
func (u *IngestUseCase) enrich(ctx context.Context, e entities.Estimate) (techName, custName string, errored int) {
	var err error
	techName, err = u.resolveName(ctx, u.techNames, e.SoldBy, u.deps.Directory.TechnicianName, entities.PlaceholderTechnicianName)
	if err != nil {
		log.Printf("[sync][enrich] technician %d lookup failed: %v", e.SoldBy, err)
		errored++
	}
	custName, err = u.resolveName(ctx, u.custNames, e.CustomerID, u.deps.Directory.CustomerName, entities.PlaceholderCustomerName)
	if err != nil {
		log.Printf("[sync][enrich] customer %d lookup failed: %v", e.CustomerID, err)
		errored++
	}

	if e.SoldBy != 0 {
		if err := u.deps.Salespeople.Upsert(ctx, entities.Salesperson{
			TechnicianID: e.SoldBy,
			Name:         techName,
			Active:       true,
			UpdatedAt:    time.Now().UTC(),
		}); err != nil {
			log.Printf("[sync][enrich] salesperson upsert %d failed: %v", e.SoldBy, err)
			errored++
		}
	}
	return techName, custName, errored
}

// resolveName consults the FIFO cache, then the directory. A lookup error
// is non-fatal: the placeholder is used and the error reported upward for
// counting. Placeholders from failed lookups are not cached so a later
// record can retry.
func (u *IngestUseCase) resolveName(ctx context.Context, cache *nameCache, id int64, lookup func(context.Context, int64) (string, error), placeholder func(int64) string) (string, error) {
	if id == 0 {
		return placeholder(id), nil
	}
	if name, ok := cache.get(id); ok {
		return name, nil
	}
	name, err := lookup(ctx, id)
	if err != nil {
		return placeholder(id), err
	}
	if name == "" {
		name = placeholder(id)
	}
	cache.put(id, name)
	return name, nil
}

type outboundMessage struct {
	kind entities.WebhookEventKind
	msg  entities.ChatMessage
}

func (u *IngestUseCase) notify(ctx context.Context, rec entities.SoldEstimate) {
	var messages []outboundMessage

	if rec.IsTGL {
		messages = append(messages, outboundMessage{
			kind: entities.WebhookEventTGL,
			msg: entities.ChatMessage{
				CardTitle:    fmt.Sprintf("TGL sold by %s!", rec.SalespersonName),
				CardSubtitle: fmt.Sprintf("%s / $%s", rec.Name, rec.Subtotal.StringFixed(2)),
				CardImageURL: u.randomGifURL(ctx),
			},
		})
	}
	if rec.IsBigSale {
		messages = append(messages, outboundMessage{
			kind: entities.WebhookEventBigSale,
			msg: entities.ChatMessage{
				Text: fmt.Sprintf("Big sale! %s closed $%s for %s.", rec.SalespersonName, rec.Subtotal.StringFixed(2), rec.CustomerName),
			},
		})
	}
	if len(messages) == 0 {
		return
	}

	hooks, err := u.deps.Webhooks.ListEnabled(ctx)
	if err != nil {
		log.Printf("[sync][notify] list webhooks failed: %v", err)
		return
	}

	for _, hook := range hooks {
		for _, m := range messages {
			status, err := u.deps.Chat.Send(ctx, hook.URL, m.msg)
			entry := entities.WebhookLog{
				ID:                 uuid.NewString(),
				WebhookID:          hook.ID,
				EstimateExternalID: rec.ExternalID,
				Kind:               m.kind,
				StatusCode:         status,
				Success:            err == nil,
				SentAt:             time.Now().UTC(),
			}
			if err != nil {
				// Delivery failures are logged, never retried; operators
				// recover through the manual test endpoint.
				entry.Error = err.Error()
				log.Printf("[sync][notify] webhook %s delivery failed: %v", hook.ID, err)
			}
			if logErr := u.deps.WebhookLogs.Append(ctx, entry); logErr != nil {
				log.Printf("[sync][notify] webhook log append failed: %v", logErr)
			}
		}
	}
}

func (u *IngestUseCase) randomGifURL(ctx context.Context) string {
	gifs, err := u.deps.Gifs.List(ctx)
	if err != nil || len(gifs) == 0 {
		return ""
	}
	return gifs[u.pickGif(len(gifs))].URL
}

func (u *IngestUseCase) fail(ctx context.Context, summary RunSummary, err error) (RunSummary, error) {
	summary.State = entities.BatchFailed
	summary.Message = err.Error()
	summary.EndedAt = time.Now().UTC()
	u.updatePollLog(ctx, summary)
	log.Printf("[sync][pipeline] FAILED %s: %v", summary, err)
	return summary, err
}

func (u *IngestUseCase) appendPollLog(ctx context.Context, summary RunSummary) {
	if err := u.deps.PollLogs.Append(ctx, pollLogFromSummary(summary)); err != nil {
		log.Printf("[sync][pipeline] poll log append failed: %v", err)
	}
}

func (u *IngestUseCase) updatePollLog(ctx context.Context, summary RunSummary) {
	if err := u.deps.PollLogs.Update(ctx, pollLogFromSummary(summary)); err != nil {
		log.Printf("[sync][pipeline] poll log update failed: %v", err)
	}
}

func pollLogFromSummary(s RunSummary) entities.PollLog {
	return entities.PollLog{
		ID:         s.RunID,
		RunID:      s.RunID,
		Source:     s.Source,
		WindowFrom: s.Window.From,
		WindowTo:   s.Window.To,
		State:      s.State,
		Processed:  s.Processed,
		Inserted:   s.Inserted,
		Updated:    s.Updated,
		Errored:    s.Errored,
		Message:    s.Message,
		StartedAt:  s.StartedAt,
		FinishedAt: s.EndedAt,
	}
}
