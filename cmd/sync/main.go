package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	repository2 "titansync/internal/adapter/persistence/repository"
	"titansync/internal/config"
	"titansync/internal/domain/entities"
	"titansync/internal/infrastructure/chat"
	"titansync/internal/infrastructure/database"
	"titansync/internal/infrastructure/servicetitan"
	"titansync/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

const classificationTTL = 15 * time.Minute

func main() {
	var (
		backfill  = flag.Bool("backfill", false, "run a one-shot historical backfill instead of the poll loop")
		from      = flag.String("from", "", "backfill window start (YYYY-MM-DD or RFC3339)")
		to        = flag.String("to", "", "backfill window end (YYYY-MM-DD or RFC3339, default now)")
		pricebook = flag.Bool("pricebook", false, "sync the pricebook and exit")
		threshold = flag.String("big-sale-threshold", "", "override the stored big-sale threshold for this run")
		lookback  = flag.Duration("lookback", 24*time.Hour, "how far back each live poll looks")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	pool := database.ConnectPostgres(ctx)
	defer pool.Close()

	st := servicetitan.NewClient(ctx, cfg.ServiceTitan)

	estimateRepo := repository2.NewEstimatePgRepository(pool)
	pricebookRepo := repository2.NewPricebookPgRepository(pool)
	salespeopleRepo := repository2.NewSalespeoplePgRepository(pool)
	stateRepo := repository2.NewAppStatePgRepository(pool)
	webhookRepo := repository2.NewWebhookPgRepository(pool)
	gifRepo := repository2.NewGifPgRepository(pool)
	webhookLogRepo := repository2.NewWebhookLogPgRepository(pool)
	pollLogRepo := repository2.NewPollLogPgRepository(pool)

	cache := usecase.NewClassificationCache(pricebookRepo, classificationTTL)
	settings := usecase.NewSettingsUseCase(stateRepo, pollLogRepo)

	if *pricebook {
		sync := usecase.NewPricebookSyncUseCase(st, pricebookRepo, cache)
		n, err := sync.Run(ctx)
		if err != nil {
			log.Fatalf("[sync][main] pricebook sync failed after %d items: %v", n, err)
		}
		log.Printf("[sync][main] pricebook sync done, %d items", n)
		return
	}

	ingest := usecase.NewIngestUseCase(usecase.IngestDeps{
		Source:         st,
		Directory:      st,
		Estimates:      estimateRepo,
		Salespeople:    salespeopleRepo,
		Classification: cache,
		Settings:       settings,
		Webhooks:       webhookRepo,
		Gifs:           gifRepo,
		Chat:           chat.NewGoogleChatNotifier(),
		WebhookLogs:    webhookLogRepo,
		PollLogs:       pollLogRepo,
	})

	opts := usecase.RunOptions{}
	if *threshold != "" {
		d, err := decimal.NewFromString(*threshold)
		if err != nil || !d.IsPositive() {
			log.Fatalf("[sync][main] -big-sale-threshold must be a positive number, got %q", *threshold)
		}
		opts.ThresholdOverride = &d
	}

	if *backfill {
		window, err := parseWindow(*from, *to)
		if err != nil {
			log.Fatalf("[sync][main] %v", err)
		}
		if _, err := ingest.Run(ctx, window, entities.IngestSourceBackfill, opts); err != nil {
			os.Exit(1)
		}
		return
	}

	opts.Notify = true
	pollLoop(ctx, ingest, settings, *lookback, opts)
}

// pollLoop runs live ingestion batches until the context is cancelled.
// polling_enabled and the interval are re-read from storage before every
// iteration so admin changes take effect without a restart.
func pollLoop(ctx context.Context, ingest *usecase.IngestUseCase, settings usecase.ISettingsUseCase, lookback time.Duration, opts usecase.RunOptions) {
	log.Printf("[sync][main] poll loop started, lookback %s", lookback)
	for {
		interval := time.Duration(entities.DefaultPollIntervalSeconds) * time.Second

		s, err := settings.Load(ctx)
		if err != nil {
			log.Printf("[sync][main] settings load failed, retrying in %s: %v", interval, err)
		} else {
			interval = time.Duration(s.PollIntervalSeconds) * time.Second
			if !s.PollingEnabled {
				log.Printf("[sync][main] polling disabled, checking again in %s", interval)
			} else {
				window := entities.SoldWindow{From: time.Now().UTC().Add(-lookback)}
				if _, err := ingest.Run(ctx, window, entities.IngestSourceLive, opts); err != nil {
					log.Printf("[sync][main] batch failed: %v", err)
				}
			}
		}

		select {
		case <-ctx.Done():
			log.Printf("[sync][main] shutting down: %v", ctx.Err())
			return
		case <-time.After(interval):
		}
	}
}

func parseWindow(from, to string) (entities.SoldWindow, error) {
	if from == "" {
		return entities.SoldWindow{}, fmt.Errorf("-from is required for a backfill")
	}
	start, err := parseDayOrTime(from)
	if err != nil {
		return entities.SoldWindow{}, fmt.Errorf("invalid -from %q: %w", from, err)
	}
	end := time.Now().UTC()
	if to != "" {
		end, err = parseDayOrTime(to)
		if err != nil {
			return entities.SoldWindow{}, fmt.Errorf("invalid -to %q: %w", to, err)
		}
	}
	if !end.After(start) {
		return entities.SoldWindow{}, fmt.Errorf("-to must be after -from")
	}
	return entities.SoldWindow{From: start, To: end}, nil
}

func parseDayOrTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
