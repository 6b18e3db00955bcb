package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"titansync/internal/domain/entities"
	mock_interfaces "titansync/internal/usecase/interfaces/mocks"
)

// stubSettings avoids an import cycle with the generated handler mocks.
type stubSettings struct {
	settings entities.Settings
	err      error
}

func (s *stubSettings) Load(context.Context) (entities.Settings, error) {
	return s.settings, s.err
}

func (s *stubSettings) Update(context.Context, SettingsPatch) (entities.Settings, error) {
	return s.settings, nil
}

func (s *stubSettings) RecentRuns(context.Context, int) ([]entities.PollLog, error) {
	return nil, nil
}

type ingestMocks struct {
	source      *mock_interfaces.MockIEstimateSource
	directory   *mock_interfaces.MockIDirectory
	estimates   *mock_interfaces.MockIEstimateRepository
	salespeople *mock_interfaces.MockISalespeopleRepository
	pricebook   *mock_interfaces.MockIPricebookRepository
	webhooks    *mock_interfaces.MockIWebhookRepository
	gifs        *mock_interfaces.MockIGifRepository
	chat        *mock_interfaces.MockIChatNotifier
	webhookLogs *mock_interfaces.MockIWebhookLogRepository
	pollLogs    *mock_interfaces.MockIPollLogRepository
	settings    *stubSettings
}

func newIngestMocks(ctrl *gomock.Controller) (*IngestUseCase, *ingestMocks) {
	m := &ingestMocks{
		source:      mock_interfaces.NewMockIEstimateSource(ctrl),
		directory:   mock_interfaces.NewMockIDirectory(ctrl),
		estimates:   mock_interfaces.NewMockIEstimateRepository(ctrl),
		salespeople: mock_interfaces.NewMockISalespeopleRepository(ctrl),
		pricebook:   mock_interfaces.NewMockIPricebookRepository(ctrl),
		webhooks:    mock_interfaces.NewMockIWebhookRepository(ctrl),
		gifs:        mock_interfaces.NewMockIGifRepository(ctrl),
		chat:        mock_interfaces.NewMockIChatNotifier(ctrl),
		webhookLogs: mock_interfaces.NewMockIWebhookLogRepository(ctrl),
		pollLogs:    mock_interfaces.NewMockIPollLogRepository(ctrl),
		settings:    &stubSettings{settings: entities.DefaultSettings()},
	}
	uc := NewIngestUseCase(IngestDeps{
		Source:         m.source,
		Directory:      m.directory,
		Estimates:      m.estimates,
		Salespeople:    m.salespeople,
		Classification: NewClassificationCache(m.pricebook, time.Hour),
		Settings:       m.settings,
		Webhooks:       m.webhooks,
		Gifs:           m.gifs,
		Chat:           m.chat,
		WebhookLogs:    m.webhookLogs,
		PollLogs:       m.pollLogs,
	})
	return uc, m
}

func soldEstimate(id int64, name string, subtotal string) entities.Estimate {
	return entities.Estimate{
		ID:         id,
		Name:       name,
		CustomerID: 100 + id,
		SoldBy:     200 + id,
		SoldOn:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Subtotal:   decimal.RequireFromString(subtotal),
		Status:     "Sold",
	}
}

func yieldAll(estimates ...entities.Estimate) func(context.Context, entities.SoldWindow, func(entities.Estimate) error) error {
	return func(_ context.Context, _ entities.SoldWindow, yield func(entities.Estimate) error) error {
		for _, e := range estimates {
			if err := yield(e); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestIngestUseCase_Run(t *testing.T) {
	window := entities.SoldWindow{From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("counts inserts and updates separately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)

		e1 := soldEstimate(1, "Water heater", "450")
		e2 := soldEstimate(2, "Furnace", "650")

		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.PollLog) error {
				if l.State != entities.BatchDone {
					t.Fatalf("expected final state done, got %s", l.State)
				}
				return nil
			})
		m.pricebook.EXPECT().ListPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.source.EXPECT().StreamSold(gomock.Any(), window, gomock.Any()).DoAndReturn(yieldAll(e1, e2))
		m.directory.EXPECT().TechnicianName(gomock.Any(), gomock.Any()).Return("Jane Tech", nil).Times(2)
		m.directory.EXPECT().CustomerName(gomock.Any(), gomock.Any()).Return("Smith Home", nil).Times(2)
		m.salespeople.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		gomock.InOrder(
			m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(true, nil),
			m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(false, nil),
		)

		summary, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Processed != 2 || summary.Inserted != 1 || summary.Updated != 1 || summary.Errored != 0 {
			t.Fatalf("unexpected summary: %s", summary)
		}
		if summary.State != entities.BatchDone {
			t.Fatalf("expected state done, got %s", summary.State)
		}
	})

	t.Run("a failed upsert skips the record but keeps the batch going", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)

		e1 := soldEstimate(1, "Water heater", "450")
		e2 := soldEstimate(2, "Furnace", "650")

		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.pricebook.EXPECT().ListPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.source.EXPECT().StreamSold(gomock.Any(), window, gomock.Any()).DoAndReturn(yieldAll(e1, e2))
		m.directory.EXPECT().TechnicianName(gomock.Any(), gomock.Any()).Return("Jane Tech", nil).Times(2)
		m.directory.EXPECT().CustomerName(gomock.Any(), gomock.Any()).Return("Smith Home", nil).Times(2)
		m.salespeople.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		gomock.InOrder(
			m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(false, errors.New("constraint violation")),
			m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(true, nil),
		)

		summary, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Processed != 2 || summary.Inserted != 1 || summary.Errored != 1 {
			t.Fatalf("unexpected summary: %s", summary)
		}
	})

	t.Run("fetch failure fails the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)

		// The run-start row is still appended; the failure lands in Update.
		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.PollLog) error {
				if l.State != entities.BatchFailed {
					t.Fatalf("expected failed state in poll log, got %s", l.State)
				}
				return nil
			})
		m.source.EXPECT().StreamSold(gomock.Any(), window, gomock.Any()).Return(errors.New("401 unauthorized"))

		summary, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{})
		if err == nil {
			t.Fatalf("expected error, got nil")
		}
		if summary.State != entities.BatchFailed {
			t.Fatalf("expected state failed, got %s", summary.State)
		}
	})

	t.Run("settings load failure aborts before fetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)
		m.settings.err = errors.New("db down")

		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{}); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})

	t.Run("backfill uses the export protocol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)

		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.source.EXPECT().ExportSold(gomock.Any(), window, gomock.Any()).DoAndReturn(yieldAll())

		summary, err := uc.Run(context.Background(), window, entities.IngestSourceBackfill, RunOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Source != entities.IngestSourceBackfill || summary.Processed != 0 {
			t.Fatalf("unexpected summary: %s", summary)
		}
	})

	t.Run("failed name lookup substitutes the placeholder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)

		e := soldEstimate(1, "Water heater", "450")

		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.pricebook.EXPECT().ListPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.source.EXPECT().StreamSold(gomock.Any(), window, gomock.Any()).DoAndReturn(yieldAll(e))
		m.directory.EXPECT().TechnicianName(gomock.Any(), e.SoldBy).Return("", errors.New("timeout"))
		m.directory.EXPECT().CustomerName(gomock.Any(), e.CustomerID).Return("Smith Home", nil)
		m.salespeople.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.SoldEstimate) (bool, error) {
				want := fmt.Sprintf("Technician #%d", e.SoldBy)
				if rec.SalespersonName != want {
					t.Fatalf("expected placeholder %q, got %q", want, rec.SalespersonName)
				}
				if rec.CustomerName != "Smith Home" {
					t.Fatalf("expected resolved customer name, got %q", rec.CustomerName)
				}
				return true, nil
			})

		summary, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Errored != 1 {
			t.Fatalf("expected the failed lookup counted, got %d", summary.Errored)
		}
	})

	t.Run("repeated ids hit the name cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)

		e1 := soldEstimate(1, "Water heater", "450")
		e2 := soldEstimate(2, "Furnace", "650")
		e2.SoldBy = e1.SoldBy
		e2.CustomerID = e1.CustomerID

		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.pricebook.EXPECT().ListPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.source.EXPECT().StreamSold(gomock.Any(), window, gomock.Any()).DoAndReturn(yieldAll(e1, e2))
		m.directory.EXPECT().TechnicianName(gomock.Any(), e1.SoldBy).Return("Jane Tech", nil).Times(1)
		m.directory.EXPECT().CustomerName(gomock.Any(), e1.CustomerID).Return("Smith Home", nil).Times(1)
		m.salespeople.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

		if _, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notifies enabled webhooks on inserted tgl and big sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)
		uc.pickGif = func(int) int { return 0 }

		e := soldEstimate(1, "Smith / Option C - System Update", "25000")

		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.pricebook.EXPECT().ListPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.source.EXPECT().StreamSold(gomock.Any(), window, gomock.Any()).DoAndReturn(yieldAll(e))
		m.directory.EXPECT().TechnicianName(gomock.Any(), gomock.Any()).Return("Jane Tech", nil)
		m.directory.EXPECT().CustomerName(gomock.Any(), gomock.Any()).Return("Smith Home", nil)
		m.salespeople.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(true, nil)

		m.gifs.EXPECT().List(gomock.Any()).Return([]entities.Gif{{ID: "g1", URL: "https://gifs.example.com/party.gif"}}, nil)
		m.webhooks.EXPECT().ListEnabled(gomock.Any()).Return([]entities.Webhook{
			{ID: "w1", URL: "https://chat.example.com/hook", Enabled: true},
		}, nil)
		// One TGL card and one big-sale text to the single hook.
		m.chat.EXPECT().Send(gomock.Any(), "https://chat.example.com/hook", gomock.Any()).Return(200, nil).Times(2)
		m.webhookLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		if _, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{Notify: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("updates never notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)

		e := soldEstimate(1, "Smith / Option C - System Update", "25000")

		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.pricebook.EXPECT().ListPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.source.EXPECT().StreamSold(gomock.Any(), window, gomock.Any()).DoAndReturn(yieldAll(e))
		m.directory.EXPECT().TechnicianName(gomock.Any(), gomock.Any()).Return("Jane Tech", nil)
		m.directory.EXPECT().CustomerName(gomock.Any(), gomock.Any()).Return("Smith Home", nil)
		m.salespeople.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		// Already stored: same event re-fetched is an update, not an insert.
		m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(false, nil)

		if _, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{Notify: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("threshold override reports drift and applies for the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newIngestMocks(ctrl)

		// Subtotal over the override but under nothing stored: with the
		// stored default of 700 this would be a big sale; the 30000
		// override suppresses it.
		e := soldEstimate(1, "Water heater", "25000")
		override := decimal.NewFromInt(30000)

		m.pollLogs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		m.pollLogs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.pricebook.EXPECT().ListPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.source.EXPECT().StreamSold(gomock.Any(), window, gomock.Any()).DoAndReturn(yieldAll(e))
		m.directory.EXPECT().TechnicianName(gomock.Any(), gomock.Any()).Return("Jane Tech", nil)
		m.directory.EXPECT().CustomerName(gomock.Any(), gomock.Any()).Return("Smith Home", nil)
		m.salespeople.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
		m.estimates.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.SoldEstimate) (bool, error) {
				if rec.IsBigSale {
					t.Fatalf("override threshold should suppress the big-sale flag")
				}
				return true, nil
			})

		summary, err := uc.Run(context.Background(), window, entities.IngestSourceLive, RunOptions{ThresholdOverride: &override})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Message == "" {
			t.Fatalf("expected a drift message in the summary")
		}
	})
}
