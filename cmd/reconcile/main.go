package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	repository2 "titansync/internal/adapter/persistence/repository"
	"titansync/internal/config"
	"titansync/internal/domain/entities"
	"titansync/internal/infrastructure/database"
	"titansync/internal/infrastructure/servicetitan"
	"titansync/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	var (
		from = flag.String("from", "", "report window start (YYYY-MM-DD)")
		to   = flag.String("to", "", "report window end (YYYY-MM-DD, default today)")
	)
	flag.Parse()

	if *from == "" {
		log.Fatalf("[reconcile][main] -from is required")
	}
	start, err := time.Parse("2006-01-02", *from)
	if err != nil {
		log.Fatalf("[reconcile][main] invalid -from %q: %v", *from, err)
	}
	end := time.Now().UTC()
	if *to != "" {
		end, err = time.Parse("2006-01-02", *to)
		if err != nil {
			log.Fatalf("[reconcile][main] invalid -to %q: %v", *to, err)
		}
	}

	ctx := context.Background()
	cfg := config.Load()
	pool := database.ConnectPostgres(ctx)
	defer pool.Close()

	st := servicetitan.NewClient(ctx, cfg.ServiceTitan)
	estimateRepo := repository2.NewEstimatePgRepository(pool)

	reconcile := usecase.NewReconcileUseCase(st, estimateRepo, cfg.ReportLocation)
	report, err := reconcile.Report(ctx, entities.SoldWindow{From: start, To: end})
	if err != nil {
		log.Fatalf("[reconcile][main] report failed: %v", err)
	}

	printReport(os.Stdout, report)
}

func printReport(w *os.File, report []usecase.DayDiff) {
	mismatches := 0
	for _, d := range report {
		status := "OK"
		if !d.CountMatch {
			status = "MISMATCH"
			mismatches++
		}
		fmt.Fprintf(w, "%s  source=%d store=%d  %s\n", d.Day, d.SourceCount, d.StoreCount, status)
		for _, r := range d.OnlyInSource {
			fmt.Fprintf(w, "    missing in store: %d %q\n", r.ExternalID, r.Name)
		}
		for _, r := range d.OnlyInStore {
			fmt.Fprintf(w, "    missing upstream: %d %q\n", r.ExternalID, r.Name)
		}
	}
	fmt.Fprintf(w, "%d day(s), %d mismatch(es)\n", len(report), mismatches)
}
