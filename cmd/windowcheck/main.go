// Command windowcheck compares the dashboard API's per-county window totals with an
// independent aggregation of the database and writes txt/csv reports.
//
// Exit status: 0 all within tolerance, 1 mismatches found, 2 setup or run failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bondwatch-lab/bondwatch/internal/core/bucket"
	corecfg "github.com/bondwatch-lab/bondwatch/internal/core/config"
	"github.com/bondwatch-lab/bondwatch/internal/core/storage/postgres"
	"github.com/bondwatch-lab/bondwatch/internal/migrations"
	"github.com/bondwatch-lab/bondwatch/internal/reconcile"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitSetup    = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "bondwatch.yaml", "Path to configuration file")
	apiURL := flag.String("api", "", "Dashboard API base URL (overrides validation.api_url)")
	tolerance := flag.Float64("tolerance", -1, "Allowed difference in percent (overrides validation.tolerance_pct)")
	reportDir := flag.String("out", "", "Report directory (overrides validation.report_dir)")
	windows := flag.String("windows", "", "Comma-separated windows to check (default: all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return exitSetup
	}
	if *apiURL != "" {
		cfg.Validation.APIURL = *apiURL
	}
	if *tolerance >= 0 {
		cfg.Validation.TolerancePct = *tolerance
	}
	if *reportDir != "" {
		cfg.Validation.ReportDir = *reportDir
	}

	selected, err := parseWindows(*windows)
	if err != nil {
		slog.Error("Invalid -windows flag", "error", err)
		return exitSetup
	}

	db, err := postgres.OpenDB(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitSetup
	}
	if state, err := migrations.State(db); err != nil || state.Empty || state.Dirty {
		slog.Error("Database schema not ready", "state", state, "error", err)
		_ = db.Close()
		return exitSetup
	}

	dbAdapter, err := postgres.NewAdapter(db)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return exitSetup
	}
	defer dbAdapter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checker := reconcile.NewChecker(
		dbAdapter,
		reconcile.NewAPIClient(cfg.Validation.APIURL, cfg.Validation.RequestTimeout()),
		reconcile.Options{
			Windows:      selected,
			TolerancePct: cfg.Validation.TolerancePct,
			Concurrency:  cfg.Validation.Concurrency,
		},
	)

	report, err := checker.Run(ctx)
	if err != nil {
		slog.Error("Reconciliation failed", "error", err)
		return exitSetup
	}

	txtPath, csvPath, err := reconcile.WriteReports(cfg.Validation.ReportDir, report)
	if err != nil {
		slog.Error("Failed to write reports", "error", err)
		return exitSetup
	}
	fmt.Printf("wrote:\n  %s\n  %s\n", txtPath, csvPath)

	if !report.Passed() {
		for _, m := range report.Mismatches() {
			slog.Warn("Window mismatch",
				"county", m.County,
				"window", m.Window,
				"db_count", m.DBCount,
				"api_count", m.APICount,
				"diff_pct", m.DiffPct)
		}
		return exitMismatch
	}
	return exitOK
}

func parseWindows(raw string) ([]bucket.Window, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []bucket.Window
	for _, part := range strings.Split(raw, ",") {
		w, ok := bucket.ParseWindow(part)
		if !ok {
			return nil, fmt.Errorf("unknown window %q", strings.TrimSpace(part))
		}
		out = append(out, w)
	}
	return out, nil
}
