// Command simulate generates the synthetic dataset. It supports three run
// kinds: "historical" (long horizon, past-only), "full" (two-year horizon
// including future entries), and "daily" (append one day of transactions
// to an existing historical output). With -daemon the daily run repeats on
// a cron schedule.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cashsight/simulator/internal/config"
	"github.com/cashsight/simulator/internal/logger"
	"github.com/cashsight/simulator/internal/models"
	"github.com/cashsight/simulator/internal/pipeline"
	"github.com/cashsight/simulator/internal/seed"
	"github.com/cashsight/simulator/internal/simulation"
)

// Daily runs fire shortly after midnight so the day's schedule entries are
// picked up once.
const dailyCronSpec = "5 0 * * *"

func main() {
	mode := flag.String("mode", "historical", "run kind: historical, full, or daily")
	daemon := flag.Bool("daemon", false, "with -mode daily, keep running on a daily cron schedule")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env)
	log.Info("Starting simulator", map[string]interface{}{
		"mode":   *mode,
		"daemon": *daemon,
		"output": cfg.Simulation.OutputDir,
	})

	if err := os.MkdirAll(cfg.Simulation.OutputDir, 0o755); err != nil {
		log.Fatal("Failed to create output directory", err, map[string]interface{}{
			"dir": cfg.Simulation.OutputDir,
		})
	}

	coa, err := seed.LoadChartOfAccounts(cfg.Simulation.AccountsPath, log)
	if err != nil {
		log.Fatal("Failed to load chart of accounts", err, map[string]interface{}{
			"path": cfg.Simulation.AccountsPath,
		})
	}

	switch *mode {
	case "historical", "full":
		properties, err := seed.LoadProperties(cfg.Simulation.PropertiesPath, log)
		if err != nil {
			log.Fatal("Failed to load properties", err, map[string]interface{}{
				"path": cfg.Simulation.PropertiesPath,
			})
		}
		p := newPipeline(cfg, log)
		opts := runOptions(cfg)
		if *mode == "historical" {
			_, err = p.RunHistorical(properties, coa, opts)
		} else {
			_, err = p.RunFull(properties, coa, opts)
		}
		if err != nil {
			log.Fatal("Run failed", err, map[string]interface{}{"mode": *mode})
		}

	case "daily":
		if *daemon {
			runDailyDaemon(cfg, log, coa)
			return
		}
		if _, err := newPipeline(cfg, log).RunDaily(coa, runOptions(cfg)); err != nil {
			log.Fatal("Daily run failed", err, nil)
		}

	default:
		log.Fatal("Unknown mode", fmt.Errorf("mode %q", *mode), nil)
	}
}

// newPipeline wires a fresh generator for one run. Seed zero means a
// time-derived seed; the as-of date is always the current day.
func newPipeline(cfg *config.Config, log *logger.Logger) *pipeline.Pipeline {
	s := cfg.Simulation.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	gen := simulation.New(s, time.Now().UTC().Truncate(24*time.Hour), log)
	return pipeline.New(gen, log, cfg.Simulation.OutputDir)
}

func runOptions(cfg *config.Config) pipeline.Options {
	return pipeline.Options{
		MonthsOut:        cfg.Simulation.MonthsOut,
		UserCount:        cfg.Simulation.UserCount,
		VendorCount:      cfg.Simulation.VendorCount,
		VendorInvoiceMin: cfg.Simulation.VendorInvoiceMin,
		VendorInvoiceMax: cfg.Simulation.VendorInvoiceMax,
	}
}

// runDailyDaemon schedules a daily run and blocks until interrupted. Each
// firing gets its own pipeline so the as-of date tracks the calendar.
func runDailyDaemon(cfg *config.Config, log *logger.Logger, coa []models.Account) {
	c := cron.New()
	_, err := c.AddFunc(dailyCronSpec, func() {
		if _, err := newPipeline(cfg, log).RunDaily(coa, runOptions(cfg)); err != nil {
			log.Error("Scheduled daily run failed", err, nil)
		}
	})
	if err != nil {
		log.Fatal("Failed to schedule daily run", err, map[string]interface{}{
			"spec": dailyCronSpec,
		})
	}

	c.Start()
	log.Info("Daily daemon started", map[string]interface{}{"spec": dailyCronSpec})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down daemon...", nil)
	stopCtx := c.Stop()
	<-stopCtx.Done()
	log.Info("Daemon exited", nil)
}
