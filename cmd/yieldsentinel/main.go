package main

import (
	"os"
	"os/signal"
	"syscall"

	"YieldSentinel/internal/chart"
	"YieldSentinel/internal/collector"
	"YieldSentinel/internal/config"
	"YieldSentinel/internal/log"
	"YieldSentinel/internal/notifier"
	"YieldSentinel/internal/scheduler"
	"YieldSentinel/internal/workflow"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := log.Init(cfg.Log.Debug); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer log.Sync()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}
	log.Infof("YieldSentinel starting")

	// Init loader
	var loader collector.Loader
	switch cfg.Data.Source {
	case config.SourceFred:
		loader = collector.NewFredFetcher(cfg.Data.FredBaseURL, cfg.Proxy)
	case config.SourceSQLite:
		sl, err := collector.NewSQLiteLoader(cfg.Data.SQLitePath)
		if err != nil {
			log.Fatalf("open sqlite source: %v", err)
		}
		defer sl.Close()
		loader = sl
	default:
		loader = collector.NewCSVLoader(cfg.Data.Dir)
	}
	log.Infof("data source: %s", loader.Name())

	wf := workflow.New(
		collector.NewCollector(loader),
		chart.NewFileRenderer(cfg.Chart.Output),
		notifier.NewLogNotifier(),
	)
	wf.Short = cfg.Series.Short.Spec()
	wf.Long = cfg.Series.Long.Spec()
	if cfg.Chart.Title != "" {
		wf.Title = cfg.Chart.Title
	}

	sched := scheduler.NewScheduler(wf)
	if err := sched.RunNow(); err != nil {
		log.Fatalf("recession visual: %v", err)
	}
	if cfg.Schedule.Cron == "" {
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("register schedule: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	log.Infof("YieldSentinel is running on %q. Press Ctrl+C to stop.", cfg.Schedule.Cron)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Infof("shutdown signal received, stopping...")
}
