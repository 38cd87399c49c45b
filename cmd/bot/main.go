package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"SkinScout/internal/analyzer"
	"SkinScout/internal/collector"
	"SkinScout/internal/config"
	"SkinScout/internal/logger"
	"SkinScout/internal/market"
	"SkinScout/internal/metrics"
	"SkinScout/internal/notifier"
	"SkinScout/internal/recorder"
	"SkinScout/internal/scheduler"
	"SkinScout/internal/server"
)

func main() {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("SkinScout failed")
	}
	log.Info().Msg("SkinScout stopped")
}

// run wires and runs the bot until a shutdown signal. Deferred cleanup runs
// on every return path.
func run() error {

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	log.Info().Msg("SkinScout starting")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mr := metrics.New(reg)

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.Market.Offline {
		fetcher = collector.OfflineFetcher{}
	} else {
		steam := collector.NewSteamFetcher(collector.SteamOptions{
			BaseURL:    cfg.Market.SearchURL,
			Timeout:    cfg.Market.Timeout,
			Proxy:      cfg.Proxy,
			RatePerSec: cfg.Market.RatePerSec,
			Burst:      cfg.Market.Burst,
		})
		defer steam.Close()
		fetcher = steam
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	engine := analyzer.New(analyzer.Options{
		Fetcher:    fetcher,
		Random:     market.NewSource(cfg.Simulation.Seed),
		Policy:     &policy,
		FloorRatio: cfg.Simulation.FloorRatio,
		Timeout:    cfg.Market.Timeout,
		FetchCount: cfg.Market.FetchCount,
		ListingURL: cfg.Market.ListingURL,
		Metrics:    mr,
	})

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, engine, tn, rec, cfg.Schedule.TopCount)
	if err := sched.Register(cfg.Schedule.UpdateCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{Port: cfg.Server.Port}, engine, reg, mr)
	srv.Start()
	defer func() {
		if err := srv.Stop(context.Background()); err != nil {
			log.Error().Err(err).Msg("stop http server")
		}
	}()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info().Msg("telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, posting update now")
		go sched.RunUpdateNow()
	}

	log.Info().Msg("SkinScout is running, press Ctrl+C to stop")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	return nil
}
