package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"PriceSentinel/internal/config"
	"PriceSentinel/internal/scheduler"
	"PriceSentinel/internal/store"
	"PriceSentinel/internal/trade"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	importPath := flag.String("import", "", "KakaoTalk chat export file to import, then exit")
	query := flag.String("query", "", "price query to answer once, then exit")
	days := flag.Int("days", 0, "lookback days for -query (0 = config default)")
	cleanup := flag.Bool("cleanup", false, "run the cleanup pass once, then exit")
	flag.Parse()

	log.Println("[INFO] PriceSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init store
	st, err := store.Open(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] open store: %v", err)
	}
	defer st.Close()

	// Init trade service
	svc := trade.NewService(cfg, st)
	if err := svc.Initialize(); err != nil {
		log.Fatalf("[FATAL] init trade service: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// One-shot modes
	if *importPath != "" {
		result, err := svc.ImportKakaoExport(ctx, *importPath)
		if err != nil {
			log.Fatalf("[FATAL] import: %v", err)
		}
		log.Printf("[INFO] imported %d trades from %d messages", result.TradesInserted, result.MessagesParsed)
		return
	}
	if *query != "" {
		result, err := svc.QueryPrice(*query, *days)
		if err != nil {
			log.Fatalf("[FATAL] query: %v", err)
		}
		fmt.Println(result.Answer)
		return
	}
	if *cleanup {
		result, err := svc.CleanupTrades("")
		if err != nil {
			log.Fatalf("[FATAL] cleanup: %v", err)
		}
		log.Printf("[INFO] cleanup: removed %d, kept %d", result.Removed, result.Kept)
		return
	}

	// Init scheduler
	sched := scheduler.NewScheduler(svc)
	if err := sched.RegisterAll(cfg.Cleanup.DailyCron, cfg.Cleanup.CheckpointCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing maintenance now")
		go sched.RunMaintenanceNow()
	}

	log.Println("[INFO] PriceSentinel is running. Press Ctrl+C to stop.")
	<-ctx.Done()
	log.Println("[INFO] shutdown signal received, stopping...")
}
