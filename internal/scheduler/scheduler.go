package scheduler

import (
	"fmt"
	"log"

	"PriceSentinel/internal/trade"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron    *cron.Cron
	Service *trade.Service
}

// NewScheduler creates a new Scheduler.
func NewScheduler(svc *trade.Service) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
	}
}

// RegisterAll registers the daily maintenance task and the WAL checkpoint.
func (s *Scheduler) RegisterAll(dailyCron, checkpointCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyMaintenance); err != nil {
		return fmt.Errorf("register daily maintenance: %w", err)
	}
	if _, err := s.Cron.AddFunc(checkpointCron, s.checkpoint); err != nil {
		return fmt.Errorf("register checkpoint: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunMaintenanceNow executes the daily maintenance immediately (manual trigger).
func (s *Scheduler) RunMaintenanceNow() {
	s.dailyMaintenance()
}

// dailyMaintenance sweeps expired records and re-validates canonical names.
// A cleanup failure (usually a missing catalog) is logged and skipped so the
// retention sweep still runs on schedule.
func (s *Scheduler) dailyMaintenance() {
	if _, err := s.Service.RetentionSweep(); err != nil {
		log.Printf("[ERROR] retention sweep: %v", err)
	}
	result, err := s.Service.CleanupTrades("")
	if err != nil {
		log.Printf("[WARN] cleanup skipped: %v", err)
		return
	}
	log.Printf("[INFO] daily cleanup: removed %d, kept %d", result.Removed, result.Kept)
}

func (s *Scheduler) checkpoint() {
	if err := s.Service.Checkpoint(); err != nil {
		log.Printf("[ERROR] wal checkpoint: %v", err)
	}
}
