// Package scheduler runs the sync-server retention job.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// StalePruner removes rows last synced before the cutoff.
type StalePruner interface {
	PruneStale(cutoff time.Time) (int64, error)
}

// RetentionConfig controls the pruning job.
type RetentionConfig struct {
	Enabled bool
	// Schedule is a standard 5-field cron expression.
	Schedule string
	// Days is the retention horizon; devices silent longer than this are dropped.
	Days int
}

// RetentionScheduler periodically prunes devices that stopped pushing.
type RetentionScheduler struct {
	store  StalePruner
	config RetentionConfig

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewRetentionScheduler creates a new scheduler instance.
func NewRetentionScheduler(store StalePruner, config RetentionConfig) *RetentionScheduler {
	return &RetentionScheduler{
		store:  store,
		config: config,
		cron:   cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if retention is enabled.
func (s *RetentionScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("Retention scheduler: disabled")
		return nil
	}

	if s.config.Days <= 0 {
		return fmt.Errorf("invalid retention horizon: %d days", s.config.Days)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.runPrune()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule retention job with '%s': %w", s.config.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Retention scheduler: started with schedule '%s', horizon %d days",
		s.config.Schedule, s.config.Days)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *RetentionScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Retention scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *RetentionScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next prune will occur.
func (s *RetentionScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// RunNow triggers an immediate prune.
func (s *RetentionScheduler) RunNow() {
	s.runPrune()
}

func (s *RetentionScheduler) runPrune() {
	cutoff := time.Now().AddDate(0, 0, -s.config.Days)

	removed, err := s.store.PruneStale(cutoff)
	if err != nil {
		log.Printf("Retention: prune failed: %v", err)
		return
	}

	if removed > 0 {
		log.Printf("Retention: removed %d devices silent since %s", removed, cutoff.Format("2006-01-02"))
	}
}
