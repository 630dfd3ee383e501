// Package scheduler runs periodic maintenance through the task queue.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Jocko2121/flashcard-app/internal/tasks"
)

// MaintenanceScheduler enqueues the periodic maintenance tasks (stats
// snapshot refresh and audit event cleanup) on a cron schedule. The
// heavy lifting happens in the task workers; the scheduler only
// enqueues.
type MaintenanceScheduler struct {
	taskClient    *tasks.Client
	schedule      string
	retentionDays int

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewMaintenanceScheduler creates a scheduler with a standard 5-field
// cron schedule.
func NewMaintenanceScheduler(taskClient *tasks.Client, schedule string, retentionDays int) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		taskClient:    taskClient,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler. Safe to call with a nil task client, in
// which case scheduling is skipped entirely.
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.taskClient == nil {
		log.Printf("Maintenance scheduler: task queue disabled, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.enqueueMaintenance)
	if err != nil {
		return fmt.Errorf("invalid maintenance schedule '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Maintenance scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running enqueue to
// complete.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Maintenance scheduler: stopped")
}

// RunNow enqueues the maintenance tasks immediately.
func (s *MaintenanceScheduler) RunNow() {
	go s.enqueueMaintenance()
}

// IsRunning returns whether the scheduler is active.
func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next maintenance run will occur.
func (s *MaintenanceScheduler) NextRunTime() *time.Time {
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

func (s *MaintenanceScheduler) enqueueMaintenance() {
	if _, err := s.taskClient.Add(tasks.RefreshStatsTask{}).Save(); err != nil {
		log.Printf("Maintenance scheduler: failed to enqueue stats refresh: %v", err)
	}
	if _, err := s.taskClient.Add(tasks.CleanupAuditEventsTask{RetentionDays: s.retentionDays}).Save(); err != nil {
		log.Printf("Maintenance scheduler: failed to enqueue audit cleanup: %v", err)
	}
}
