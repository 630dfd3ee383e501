package tasks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jocko2121/flashcard-app/internal/config"
)

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "flashcards.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	// The queue gets its own database next to the main one
	tasksDBPath := filepath.Join(tmpDir, "flashcards-tasks.db")
	_, err = os.Stat(tasksDBPath)
	assert.NoError(t, err, "tasks database should be created")

	err = client.Close()
	assert.NoError(t, err)
}

func TestClientStartStop(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "flashcards.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	success := client.Stop(stopCtx)
	assert.True(t, success, "stop should succeed gracefully")
}

type recordedStats struct {
	totalSets      int64
	totalCards     int64
	completedCards int64
	settings       map[string]string
}

func (s *recordedStats) GetStats() (int64, int64, int64, error) {
	return s.totalSets, s.totalCards, s.completedCards, nil
}

func (s *recordedStats) SetSetting(key, value string) error {
	if s.settings == nil {
		s.settings = make(map[string]string)
	}
	s.settings[key] = value
	return nil
}

func TestRefreshStatsProcessor(t *testing.T) {
	source := &recordedStats{totalSets: 3, totalCards: 12, completedCards: 5}

	processor := RefreshStatsProcessor(source)
	err := processor(context.Background(), RefreshStatsTask{})
	require.NoError(t, err)

	assert.Equal(t, "3", source.settings["stats_total_sets"])
	assert.Equal(t, "12", source.settings["stats_total_cards"])
	assert.Equal(t, "5", source.settings["stats_completed_cards"])
	assert.NotEmpty(t, source.settings["stats_refreshed_at"])
}

type countingCleaner struct {
	retention time.Duration
	deleted   int64
}

func (c *countingCleaner) DeleteOldEvents(retention time.Duration) (int64, error) {
	c.retention = retention
	return c.deleted, nil
}

func TestCleanupAuditEventsProcessor(t *testing.T) {
	cleaner := &countingCleaner{deleted: 3}

	processor := CleanupAuditEventsProcessor(cleaner)
	err := processor(context.Background(), CleanupAuditEventsTask{RetentionDays: 7})
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cleaner.retention)

	// Zero falls back to the default retention
	err = processor(context.Background(), CleanupAuditEventsTask{})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAuditRetentionDays*24*time.Hour, cleaner.retention)
}

func TestCleanupAuditEventsProcessor_NilCleaner(t *testing.T) {
	processor := CleanupAuditEventsProcessor(nil)
	err := processor(context.Background(), CleanupAuditEventsTask{})
	assert.Error(t, err)
}

func TestTaskEnqueue(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "flashcards.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	executed := make(chan struct{}, 1)
	queue := backlite.NewQueue(func(ctx context.Context, task RefreshStatsTask) error {
		executed <- struct{}{}
		return nil
	})
	client.Register(queue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	_, err = client.Add(RefreshStatsTask{}).Save()
	require.NoError(t, err)

	select {
	case <-executed:
	case <-time.After(5 * time.Second):
		t.Fatal("task was not processed in time")
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	client.Stop(stopCtx)
}
