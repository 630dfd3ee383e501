package tasks

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/Jocko2121/flashcard-app/internal/entities"
)

// StatsSource provides the counters the snapshot is built from.
type StatsSource interface {
	GetStats() (totalSets, totalCards, completedCards int64, err error)
	SetSetting(key, value string) error
}

// RefreshStatsTask recomputes study counters and stores a timestamped
// snapshot in the settings table. GET /api/stats counts live; the
// snapshot keys exist for operators, who can inspect the settings table
// to see the counters as of the last maintenance run without touching
// the API.
type RefreshStatsTask struct{}

// Config returns the queue configuration for stats refresh tasks.
func (t RefreshStatsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "refresh_stats",
		MaxAttempts: 2,
		Backoff:     time.Minute,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RefreshStatsProcessor creates a processor function for RefreshStatsTask.
func RefreshStatsProcessor(source StatsSource) backlite.QueueProcessor[RefreshStatsTask] {
	return func(ctx context.Context, task RefreshStatsTask) error {
		if source == nil {
			return fmt.Errorf("stats source not configured")
		}

		totalSets, totalCards, completedCards, err := source.GetStats()
		if err != nil {
			return fmt.Errorf("refresh stats: %w", err)
		}

		if err := source.SetSetting(entities.SettingKeyStatsTotalSets, strconv.FormatInt(totalSets, 10)); err != nil {
			return fmt.Errorf("refresh stats: %w", err)
		}
		if err := source.SetSetting(entities.SettingKeyStatsTotalCards, strconv.FormatInt(totalCards, 10)); err != nil {
			return fmt.Errorf("refresh stats: %w", err)
		}
		if err := source.SetSetting(entities.SettingKeyStatsCompleted, strconv.FormatInt(completedCards, 10)); err != nil {
			return fmt.Errorf("refresh stats: %w", err)
		}
		if err := source.SetSetting(entities.SettingKeyStatsRefreshed, time.Now().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("refresh stats: %w", err)
		}

		log.Printf("[TASK] Stats snapshot refreshed: %d sets, %d cards, %d completed", totalSets, totalCards, completedCards)
		return nil
	}
}

// NewRefreshStatsQueue creates a backlite queue for stats refresh tasks.
func NewRefreshStatsQueue(source StatsSource) backlite.Queue {
	return backlite.NewQueue(RefreshStatsProcessor(source))
}
