package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jocko2121/flashcard-app/internal/database"
	"github.com/Jocko2121/flashcard-app/internal/entities"
	"github.com/Jocko2121/flashcard-app/internal/tasks"
)

type StatsController struct {
	db         *database.Database
	taskClient *tasks.Client
}

func NewStatsController(db *database.Database, taskClient *tasks.Client) *StatsController {
	return &StatsController{db: db, taskClient: taskClient}
}

// StatsResponse aggregates study progress counters.
type StatsResponse struct {
	TotalSets        int64  `json:"totalSets"`
	TotalCards       int64  `json:"totalCards"`
	CompletedCards   int64  `json:"completedCards"`
	LastStudySession string `json:"lastStudySession,omitempty"`
}

// GetStats returns live counters plus the last recorded study session.
// GET /api/stats
func (sc *StatsController) GetStats(c *gin.Context) {
	totalSets, totalCards, completedCards, err := sc.db.GetStats()
	if err != nil {
		respondInternalError(c, err, "stats")
		return
	}

	resp := StatsResponse{
		TotalSets:      totalSets,
		TotalCards:     totalCards,
		CompletedCards: completedCards,
	}
	if setting, err := sc.db.GetSetting(entities.SettingKeyLastStudyAt); err == nil && setting != nil {
		resp.LastStudySession = setting.Value
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshStats enqueues a background snapshot refresh.
// POST /api/stats/refresh
func (sc *StatsController) RefreshStats(c *gin.Context) {
	if sc.taskClient == nil {
		respondBadRequest(c, "task queue not enabled")
		return
	}

	ids, err := sc.taskClient.Add(tasks.RefreshStatsTask{}).Save()
	if err != nil {
		respondInternalError(c, err, "enqueue stats refresh")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Stats refresh queued",
		"task_id": firstOrEmpty(ids),
	})
}

func firstOrEmpty(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
