package entities

import "time"

// Setting stores application-wide key-value settings.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Setting keys for study preferences and cached statistics.
const (
	SettingKeyShowCompleted   = "show_completed"
	SettingKeyLastActiveSet   = "last_active_set"
	SettingKeyTheme           = "theme"
	SettingKeyStudyMode       = "study_mode"
	SettingKeyLastStudyAt     = "last_study_session"
	SettingKeyStatsTotalSets  = "stats_total_sets"
	SettingKeyStatsTotalCards = "stats_total_cards"
	SettingKeyStatsCompleted  = "stats_completed_cards"
	SettingKeyStatsRefreshed  = "stats_refreshed_at"
)
