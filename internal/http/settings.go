package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jocko2121/flashcard-app/internal/audit"
	"github.com/Jocko2121/flashcard-app/internal/database"
	"github.com/Jocko2121/flashcard-app/internal/entities"
)

type SettingsController struct {
	db      *database.Database
	auditor *audit.Service
}

func NewSettingsController(db *database.Database, auditor *audit.Service) *SettingsController {
	return &SettingsController{
		db:      db,
		auditor: auditor,
	}
}

// SettingsResponse is the client-facing view of the settings table.
type SettingsResponse struct {
	ShowCompleted bool   `json:"showCompleted"`
	LastActiveSet *uint  `json:"lastActiveSet"`
	Theme         string `json:"theme"`
	StudyMode     string `json:"studyMode"`
}

type updateSettingsRequest struct {
	ShowCompleted *bool   `json:"showCompleted"`
	LastActiveSet *uint   `json:"lastActiveSet"`
	Theme         *string `json:"theme"`
	StudyMode     *string `json:"studyMode"`
}

var validThemes = map[string]bool{"light": true, "dark": true}
var validStudyModes = map[string]bool{"normal": true, "shuffle": true}

func (sc *SettingsController) settingOr(key, fallback string) string {
	setting, err := sc.db.GetSetting(key)
	if err != nil || setting == nil {
		return fallback
	}
	return setting.Value
}

func (sc *SettingsController) currentSettings() SettingsResponse {
	resp := SettingsResponse{
		ShowCompleted: sc.settingOr(entities.SettingKeyShowCompleted, "true") == "true",
		Theme:         sc.settingOr(entities.SettingKeyTheme, "light"),
		StudyMode:     sc.settingOr(entities.SettingKeyStudyMode, "normal"),
	}

	if raw := sc.settingOr(entities.SettingKeyLastActiveSet, ""); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			setID := uint(id)
			resp.LastActiveSet = &setID
		}
	}
	return resp
}

// GetSettings returns the current application settings.
// GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, sc.currentSettings())
}

// UpdateSettings applies a partial settings update. Absent fields are
// left untouched.
// PUT /api/settings
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if req.Theme != nil && !validThemes[*req.Theme] {
		respondBadRequest(c, "theme must be 'light' or 'dark'")
		return
	}
	if req.StudyMode != nil && !validStudyModes[*req.StudyMode] {
		respondBadRequest(c, "studyMode must be 'normal' or 'shuffle'")
		return
	}
	if req.LastActiveSet != nil {
		if _, err := sc.db.GetSetByID(*req.LastActiveSet); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondNotFound(c, "set")
				return
			}
			respondInternalError(c, err, "update settings")
			return
		}
	}

	if req.ShowCompleted != nil {
		if err := sc.db.SetSetting(entities.SettingKeyShowCompleted, strconv.FormatBool(*req.ShowCompleted)); err != nil {
			respondInternalError(c, err, "update settings")
			return
		}
	}
	if req.LastActiveSet != nil {
		if err := sc.db.SetSetting(entities.SettingKeyLastActiveSet, strconv.FormatUint(uint64(*req.LastActiveSet), 10)); err != nil {
			respondInternalError(c, err, "update settings")
			return
		}
	}
	if req.Theme != nil {
		if err := sc.db.SetSetting(entities.SettingKeyTheme, *req.Theme); err != nil {
			respondInternalError(c, err, "update settings")
			return
		}
	}
	if req.StudyMode != nil {
		if err := sc.db.SetSetting(entities.SettingKeyStudyMode, *req.StudyMode); err != nil {
			respondInternalError(c, err, "update settings")
			return
		}
	}

	if sc.auditor != nil {
		sc.auditor.LogSettings("settings_update", "Updated application settings")
	}

	c.JSON(http.StatusOK, sc.currentSettings())
}
