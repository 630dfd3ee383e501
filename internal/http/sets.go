package http

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jocko2121/flashcard-app/internal/audit"
	"github.com/Jocko2121/flashcard-app/internal/database"
	"github.com/Jocko2121/flashcard-app/internal/exporters"
	"github.com/Jocko2121/flashcard-app/internal/importer"
)

type SetsController struct {
	db       *database.Database
	auditor  *audit.Service
	exporter *exporters.TextExporter
}

func NewSetsController(db *database.Database, auditor *audit.Service) *SetsController {
	return &SetsController{
		db:       db,
		auditor:  auditor,
		exporter: exporters.NewTextExporter(),
	}
}

type setRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func validateSetFields(name, description string, requireName bool) string {
	if requireName && name == "" {
		return "Set name is required"
	}
	if utf8.RuneCountInString(name) > importer.MaxNameLength {
		return "Set name must be 100 characters or less"
	}
	if utf8.RuneCountInString(description) > importer.MaxDescriptionLength {
		return "Set description must be 500 characters or less"
	}
	return ""
}

// GetAllSets returns every set with its cards.
// GET /api/sets
func (sc *SetsController) GetAllSets(c *gin.Context) {
	sets, err := sc.db.ListSets()
	if err != nil {
		respondInternalError(c, err, "list sets")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sets": sets, "count": len(sets)})
}

// GetSet returns a single set with its cards.
// GET /api/sets/:id
func (sc *SetsController) GetSet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	set, err := sc.db.GetSetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "set")
			return
		}
		respondInternalError(c, err, "get set")
		return
	}
	c.JSON(http.StatusOK, set)
}

// CreateSet creates an empty set.
// POST /api/sets
func (sc *SetsController) CreateSet(c *gin.Context) {
	var req setRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if msg := validateSetFields(req.Name, req.Description, true); msg != "" {
		respondBadRequest(c, msg)
		return
	}

	if existing, err := sc.db.GetSetByName(req.Name); err == nil && existing != nil {
		respondBadRequestDetails(c, "A set with this name already exists", gin.H{
			"field":         "name",
			"existingSetId": existing.ID,
		})
		return
	}

	set, err := sc.db.CreateSet(req.Name, req.Description)
	if err != nil {
		respondInternalError(c, err, "create set")
		return
	}
	respondCreated(c, set)
}

// UpdateSet renames a set or changes its description.
// PUT /api/sets/:id
func (sc *SetsController) UpdateSet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req setRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if msg := validateSetFields(req.Name, req.Description, false); msg != "" {
		respondBadRequest(c, msg)
		return
	}

	if req.Name != "" {
		if existing, err := sc.db.GetSetByName(req.Name); err == nil && existing != nil && existing.ID != id {
			respondBadRequestDetails(c, "A set with this name already exists", gin.H{
				"field":         "name",
				"existingSetId": existing.ID,
			})
			return
		}
	}

	set, err := sc.db.UpdateSet(id, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "set")
			return
		}
		respondInternalError(c, err, "update set")
		return
	}
	c.JSON(http.StatusOK, set)
}

// DeleteSet removes a set together with all of its cards.
// DELETE /api/sets/:id
func (sc *SetsController) DeleteSet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	set, err := sc.db.GetSetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "set")
			return
		}
		respondInternalError(c, err, "delete set")
		return
	}

	deleted, err := sc.db.DeleteSet(id)
	if err != nil {
		respondInternalError(c, err, "delete set")
		return
	}
	if !deleted {
		respondNotFound(c, "set")
		return
	}

	if sc.auditor != nil {
		sc.auditor.LogDelete("set", id, set.Name)
	}
	c.Status(http.StatusNoContent)
}

// ExportSet renders a set in the plain-text import format.
// GET /api/sets/:id/export
func (sc *SetsController) ExportSet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	set, err := sc.db.GetSetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "set")
			return
		}
		respondInternalError(c, err, "export set")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+sc.exporter.Filename(set)+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(sc.exporter.Export(set)))
}
