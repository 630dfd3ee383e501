package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jocko2121/flashcard-app/internal/audit"
	"github.com/Jocko2121/flashcard-app/internal/importer"
)

type ImportController struct {
	processor *importer.Processor
	auditor   *audit.Service
}

func NewImportController(processor *importer.Processor, auditor *audit.Service) *ImportController {
	return &ImportController{
		processor: processor,
		auditor:   auditor,
	}
}

type importRequest struct {
	Text string `json:"text"`
}

// ValidationResult mirrors the preview response's validation block.
type ValidationResult struct {
	IsValid bool                  `json:"isValid"`
	Errors  []importer.FieldError `json:"errors"`
}

// Preview parses and validates import text without persisting anything.
// A duplicate set name is reported as a warning here, not a failure, so
// the client can show it before the user commits.
// POST /api/import/preview
func (ic *ImportController) Preview(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	draft, err := importer.Parse(req.Text)
	if err != nil {
		ic.respondPipelineError(c, err)
		return
	}

	validationErrors := importer.Validate(draft)

	if existing, err := ic.processor.DuplicateOf(draft.Name); err != nil {
		respondInternalError(c, err, "import preview")
		return
	} else if existing != nil {
		validationErrors = append(validationErrors, importer.FieldError{
			Field:         "name",
			Message:       "A set with this name already exists",
			ExistingSetID: existing.ID,
		})
	}

	if validationErrors == nil {
		validationErrors = []importer.FieldError{}
	}

	c.JSON(http.StatusOK, gin.H{
		"set": gin.H{
			"name":        draft.Name,
			"description": draft.Description,
		},
		"cards": draft.Cards,
		"validation": ValidationResult{
			IsValid: len(validationErrors) == 0,
			Errors:  validationErrors,
		},
	})
}

// Import parses, validates, and persists import text as a new set.
// POST /api/import
func (ic *ImportController) Import(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	draft, err := importer.Parse(req.Text)
	if err != nil {
		ic.respondPipelineError(c, err)
		return
	}

	if validationErrors := importer.Validate(draft); len(validationErrors) > 0 {
		respondBadRequestDetails(c, validationErrors[0].Message, validationErrors)
		return
	}

	result, err := ic.processor.Process(draft)
	if err != nil {
		if ic.auditor != nil {
			ic.auditor.LogImport(draft.Name, 0, err)
		}
		ic.respondPipelineError(c, err)
		return
	}

	if ic.auditor != nil {
		ic.auditor.LogImport(result.Set.Name, len(result.Cards), nil)
	}

	respondCreated(c, gin.H{
		"set":     result.Set,
		"cards":   result.Cards,
		"message": fmt.Sprintf("Successfully imported %d cards", len(result.Cards)),
	})
}

// respondPipelineError maps the importer's error types onto API
// responses. Parse and import failures are client errors; anything
// else is unexpected.
func (ic *ImportController) respondPipelineError(c *gin.Context, err error) {
	var parseErr *importer.ParseError
	if errors.As(err, &parseErr) {
		details := gin.H{}
		if parseErr.LineNumber > 0 {
			details["line"] = parseErr.LineNumber
		}
		if parseErr.Field != "" {
			details["field"] = parseErr.Field
		}
		if len(details) == 0 {
			respondBadRequest(c, parseErr.Message)
			return
		}
		respondBadRequestDetails(c, parseErr.Message, details)
		return
	}

	var importErr *importer.ImportError
	if errors.As(err, &importErr) {
		if importErr.Details == nil {
			respondBadRequest(c, importErr.Message)
			return
		}
		respondBadRequestDetails(c, importErr.Message, importErr.Details)
		return
	}

	respondInternalError(c, err, "import")
}
