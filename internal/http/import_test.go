package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleImportText = `Math Basics
Basic arithmetic questions

What is 2+2?
4

What is 5x5?
25
`

func TestImport_CreatesSetAndCards(t *testing.T) {
	db, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "POST", "/api/import", map[string]string{"text": sampleImportText})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Successfully imported 2 cards", body["message"])

	set := body["set"].(map[string]any)
	assert.Equal(t, "Math Basics", set["name"])
	assert.NotEmpty(t, set["public_id"])

	cards := body["cards"].([]any)
	require.Len(t, cards, 2)
	first := cards[0].(map[string]any)
	assert.Equal(t, "What is 2+2?", first["question"])
	assert.Equal(t, "4", first["answer"])

	// Persisted, not just echoed
	sets, err := db.ListSets()
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Len(t, sets[0].Cards, 2)
}

func TestImport_EmptyText(t *testing.T) {
	_, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "POST", "/api/import", map[string]string{"text": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "No text provided", body["error"])
}

func TestImport_ParseErrorIncludesLine(t *testing.T) {
	_, router, cleanup := setupTestRouter(t)
	defer cleanup()

	text := "Name\ndesc\n\n" + strings.Repeat("q", 1001) + "\nanswer\n"
	w := doJSON(t, router, "POST", "/api/import", map[string]string{"text": text})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Question must be 1000 characters or less", body["error"])
	details := body["details"].(map[string]any)
	assert.Equal(t, float64(4), details["line"])
	assert.Equal(t, "question", details["field"])
}

func TestImport_DuplicateName(t *testing.T) {
	db, router, cleanup := setupTestRouter(t)
	defer cleanup()

	existing, err := db.CreateSet("Math Basics", "")
	require.NoError(t, err)

	w := doJSON(t, router, "POST", "/api/import", map[string]string{"text": sampleImportText})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "A set with this name already exists", body["error"])
	details := body["details"].(map[string]any)
	assert.Equal(t, "name", details["field"])
	assert.Equal(t, float64(existing.ID), details["existingSetId"])
}

func TestImport_MissingAnswerRejected(t *testing.T) {
	db, router, cleanup := setupTestRouter(t)
	defer cleanup()

	// Last card has a question but no answer; validation rejects it
	// before anything is persisted
	text := "Partial\ndesc\n\nQ1?\nA1\n\nOrphan question?\n"
	w := doJSON(t, router, "POST", "/api/import", map[string]string{"text": text})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Answer is required", body["error"])

	sets, err := db.ListSets()
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestImport_InvalidBody(t *testing.T) {
	_, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "POST", "/api/import", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportPreview_ValidText(t *testing.T) {
	db, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "POST", "/api/import/preview", map[string]string{"text": sampleImportText})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	set := body["set"].(map[string]any)
	assert.Equal(t, "Math Basics", set["name"])
	assert.Equal(t, "Basic arithmetic questions", set["description"])

	cards := body["cards"].([]any)
	assert.Len(t, cards, 2)

	validation := body["validation"].(map[string]any)
	assert.Equal(t, true, validation["isValid"])
	assert.Empty(t, validation["errors"])

	// Preview never persists
	sets, err := db.ListSets()
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestImportPreview_DuplicateNameIsWarning(t *testing.T) {
	db, router, cleanup := setupTestRouter(t)
	defer cleanup()

	existing, err := db.CreateSet("Math Basics", "")
	require.NoError(t, err)

	w := doJSON(t, router, "POST", "/api/import/preview", map[string]string{"text": sampleImportText})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	validation := body["validation"].(map[string]any)
	assert.Equal(t, false, validation["isValid"])

	errs := validation["errors"].([]any)
	require.Len(t, errs, 1)
	dup := errs[0].(map[string]any)
	assert.Equal(t, "name", dup["field"])
	assert.Equal(t, "A set with this name already exists", dup["message"])
	assert.Equal(t, float64(existing.ID), dup["existingSetId"])
}

func TestImportPreview_ReportsAllValidationErrors(t *testing.T) {
	_, router, cleanup := setupTestRouter(t)
	defer cleanup()

	text := "Partial\ndesc\n\nQ1?\nA1\n\nOrphan question?\n"
	w := doJSON(t, router, "POST", "/api/import/preview", map[string]string{"text": text})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	validation := body["validation"].(map[string]any)
	assert.Equal(t, false, validation["isValid"])

	errs := validation["errors"].([]any)
	require.Len(t, errs, 1)
	failure := errs[0].(map[string]any)
	assert.Equal(t, "cards[1].answer", failure["field"])
	assert.Equal(t, "Answer is required", failure["message"])
}
