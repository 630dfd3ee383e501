// Package exporters renders card sets back into the plain-text import
// format, so that an exported set can be re-imported unchanged.
package exporters

import (
	"strings"

	"github.com/Jocko2121/flashcard-app/internal/entities"
)

// TextExporter renders sets in the line-oriented import format: name,
// description, then one blank-line-separated block per card.
type TextExporter struct{}

func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export renders a single set. Cards keep their stored order, and
// multi-line answers keep their internal newlines, so parsing the
// output yields an equivalent draft.
func (e *TextExporter) Export(set *entities.CardSet) string {
	var b strings.Builder

	b.WriteString(set.Name)
	b.WriteString("\n")
	b.WriteString(set.Description)
	b.WriteString("\n")

	for _, card := range set.Cards {
		b.WriteString("\n")
		b.WriteString(card.Question)
		b.WriteString("\n")
		b.WriteString(card.Answer)
		b.WriteString("\n")
	}

	return b.String()
}

// Filename derives a safe download filename for a set export.
func (e *TextExporter) Filename(set *entities.CardSet) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, set.Name)
	if name == "" {
		name = "set"
	}
	return name + ".txt"
}
