package exporters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jocko2121/flashcard-app/internal/entities"
	"github.com/Jocko2121/flashcard-app/internal/importer"
)

func TestTextExporter_Export(t *testing.T) {
	set := &entities.CardSet{
		Name:        "Math Basics",
		Description: "Basic arithmetic questions",
		Cards: []entities.Card{
			{Question: "What is 2+2?", Answer: "4"},
			{Question: "Name two primes", Answer: "2\n3"},
		},
	}

	out := NewTextExporter().Export(set)

	expected := "Math Basics\nBasic arithmetic questions\n\nWhat is 2+2?\n4\n\nName two primes\n2\n3\n"
	assert.Equal(t, expected, out)
}

func TestTextExporter_RoundTrip(t *testing.T) {
	set := &entities.CardSet{
		Name:        "Chemistry",
		Description: "Periodic table",
		Cards: []entities.Card{
			{Question: "Symbol for gold?", Answer: "Au"},
			{Question: "First three elements?", Answer: "Hydrogen\nHelium\nLithium"},
			{Question: "Symbol for iron?", Answer: "Fe"},
		},
	}

	out := NewTextExporter().Export(set)

	draft, err := importer.Parse(out)
	require.NoError(t, err)

	assert.Equal(t, set.Name, draft.Name)
	assert.Equal(t, set.Description, draft.Description)
	require.Len(t, draft.Cards, len(set.Cards))
	for i, card := range set.Cards {
		assert.Equal(t, card.Question, draft.Cards[i].Question)
		assert.Equal(t, card.Answer, draft.Cards[i].Answer)
	}
}

func TestTextExporter_Filename(t *testing.T) {
	exporter := NewTextExporter()

	assert.Equal(t, "Math-Basics.txt", exporter.Filename(&entities.CardSet{Name: "Math Basics"}))
	assert.Equal(t, "set.txt", exporter.Filename(&entities.CardSet{Name: "日本語"}))
}
