package importer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits shared by the parser and the validator.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxQuestionLength    = 1000
	MaxAnswerLength      = 1000
	MaxCards             = 100
)

// Draft is the in-memory, unpersisted result of parsing import text.
// Card order is significant: it becomes the creation order.
type Draft struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Cards       []DraftCard `json:"cards"`
}

// DraftCard is a single question/answer pair within a draft.
type DraftCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ParseError describes a syntactic problem in import text.
type ParseError struct {
	Message    string
	LineNumber int // 1-based; 0 when the error is not tied to a line
	Field      string
}

func (e *ParseError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("%s (line %d)", e.Message, e.LineNumber)
	}
	return e.Message
}

// Parse turns raw import text into a Draft.
//
// Line 1 is the set name, line 2 the description. After any blank
// lines, cards are parsed with a two-state machine: a non-blank line
// starts a card (the question), further non-blank lines accumulate the
// answer joined by newlines, and a blank line closes the card. An open
// card at end of input is closed implicitly.
func Parse(text string) (*Draft, error) {
	if text == "" {
		return nil, &ParseError{Message: "No text provided"}
	}

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	current := 0

	// Set name (first line)
	if lines[current] == "" {
		return nil, &ParseError{Message: "Set name is required", LineNumber: current + 1, Field: "name"}
	}
	name := lines[current]
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, &ParseError{Message: "Set name must be 100 characters or less", LineNumber: current + 1, Field: "name"}
	}
	current++

	// Set description (second line, optional)
	description := ""
	if current < len(lines) {
		description = lines[current]
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, &ParseError{Message: "Set description must be 500 characters or less", LineNumber: current + 1, Field: "description"}
	}
	current++

	// Skip blank lines after the set info
	for current < len(lines) && lines[current] == "" {
		current++
	}

	var cards []DraftCard
	var open *DraftCard

	for ; current < len(lines); current++ {
		line := lines[current]

		if line == "" {
			// Blank line closes the open card; extra blanks are noise
			if open != nil {
				cards = append(cards, *open)
				open = nil
			}
			continue
		}

		if open == nil {
			// Start of a new card
			if utf8.RuneCountInString(line) > MaxQuestionLength {
				return nil, &ParseError{Message: "Question must be 1000 characters or less", LineNumber: current + 1, Field: "question"}
			}
			open = &DraftCard{Question: line}
			continue
		}

		// Part of the open card's answer
		if open.Answer != "" {
			open.Answer += "\n"
		}
		open.Answer += line
		if utf8.RuneCountInString(open.Answer) > MaxAnswerLength {
			return nil, &ParseError{Message: "Answer must be 1000 characters or less", LineNumber: current + 1, Field: "answer"}
		}
	}

	// Close the last card if the input didn't end with a blank line
	if open != nil {
		cards = append(cards, *open)
	}

	if len(cards) == 0 {
		return nil, &ParseError{Message: "At least one card is required"}
	}
	if len(cards) > MaxCards {
		return nil, &ParseError{Message: "Maximum 100 cards allowed"}
	}

	return &Draft{
		Name:        name,
		Description: description,
		Cards:       cards,
	}, nil
}
