package importer

import (
	"fmt"
	"unicode/utf8"
)

// FieldError describes a single field-level validation failure.
// ExistingSetID is only populated for duplicate-name warnings.
type FieldError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	ExistingSetID uint   `json:"existingSetId,omitempty"`
}

// Validate re-checks a draft against the same field constraints the
// parser enforces. All rules are checked independently; the result is
// the full list of failures, empty when the draft is valid. Per-card
// checks are skipped when the cards rule itself fails.
func Validate(draft *Draft) []FieldError {
	var errs []FieldError

	if draft == nil {
		return []FieldError{
			{Field: "name", Message: "Set name is required"},
			{Field: "cards", Message: "At least one card is required"},
		}
	}

	if draft.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Set name is required"})
	} else if utf8.RuneCountInString(draft.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "Set name must be 100 characters or less"})
	}

	if utf8.RuneCountInString(draft.Description) > MaxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "Set description must be 500 characters or less"})
	}

	switch {
	case len(draft.Cards) == 0:
		errs = append(errs, FieldError{Field: "cards", Message: "At least one card is required"})
	case len(draft.Cards) > MaxCards:
		errs = append(errs, FieldError{Field: "cards", Message: "Maximum 100 cards allowed"})
	default:
		for i, card := range draft.Cards {
			if card.Question == "" {
				errs = append(errs, FieldError{Field: fmt.Sprintf("cards[%d].question", i), Message: "Question is required"})
			} else if utf8.RuneCountInString(card.Question) > MaxQuestionLength {
				errs = append(errs, FieldError{Field: fmt.Sprintf("cards[%d].question", i), Message: "Question must be 1000 characters or less"})
			}

			if card.Answer == "" {
				errs = append(errs, FieldError{Field: fmt.Sprintf("cards[%d].answer", i), Message: "Answer is required"})
			} else if utf8.RuneCountInString(card.Answer) > MaxAnswerLength {
				errs = append(errs, FieldError{Field: fmt.Sprintf("cards[%d].answer", i), Message: "Answer must be 1000 characters or less"})
			}
		}
	}

	return errs
}
