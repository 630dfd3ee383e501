package importer

import (
	"errors"
	"log"
	"sync"

	"github.com/Jocko2121/flashcard-app/internal/entities"
)

// Store is the persistence contract the processor depends on. The
// database package satisfies it; tests substitute their own.
//
// DeleteSet must remove the set and all of its cards atomically, since
// it doubles as the processor's compensating action.
type Store interface {
	ListSets() ([]entities.CardSet, error)
	CreateSet(name, description string) (*entities.CardSet, error)
	CreateCard(setID uint, question, answer string) (*entities.Card, error)
	DeleteSet(setID uint) (bool, error)
}

// RollbackRecorder receives rollback failures that leave an orphaned
// set behind. Implemented by the audit service.
type RollbackRecorder interface {
	LogRollbackFailure(setID uint, setName string, err error)
}

// ImportError describes a semantic or persistence failure during an
// import. Details carries structured context for the API response,
// such as the conflicting set ID or how far card creation got.
type ImportError struct {
	Message string
	Details map[string]any
}

func (e *ImportError) Error() string {
	return e.Message
}

// ImportResult is a successfully persisted draft.
type ImportResult struct {
	Set   *entities.CardSet
	Cards []entities.Card
}

// Processor persists validated drafts. The mutex serializes imports so
// that the duplicate-name check and the set creation act as one step;
// two concurrent imports of the same name cannot both pass the check.
type Processor struct {
	mu       sync.Mutex
	store    Store
	recorder RollbackRecorder
}

// NewProcessor creates a processor on top of the given store. The
// recorder may be nil, in which case rollback failures are only logged.
func NewProcessor(store Store, recorder RollbackRecorder) *Processor {
	return &Processor{store: store, recorder: recorder}
}

// DuplicateOf returns the existing set with the given name, or nil.
// Used by the preview endpoint to warn before an import is attempted.
func (p *Processor) DuplicateOf(name string) (*entities.CardSet, error) {
	sets, err := p.store.ListSets()
	if err != nil {
		return nil, err
	}
	for i := range sets {
		if sets[i].Name == name {
			return &sets[i], nil
		}
	}
	return nil, nil
}

// Process persists a draft as a new set with its cards. On any failure
// after the set exists, everything created so far is rolled back in
// reverse order before the error is returned. Every returned error is
// an *ImportError.
func (p *Processor) Process(draft *Draft) (*ImportResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result, err := p.process(draft)
	if err != nil {
		var importErr *ImportError
		if errors.As(err, &importErr) {
			return nil, err
		}
		// Unexpected store failures surface as a generic import error
		return nil, &ImportError{
			Message: "Failed to process import",
			Details: map[string]any{"originalError": err.Error()},
		}
	}
	return result, nil
}

func (p *Processor) process(draft *Draft) (*ImportResult, error) {
	if draft == nil || draft.Name == "" || draft.Cards == nil {
		return nil, &ImportError{Message: "Invalid import data"}
	}
	if len(draft.Cards) == 0 {
		return nil, &ImportError{Message: "At least one card is required"}
	}

	existing, err := p.DuplicateOf(draft.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ImportError{
			Message: "A set with this name already exists",
			Details: map[string]any{
				"field":         "name",
				"existingSetId": existing.ID,
			},
		}
	}

	set, err := p.store.CreateSet(draft.Name, draft.Description)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, &ImportError{Message: "Failed to create set"}
	}

	// Compensating actions, run in reverse on failure. Today the set
	// deletion cascades to its cards, so one action covers everything.
	var undo []func()
	undo = append(undo, func() { p.rollbackSet(set) })
	rollback := func() {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}

	cards := make([]entities.Card, 0, len(draft.Cards))
	for _, dc := range draft.Cards {
		if dc.Question == "" || dc.Answer == "" {
			rollback()
			return nil, &ImportError{
				Message: "Invalid card data",
				Details: map[string]any{
					"createdCards": len(cards),
					"failedCard":   dc,
				},
			}
		}

		card, err := p.store.CreateCard(set.ID, dc.Question, dc.Answer)
		if err != nil || card == nil {
			rollback()
			return nil, &ImportError{
				Message: "Failed to create cards",
				Details: map[string]any{
					"createdCards": len(cards),
					"failedCard":   dc,
				},
			}
		}
		cards = append(cards, *card)
	}

	return &ImportResult{Set: set, Cards: cards}, nil
}

// rollbackSet deletes a half-imported set. A failure here leaves an
// orphaned set behind, which is recorded but not escalated: the caller
// already has a more useful error to return.
func (p *Processor) rollbackSet(set *entities.CardSet) {
	if _, err := p.store.DeleteSet(set.ID); err != nil {
		log.Printf("Failed to roll back set %d (%s): %v", set.ID, set.Name, err)
		if p.recorder != nil {
			p.recorder.LogRollbackFailure(set.ID, set.Name, err)
		}
	}
}
