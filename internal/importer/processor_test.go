package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jocko2121/flashcard-app/internal/entities"
)

// fakeStore is an in-memory Store with per-call failure switches.
type fakeStore struct {
	sets       []entities.CardSet
	cards      map[uint][]entities.Card
	nextSetID  uint
	nextCardID uint

	listErr       error
	createSetErr  error
	createSetNil  bool // CreateSet returns nil, nil
	failCardAfter int  // fail CreateCard once this many cards exist; -1 disables
	deleteErr     error

	deletedSets []uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cards:         make(map[uint][]entities.Card),
		nextSetID:     1,
		nextCardID:    1,
		failCardAfter: -1,
	}
}

func (s *fakeStore) ListSets() ([]entities.CardSet, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.sets, nil
}

func (s *fakeStore) CreateSet(name, description string) (*entities.CardSet, error) {
	if s.createSetErr != nil {
		return nil, s.createSetErr
	}
	if s.createSetNil {
		return nil, nil
	}
	set := entities.CardSet{ID: s.nextSetID, Name: name, Description: description}
	s.nextSetID++
	s.sets = append(s.sets, set)
	return &set, nil
}

func (s *fakeStore) CreateCard(setID uint, question, answer string) (*entities.Card, error) {
	if s.failCardAfter >= 0 && len(s.cards[setID]) >= s.failCardAfter {
		return nil, errors.New("disk full")
	}
	card := entities.Card{ID: s.nextCardID, SetID: setID, Question: question, Answer: answer}
	s.nextCardID++
	s.cards[setID] = append(s.cards[setID], card)
	return &card, nil
}

func (s *fakeStore) DeleteSet(setID uint) (bool, error) {
	if s.deleteErr != nil {
		return false, s.deleteErr
	}
	s.deletedSets = append(s.deletedSets, setID)
	for i, set := range s.sets {
		if set.ID == setID {
			s.sets = append(s.sets[:i], s.sets[i+1:]...)
			delete(s.cards, setID)
			return true, nil
		}
	}
	return false, nil
}

type fakeRecorder struct {
	setIDs []uint
	names  []string
}

func (r *fakeRecorder) LogRollbackFailure(setID uint, setName string, err error) {
	r.setIDs = append(r.setIDs, setID)
	r.names = append(r.names, setName)
}

func TestProcessor_Process_Success(t *testing.T) {
	store := newFakeStore()
	processor := NewProcessor(store, nil)

	result, err := processor.Process(validDraft())
	require.NoError(t, err)

	assert.Equal(t, "Geography", result.Set.Name)
	assert.Equal(t, "Capitals of Europe", result.Set.Description)
	require.Len(t, result.Cards, 2)
	assert.Equal(t, "Capital of France?", result.Cards[0].Question)
	assert.Equal(t, result.Set.ID, result.Cards[0].SetID)
	assert.Len(t, store.cards[result.Set.ID], 2)
	assert.Empty(t, store.deletedSets)
}

func TestProcessor_Process_PreservesCardOrder(t *testing.T) {
	store := newFakeStore()
	processor := NewProcessor(store, nil)

	draft := &Draft{Name: "Ordered", Cards: []DraftCard{
		{Question: "first", Answer: "1"},
		{Question: "second", Answer: "2"},
		{Question: "third", Answer: "3"},
	}}

	result, err := processor.Process(draft)
	require.NoError(t, err)

	require.Len(t, result.Cards, 3)
	assert.Equal(t, "first", result.Cards[0].Question)
	assert.Equal(t, "second", result.Cards[1].Question)
	assert.Equal(t, "third", result.Cards[2].Question)
}

func TestProcessor_Process_InvalidDraft(t *testing.T) {
	processor := NewProcessor(newFakeStore(), nil)

	for _, draft := range []*Draft{
		nil,
		{Name: "", Cards: []DraftCard{{Question: "q", Answer: "a"}}},
		{Name: "No cards slice"},
	} {
		_, err := processor.Process(draft)

		var importErr *ImportError
		require.ErrorAs(t, err, &importErr)
		assert.Equal(t, "Invalid import data", importErr.Message)
	}
}

func TestProcessor_Process_EmptyCards(t *testing.T) {
	processor := NewProcessor(newFakeStore(), nil)

	_, err := processor.Process(&Draft{Name: "Empty", Cards: []DraftCard{}})

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "At least one card is required", importErr.Message)
}

func TestProcessor_Process_DuplicateName(t *testing.T) {
	store := newFakeStore()
	existing, err := store.CreateSet("Geography", "already here")
	require.NoError(t, err)

	processor := NewProcessor(store, nil)

	_, err = processor.Process(validDraft())

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "A set with this name already exists", importErr.Message)
	assert.Equal(t, "name", importErr.Details["field"])
	assert.Equal(t, existing.ID, importErr.Details["existingSetId"])
	// The existing set is untouched
	assert.Len(t, store.sets, 1)
}

func TestProcessor_Process_ListFailure(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("database is locked")
	processor := NewProcessor(store, nil)

	_, err := processor.Process(validDraft())

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Failed to process import", importErr.Message)
	assert.Equal(t, "database is locked", importErr.Details["originalError"])
}

func TestProcessor_Process_CreateSetError(t *testing.T) {
	store := newFakeStore()
	store.createSetErr = errors.New("constraint violation")
	processor := NewProcessor(store, nil)

	_, err := processor.Process(validDraft())

	// A store error surfaces through the generic wrapper
	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Failed to process import", importErr.Message)
	assert.Equal(t, "constraint violation", importErr.Details["originalError"])
}

func TestProcessor_Process_CreateSetReturnsNothing(t *testing.T) {
	store := newFakeStore()
	store.createSetNil = true
	processor := NewProcessor(store, nil)

	_, err := processor.Process(validDraft())

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Failed to create set", importErr.Message)
	assert.Nil(t, importErr.Details)
}

func TestProcessor_Process_InvalidCardRollsBack(t *testing.T) {
	store := newFakeStore()
	processor := NewProcessor(store, nil)

	draft := &Draft{Name: "Partial", Cards: []DraftCard{
		{Question: "ok", Answer: "ok"},
		{Question: "no answer", Answer: ""},
	}}

	_, err := processor.Process(draft)

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Invalid card data", importErr.Message)
	assert.Equal(t, 1, importErr.Details["createdCards"])
	assert.Equal(t, DraftCard{Question: "no answer"}, importErr.Details["failedCard"])

	// The half-imported set is gone
	require.Len(t, store.deletedSets, 1)
	assert.Empty(t, store.sets)
	assert.Empty(t, store.cards)
}

func TestProcessor_Process_CardCreateFailureRollsBack(t *testing.T) {
	store := newFakeStore()
	store.failCardAfter = 1
	processor := NewProcessor(store, nil)

	_, err := processor.Process(validDraft())

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Failed to create cards", importErr.Message)
	assert.Equal(t, 1, importErr.Details["createdCards"])
	assert.Equal(t, DraftCard{Question: "Capital of Spain?", Answer: "Madrid"}, importErr.Details["failedCard"])
	assert.Empty(t, store.sets)
}

func TestProcessor_Process_RollbackFailureIsRecorded(t *testing.T) {
	store := newFakeStore()
	store.failCardAfter = 0
	store.deleteErr = errors.New("database is locked")
	recorder := &fakeRecorder{}
	processor := NewProcessor(store, recorder)

	_, err := processor.Process(validDraft())

	// The card failure wins; the rollback failure is only recorded
	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "Failed to create cards", importErr.Message)

	require.Len(t, recorder.setIDs, 1)
	assert.Equal(t, "Geography", recorder.names[0])
	// The orphaned set is still in the store
	assert.Len(t, store.sets, 1)
}

func TestProcessor_DuplicateOf(t *testing.T) {
	store := newFakeStore()
	existing, err := store.CreateSet("Biology", "")
	require.NoError(t, err)

	processor := NewProcessor(store, nil)

	found, err := processor.DuplicateOf("Biology")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, existing.ID, found.ID)

	missing, err := processor.DuplicateOf("Chemistry")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProcessor_Process_SequentialImportsOfSameName(t *testing.T) {
	store := newFakeStore()
	processor := NewProcessor(store, nil)

	_, err := processor.Process(validDraft())
	require.NoError(t, err)

	_, err = processor.Process(validDraft())

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "A set with this name already exists", importErr.Message)
	assert.Len(t, store.sets, 1)
}
