package http

import (
	"errors"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jocko2121/flashcard-app/internal/audit"
	"github.com/Jocko2121/flashcard-app/internal/database"
	"github.com/Jocko2121/flashcard-app/internal/entities"
	"github.com/Jocko2121/flashcard-app/internal/importer"
)

type CardsController struct {
	db      *database.Database
	auditor *audit.Service
}

func NewCardsController(db *database.Database, auditor *audit.Service) *CardsController {
	return &CardsController{
		db:      db,
		auditor: auditor,
	}
}

type createCardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type updateCardRequest struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	Completed *bool   `json:"completed"`
}

func validateCardFields(question, answer *string) string {
	if question != nil {
		if *question == "" {
			return "Question is required"
		}
		if utf8.RuneCountInString(*question) > importer.MaxQuestionLength {
			return "Question must be 1000 characters or less"
		}
	}
	if answer != nil {
		if *answer == "" {
			return "Answer is required"
		}
		if utf8.RuneCountInString(*answer) > importer.MaxAnswerLength {
			return "Answer must be 1000 characters or less"
		}
	}
	return ""
}

// GetCards lists the cards of a set.
// GET /api/sets/:id/cards
func (cc *CardsController) GetCards(c *gin.Context) {
	setID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := cc.db.GetSetByID(setID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "set")
			return
		}
		respondInternalError(c, err, "list cards")
		return
	}

	cards, err := cc.db.GetCardsForSet(setID)
	if err != nil {
		respondInternalError(c, err, "list cards")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards, "count": len(cards)})
}

// GetCard returns a single card from a set.
// GET /api/sets/:id/cards/:cardId
func (cc *CardsController) GetCard(c *gin.Context) {
	setID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "cardId")
	if !ok {
		return
	}

	card, err := cc.db.GetCardByID(setID, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "card")
			return
		}
		respondInternalError(c, err, "get card")
		return
	}
	c.JSON(http.StatusOK, card)
}

// CreateCard appends a card to a set.
// POST /api/sets/:id/cards
func (cc *CardsController) CreateCard(c *gin.Context) {
	setID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if msg := validateCardFields(&req.Question, &req.Answer); msg != "" {
		respondBadRequest(c, msg)
		return
	}

	card, err := cc.db.CreateCard(setID, req.Question, req.Answer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "set")
			return
		}
		respondInternalError(c, err, "create card")
		return
	}
	respondCreated(c, card)
}

// UpdateCard changes a card's fields. All fields are optional; marking a
// card completed also records the study session time.
// PUT /api/sets/:id/cards/:cardId
func (cc *CardsController) UpdateCard(c *gin.Context) {
	setID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "cardId")
	if !ok {
		return
	}

	var req updateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if msg := validateCardFields(req.Question, req.Answer); msg != "" {
		respondBadRequest(c, msg)
		return
	}

	card, err := cc.db.UpdateCard(setID, cardID, database.CardUpdate{
		Question:  req.Question,
		Answer:    req.Answer,
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "card")
			return
		}
		respondInternalError(c, err, "update card")
		return
	}

	if req.Completed != nil && *req.Completed {
		// Best effort; the card update itself already succeeded
		if err := cc.db.SetSetting(entities.SettingKeyLastStudyAt, time.Now().Format(time.RFC3339)); err != nil {
			log.Printf("Failed to record study session time: %v", err)
		}
	}

	c.JSON(http.StatusOK, card)
}

// DeleteCard removes a single card from a set.
// DELETE /api/sets/:id/cards/:cardId
func (cc *CardsController) DeleteCard(c *gin.Context) {
	setID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cardID, ok := parseIDParam(c, "cardId")
	if !ok {
		return
	}

	card, err := cc.db.GetCardByID(setID, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "card")
			return
		}
		respondInternalError(c, err, "delete card")
		return
	}

	deleted, err := cc.db.DeleteCard(setID, cardID)
	if err != nil {
		respondInternalError(c, err, "delete card")
		return
	}
	if !deleted {
		respondNotFound(c, "card")
		return
	}

	if cc.auditor != nil {
		cc.auditor.LogDelete("card", cardID, card.Question)
	}
	c.Status(http.StatusNoContent)
}
