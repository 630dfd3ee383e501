package database

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/Jocko2121/flashcard-app/internal/entities"
)

// ListSets returns all card sets with their cards in creation order.
func (d *Database) ListSets() ([]entities.CardSet, error) {
	var sets []entities.CardSet
	err := d.DB.Preload("Cards", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Order("id ASC").Find(&sets).Error
	return sets, err
}

func (d *Database) GetSetByID(id uint) (*entities.CardSet, error) {
	var set entities.CardSet
	err := d.DB.Preload("Cards", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&set, id).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (d *Database) GetSetByName(name string) (*entities.CardSet, error) {
	var set entities.CardSet
	err := d.DB.Preload("Cards", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("name = ?", name).First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// CreateSet stores a new empty set and assigns it a public ID.
func (d *Database) CreateSet(name, description string) (*entities.CardSet, error) {
	publicID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public id: %w", err)
	}

	set := &entities.CardSet{
		PublicID:    publicID,
		Name:        name,
		Description: description,
		Cards:       []entities.Card{},
	}
	if err := d.DB.Create(set).Error; err != nil {
		return nil, err
	}
	return set, nil
}

// UpdateSet renames a set and/or replaces its description. Empty fields
// are left untouched, matching the partial-update semantics of the API.
func (d *Database) UpdateSet(id uint, name, description string) (*entities.CardSet, error) {
	var set entities.CardSet
	if err := d.DB.First(&set, id).Error; err != nil {
		return nil, err
	}

	if name != "" {
		set.Name = name
	}
	if description != "" {
		set.Description = description
	}

	if err := d.DB.Save(&set).Error; err != nil {
		return nil, err
	}
	return d.GetSetByID(id)
}

// DeleteSet removes a set and all of its cards in a single transaction.
// Returns true when a set row was actually removed.
func (d *Database) DeleteSet(id uint) (bool, error) {
	var deleted bool
	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("set_id = ?", id).Delete(&entities.Card{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.CardSet{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (d *Database) GetCardsForSet(setID uint) ([]entities.Card, error) {
	var cards []entities.Card
	err := d.DB.Where("set_id = ?", setID).Order("id ASC").Find(&cards).Error
	return cards, err
}

func (d *Database) GetCardByID(setID, cardID uint) (*entities.Card, error) {
	var card entities.Card
	err := d.DB.Where("set_id = ?", setID).First(&card, cardID).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateCard appends a card to an existing set. Fails when the set does
// not exist.
func (d *Database) CreateCard(setID uint, question, answer string) (*entities.Card, error) {
	var set entities.CardSet
	if err := d.DB.First(&set, setID).Error; err != nil {
		return nil, err
	}

	card := &entities.Card{
		SetID:    setID,
		Question: question,
		Answer:   answer,
	}
	if err := d.DB.Create(card).Error; err != nil {
		return nil, err
	}

	// Touch the parent set's modification time
	if err := d.DB.Model(&set).Update("updated_at", time.Now()).Error; err != nil {
		return nil, err
	}

	return card, nil
}

// CardUpdate carries the optional fields of a card update. Nil fields
// are left untouched.
type CardUpdate struct {
	Question  *string
	Answer    *string
	Completed *bool
}

func (d *Database) UpdateCard(setID, cardID uint, update CardUpdate) (*entities.Card, error) {
	var card entities.Card
	if err := d.DB.Where("set_id = ?", setID).First(&card, cardID).Error; err != nil {
		return nil, err
	}

	if update.Question != nil {
		card.Question = *update.Question
	}
	if update.Answer != nil {
		card.Answer = *update.Answer
	}
	if update.Completed != nil {
		card.Completed = *update.Completed
	}

	if err := d.DB.Save(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (d *Database) DeleteCard(setID, cardID uint) (bool, error) {
	result := d.DB.Where("set_id = ?", setID).Delete(&entities.Card{}, cardID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetStats counts sets and cards for the statistics endpoint and the
// periodic stats snapshot task.
func (d *Database) GetStats() (totalSets, totalCards, completedCards int64, err error) {
	err = d.DB.Model(&entities.CardSet{}).Count(&totalSets).Error
	if err != nil {
		return
	}
	err = d.DB.Model(&entities.Card{}).Count(&totalCards).Error
	if err != nil {
		return
	}
	err = d.DB.Model(&entities.Card{}).Where("completed = ?", true).Count(&completedCards).Error
	return
}
