package entities

import (
	"time"
)

// CardSet is a named collection of flashcards. Set names are unique at
// import time; uniqueness is enforced by the import processor, not the
// database schema.
type CardSet struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PublicID    string    `gorm:"uniqueIndex;size:21" json:"public_id,omitempty"`
	Name        string    `gorm:"index;size:100" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	Cards       []Card    `gorm:"foreignKey:SetID" json:"cards"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"lastModified"`
}

// Card is a single question/answer pair within a set.
type Card struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SetID     uint      `gorm:"index" json:"set_id"`
	Question  string    `gorm:"size:1000" json:"question"`
	Answer    string    `gorm:"size:1000" json:"answer"`
	Completed bool      `gorm:"default:false" json:"completed"`
	Set       CardSet   `gorm:"foreignKey:SetID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"lastModified"`
}

func (CardSet) TableName() string {
	return "card_sets"
}

func (Card) TableName() string {
	return "cards"
}
