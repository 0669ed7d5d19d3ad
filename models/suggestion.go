package models

import "gorm.io/gorm"

// Suggestion records one LLM meal/swap suggestion request.
type Suggestion struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Suggestions string `gorm:"type:text"` // JSON array of strings
	Raw         string `gorm:"type:text"`
	UserID      string `gorm:"index"`
}
