package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLogRecord is the server-side mirror of one client food log entry.
// The client remains the source of truth; rows here are best-effort copies.
type FoodLogRecord struct {
	gorm.Model
	Name            string    `gorm:"not null"`
	MealType        string
	Notes           string    `gorm:"type:text"`
	Time            time.Time
	Calories        float64
	NutrientAmounts string    `gorm:"type:text"` // JSON object
	UserID          string    `gorm:"index"`
}
