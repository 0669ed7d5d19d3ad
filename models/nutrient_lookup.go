package models

import "gorm.io/gorm"

// NutrientLookup records one LLM nutrient estimate request, parsed or not.
// Amounts holds the parsed JSON object; Raw keeps the model's text for the
// unparseable cases.
type NutrientLookup struct {
	gorm.Model
	Name    string `gorm:"not null"`
	Amounts string `gorm:"type:text"` // JSON object, empty when parsing failed
	Raw     string `gorm:"type:text"`
	UserID  string `gorm:"index"` // identity token subject, empty for anonymous
}
