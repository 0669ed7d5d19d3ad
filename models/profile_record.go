package models

import "gorm.io/gorm"

// ProfileRecord is the mirrored user profile, one row per identity subject.
// Payload carries the whole profile JSON so client-side field changes never
// need a migration here.
type ProfileRecord struct {
	gorm.Model
	UserID  string `gorm:"uniqueIndex;not null"`
	Payload string `gorm:"type:text"`
}
