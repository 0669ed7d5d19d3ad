package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/SillyCatLover68/NourishNine-Web-App/config"
	"github.com/SillyCatLover68/NourishNine-Web-App/models"
)

// UpsertProfile stores the profile payload for the given identity subject,
// replacing any previous row.
func UpsertProfile(userID string, payload map[string]interface{}) error {
	if config.DB == nil {
		return errors.New("mirror store not initialized")
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var rec models.ProfileRecord
	err = config.DB.Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = models.ProfileRecord{UserID: userID, Payload: string(b)}
		return config.DB.Create(&rec).Error
	}
	if err != nil {
		return err
	}

	rec.Payload = string(b)
	return config.DB.Save(&rec).Error
}

// DeleteProfile removes the subject's mirrored profile. Deleting a profile
// that was never mirrored is not an error.
func DeleteProfile(userID string) error {
	if config.DB == nil {
		return errors.New("mirror store not initialized")
	}
	return config.DB.Where("user_id = ?", userID).Delete(&models.ProfileRecord{}).Error
}
