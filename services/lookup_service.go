package services

import (
	"encoding/json"
	"errors"

	"github.com/SillyCatLover68/NourishNine-Web-App/config"
	"github.com/SillyCatLover68/NourishNine-Web-App/models"
)

// Best-effort archival of LLM lookups for debugging/analytics. Callers log
// the returned error and carry on; a failed write never fails the request.

func SaveNutrientLookup(name string, amounts map[string]float64, raw, userID string) error {
	if config.DB == nil {
		return errors.New("mirror store not initialized")
	}
	rec := models.NutrientLookup{
		Name:   name,
		Raw:    raw,
		UserID: userID,
	}
	if amounts != nil {
		b, err := json.Marshal(amounts)
		if err != nil {
			return err
		}
		rec.Amounts = string(b)
	}
	return config.DB.Create(&rec).Error
}

func SaveSuggestion(name string, suggestions []string, raw, userID string) error {
	if config.DB == nil {
		return errors.New("mirror store not initialized")
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	b, err := json.Marshal(suggestions)
	if err != nil {
		return err
	}
	rec := models.Suggestion{
		Name:        name,
		Suggestions: string(b),
		Raw:         raw,
		UserID:      userID,
	}
	return config.DB.Create(&rec).Error
}
