package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/SillyCatLover68/NourishNine-Web-App/config"
	"github.com/SillyCatLover68/NourishNine-Web-App/models"
)

// FoodLogInput is the mirrored entry payload accepted from the client.
type FoodLogInput struct {
	Name            string             `json:"name"`
	MealType        string             `json:"mealType"`
	Notes           string             `json:"notes"`
	Time            time.Time          `json:"time"`
	Calories        float64            `json:"calories"`
	NutrientAmounts map[string]float64 `json:"nutrientAmounts"`
}

// SaveFoodLogRecord mirrors one entry. Missing time defaults to now, same
// as the gateway always did.
func SaveFoodLogRecord(in FoodLogInput, userID string) error {
	if config.DB == nil {
		return errors.New("mirror store not initialized")
	}
	rec := models.FoodLogRecord{
		Name:     in.Name,
		MealType: in.MealType,
		Notes:    in.Notes,
		Time:     in.Time,
		Calories: in.Calories,
		UserID:   userID,
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}
	if in.NutrientAmounts != nil {
		b, err := json.Marshal(in.NutrientAmounts)
		if err != nil {
			return err
		}
		rec.NutrientAmounts = string(b)
	}
	return config.DB.Create(&rec).Error
}
