package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMealSuggestionsCapsAtFive(t *testing.T) {
	got := GetMealSuggestions(MealFilters{})
	assert.Len(t, got, 5)
}

func TestGetMealSuggestionsByCookingMethod(t *testing.T) {
	got := GetMealSuggestions(MealFilters{CookingMethod: "microwave"})
	require.NotEmpty(t, got)
	for _, m := range got {
		assert.Equal(t, "microwave", m.CookingMethod)
	}
}

func TestGetMealSuggestionsByNutrient(t *testing.T) {
	got := GetMealSuggestions(MealFilters{Nutrients: []string{"DHA"}})
	require.Len(t, got, 2)
	names := []string{got[0].Name, got[1].Name}
	assert.Contains(t, names, "Canned Salmon Salad")
	assert.Contains(t, names, "Oatmeal with Walnuts")
}

func TestGetMealSuggestionsCombinedFilters(t *testing.T) {
	got := GetMealSuggestions(MealFilters{
		CookingMethod: "stovetop",
		Nutrients:     []string{"Folate"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "Egg Scramble with Spinach", got[0].Name)
	assert.Equal(t, "Lentil Soup", got[1].Name)
}

func TestGetMealSuggestionsNoMatch(t *testing.T) {
	got := GetMealSuggestions(MealFilters{Nutrients: []string{"Zinc"}})
	assert.Empty(t, got)
}
