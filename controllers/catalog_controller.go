package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SillyCatLover68/NourishNine-Web-App/data"
)

// Read-only catalog endpoints backing the SPA's static reference pages.

// GET /api/catalog/nutrients
func ListNutrients(c *gin.Context) {
	c.JSON(http.StatusOK, data.Nutrients)
}

// GET /api/catalog/meals?cooking_method=microwave&nutrients=Iron,Protein
func ListMealSuggestions(c *gin.Context) {
	filters := data.MealFilters{CookingMethod: c.Query("cooking_method")}
	if raw := c.Query("nutrients"); raw != "" {
		filters.Nutrients = strings.Split(raw, ",")
	}
	c.JSON(http.StatusOK, data.GetMealSuggestions(filters))
}

// GET /api/catalog/food-safety?q=sushi
func ListFoodSafety(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		item := data.SearchFoodSafety(q)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no food safety entry matched"})
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}
	c.JSON(http.StatusOK, data.FoodSafetyDatabase)
}

// GET /api/catalog/trimester-tips
func ListTrimesterTips(c *gin.Context) {
	c.JSON(http.StatusOK, data.TrimesterTips)
}

// GET /api/catalog/cultural-foods?culture=caribbean
func ListCulturalFoods(c *gin.Context) {
	if q := c.Query("culture"); q != "" {
		cf := data.CulturalFoodsByCulture(q)
		if cf == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown culture"})
			return
		}
		c.JSON(http.StatusOK, cf)
		return
	}
	c.JSON(http.StatusOK, data.CulturalFoods)
}
