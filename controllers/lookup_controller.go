package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
	"github.com/SillyCatLover68/NourishNine-Web-App/services"
)

// LookupController serves the LLM-backed nutrient and suggestion lookups.
type LookupController struct {
	Log *logger.Logger
}

func NewLookupController(log *logger.Logger) *LookupController {
	return &LookupController{Log: log}
}

func requestedName(c *gin.Context) string {
	var body struct {
		Name string `json:"name"`
	}
	_ = c.ShouldBindJSON(&body)
	if body.Name != "" {
		return body.Name
	}
	return c.Query("name")
}

// POST /api/nutrients  {"name":"kiwi"}
func (lc *LookupController) LookupNutrients(c *gin.Context) {
	name := requestedName(c)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing food name"})
		return
	}
	userID := c.GetString("userID")

	svc := services.NewOpenAIService()
	if !svc.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OPENAI_API_KEY not configured on server"})
		return
	}

	amounts, raw, err := svc.LookupNutrients(name)
	if err != nil {
		lc.Log.Error("nutrient lookup failed", "name", name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch nutrient estimates"})
		return
	}

	// Archive the lookup best-effort; never fail the request over it.
	if err := services.SaveNutrientLookup(name, amounts, raw, userID); err != nil {
		lc.Log.Warn("mirror write failed", "collection", "nutrientLookups", "err", err)
	}

	if amounts == nil {
		c.JSON(http.StatusOK, gin.H{"nutrientAmounts": nil, "raw": raw})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nutrientAmounts": amounts})
}

// POST /api/suggest  {"name":"ice cream"}
func (lc *LookupController) SuggestMeals(c *gin.Context) {
	name := requestedName(c)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing food name"})
		return
	}
	userID := c.GetString("userID")

	svc := services.NewOpenAIService()
	if !svc.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OPENAI_API_KEY not configured on server"})
		return
	}

	suggestions, raw, err := svc.SuggestMeals(name)
	if err != nil {
		lc.Log.Error("suggestion lookup failed", "name", name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch suggestions"})
		return
	}

	if err := services.SaveSuggestion(name, suggestions, raw, userID); err != nil {
		lc.Log.Warn("mirror write failed", "collection", "suggestions", "err", err)
	}

	if suggestions == nil {
		c.JSON(http.StatusOK, gin.H{"suggestions": []string{}, "raw": raw})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
