package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter() *gin.Engine {
	r := gin.New()
	grp := r.Group("/api/catalog")
	grp.GET("/nutrients", ListNutrients)
	grp.GET("/meals", ListMealSuggestions)
	grp.GET("/food-safety", ListFoodSafety)
	grp.GET("/trimester-tips", ListTrimesterTips)
	grp.GET("/cultural-foods", ListCulturalFoods)
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListNutrients(t *testing.T) {
	w := getPath(newCatalogRouter(), "/api/catalog/nutrients")
	require.Equal(t, http.StatusOK, w.Code)

	var nutrients []struct {
		Name   string  `json:"name"`
		Target float64 `json:"target"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nutrients))
	assert.Len(t, nutrients, 8)
}

func TestListMealSuggestionsFiltered(t *testing.T) {
	w := getPath(newCatalogRouter(), "/api/catalog/meals?cooking_method=no-cook&nutrients=DHA,Calcium")
	require.Equal(t, http.StatusOK, w.Code)

	var meals []struct {
		Name          string `json:"name"`
		CookingMethod string `json:"cookingMethod"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	require.NotEmpty(t, meals)
	for _, m := range meals {
		assert.Equal(t, "no-cook", m.CookingMethod)
	}
}

func TestFoodSafetySearch(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		w := getPath(newCatalogRouter(), "/api/catalog/food-safety?q=sushi")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Raw fish / Sushi")
	})

	t.Run("miss is 404", func(t *testing.T) {
		w := getPath(newCatalogRouter(), "/api/catalog/food-safety?q=durian")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no query lists everything", func(t *testing.T) {
		w := getPath(newCatalogRouter(), "/api/catalog/food-safety")
		require.Equal(t, http.StatusOK, w.Code)

		var items []json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, 12)
	})
}

func TestListTrimesterTips(t *testing.T) {
	w := getPath(newCatalogRouter(), "/api/catalog/trimester-tips")
	require.Equal(t, http.StatusOK, w.Code)

	var tips []struct {
		Trimester int `json:"trimester"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tips))
	assert.Len(t, tips, 3)
}

func TestListCulturalFoods(t *testing.T) {
	t.Run("by culture", func(t *testing.T) {
		w := getPath(newCatalogRouter(), "/api/catalog/cultural-foods?culture=caribbean")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Rice and Peas")
	})

	t.Run("unknown culture is 404", func(t *testing.T) {
		w := getPath(newCatalogRouter(), "/api/catalog/cultural-foods?culture=martian")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("all cultures", func(t *testing.T) {
		w := getPath(newCatalogRouter(), "/api/catalog/cultural-foods")
		require.Equal(t, http.StatusOK, w.Code)

		var cultures []json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cultures))
		assert.Len(t, cultures, 7)
	})
}
