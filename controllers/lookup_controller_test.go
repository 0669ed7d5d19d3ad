package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLookupRouter() *gin.Engine {
	lc := NewLookupController(logger.Nop())
	r := gin.New()
	r.POST("/api/nutrients", lc.LookupNutrients)
	r.POST("/api/suggest", lc.SuggestMeals)
	return r
}

// fakeLLM stands in for the chat completions API, always answering with the
// given content.
func fakeLLM(t *testing.T, content string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", srv.URL)
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLookupNutrientsMissingName(t *testing.T) {
	w := postJSON(newLookupRouter(), "/api/nutrients", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing food name")
}

func TestLookupNutrientsWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	w := postJSON(newLookupRouter(), "/api/nutrients", `{"name":"kiwi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "OPENAI_API_KEY not configured on server")
}

func TestLookupNutrientsHappyPath(t *testing.T) {
	fakeLLM(t, `{"Iron":2,"Protein":8}`)

	w := postJSON(newLookupRouter(), "/api/nutrients", `{"name":"oatmeal"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		NutrientAmounts map[string]float64 `json:"nutrientAmounts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2.0, body.NutrientAmounts["Iron"])
	assert.Equal(t, 8.0, body.NutrientAmounts["Protein"])
}

func TestLookupNutrientsUnparseableReply(t *testing.T) {
	fakeLLM(t, "I have no idea what that is.")

	w := postJSON(newLookupRouter(), "/api/nutrients", `{"name":"mystery"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["nutrientAmounts"])
	assert.Equal(t, "I have no idea what that is.", body["raw"])
}

func TestLookupNutrientsNameFromQuery(t *testing.T) {
	fakeLLM(t, `{"Iron":1}`)

	w := postJSON(newLookupRouter(), "/api/nutrients?name=spinach", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSuggestMealsMissingName(t *testing.T) {
	w := postJSON(newLookupRouter(), "/api/suggest", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestMealsHappyPath(t *testing.T) {
	fakeLLM(t, `["Tuna melt","Salmon bowl","Fish tacos","Poke bowl","Sardine toast"]`)

	w := postJSON(newLookupRouter(), "/api/suggest", `{"name":"tuna"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Suggestions, 5)
	assert.Equal(t, "Tuna melt", body.Suggestions[0])
}

func TestSuggestMealsUnparseableReply(t *testing.T) {
	fakeLLM(t, "no suggestions today")

	w := postJSON(newLookupRouter(), "/api/suggest", `{"name":"gruel"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Suggestions []string `json:"suggestions"`
		Raw         string   `json:"raw"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Suggestions)
	assert.Equal(t, "no suggestions today", body.Raw)
}
