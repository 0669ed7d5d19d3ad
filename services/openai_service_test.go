package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletions returns a chat completions handler that always replies with
// the given message content.
func fakeCompletions(t *testing.T, content string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			Messages  []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, 200, req.MaxTokens)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func newTestService(t *testing.T, handler http.Handler) *OpenAIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", srv.URL)
	return NewOpenAIService()
}

func TestLookupNutrientsParsesJSON(t *testing.T) {
	svc := newTestService(t, fakeCompletions(t, `{"Iron":5,"Folate":150,"Protein":12}`))

	amounts, raw, err := svc.LookupNutrients("Lentil Soup")
	require.NoError(t, err)
	assert.Equal(t, 5.0, amounts["Iron"])
	assert.Equal(t, 150.0, amounts["Folate"])
	assert.Equal(t, 12.0, amounts["Protein"])
	assert.NotEmpty(t, raw)
}

func TestLookupNutrientsExtractsEmbeddedJSON(t *testing.T) {
	svc := newTestService(t, fakeCompletions(t,
		"Sure! Here are the amounts: {\"Iron\":2,\"Protein\":8} Hope that helps."))

	amounts, _, err := svc.LookupNutrients("Oatmeal")
	require.NoError(t, err)
	assert.Equal(t, 2.0, amounts["Iron"])
	assert.Equal(t, 8.0, amounts["Protein"])
}

func TestLookupNutrientsUnparseableReplyIsNotAnError(t *testing.T) {
	svc := newTestService(t, fakeCompletions(t, "I cannot estimate that food."))

	amounts, raw, err := svc.LookupNutrients("Mystery Dish")
	require.NoError(t, err)
	assert.Nil(t, amounts)
	assert.Equal(t, "I cannot estimate that food.", raw)
}

func TestSuggestMealsParsesArray(t *testing.T) {
	svc := newTestService(t, fakeCompletions(t,
		`["Grilled salmon salad","Tuna sandwich","Salmon cakes","Fish tacos","Baked salmon"]`))

	suggestions, _, err := svc.SuggestMeals("salmon")
	require.NoError(t, err)
	require.Len(t, suggestions, 5)
	assert.Equal(t, "Grilled salmon salad", suggestions[0])
}

func TestSuggestMealsExtractsEmbeddedArray(t *testing.T) {
	svc := newTestService(t, fakeCompletions(t,
		`Here you go: ["Bean bowl","Rice and beans"] enjoy!`))

	suggestions, _, err := svc.SuggestMeals("beans")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bean bowl", "Rice and beans"}, suggestions)
}

func TestChatErrorsWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	svc := NewOpenAIService()
	assert.False(t, svc.Configured())

	_, _, err := svc.LookupNutrients("anything")
	assert.Error(t, err)
}

func TestChatSurfacesAPIErrors(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))

	_, _, err := svc.LookupNutrients("toast")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractDelimited(t *testing.T) {
	sub, ok := extractDelimited(`noise {"a":1} trailing`, '{', '}')
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, sub)

	_, ok = extractDelimited("no json here", '{', '}')
	assert.False(t, ok)

	_, ok = extractDelimited("} backwards {", '[', ']')
	assert.False(t, ok)
}
