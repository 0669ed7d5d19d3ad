package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SillyCatLover68/NourishNine-Web-App/config"
)

// OpenAIService talks to an OpenAI-compatible chat completions API for
// nutrient estimates and meal suggestions.
type OpenAIService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		apiKey:  config.GetEnv("OPENAI_API_KEY", ""),
		baseURL: config.GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		model:   config.GetEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is present. Callers answer 500 with
// a static message when it is not.
func (s *OpenAIService) Configured() bool { return s.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *OpenAIService) chat(system, user string, temperature float64) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   200,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(raw))
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return cr.Choices[0].Message.Content, nil
}

// LookupNutrients asks for approximate per-serving nutrient amounts for a
// food name. When the model's reply cannot be parsed as JSON, amounts is nil
// and raw carries the reply for the caller to log/store; that is not an
// error.
func (s *OpenAIService) LookupNutrients(name string) (map[string]float64, string, error) {
	prompt := fmt.Sprintf("Provide a JSON object only (no commentary) that gives approximate nutrient amounts per one typical serving for the food named:\n\n%s\n\nReturn the following keys with numeric values (use 0 if unknown): Iron (mg), Protein (g), Calcium (mg), Folate (mcg), DHA (mg), Vitamin C (mg), Fiber (g). Example: {\"Iron\":2,\"Protein\":8,...}", name)

	content, err := s.chat("You are a concise nutrition assistant that returns only JSON.", prompt, 0.2)
	if err != nil {
		return nil, "", err
	}

	var amounts map[string]float64
	if err := json.Unmarshal([]byte(content), &amounts); err != nil {
		if sub, ok := extractDelimited(content, '{', '}'); ok {
			if err := json.Unmarshal([]byte(sub), &amounts); err != nil {
				amounts = nil
			}
		}
	}
	return amounts, content, nil
}

// SuggestMeals asks for five short meal or swap suggestions related to a
// food name. Unparseable replies yield an empty slice plus the raw text.
func (s *OpenAIService) SuggestMeals(name string) ([]string, string, error) {
	prompt := fmt.Sprintf(`Provide a JSON array (no commentary) of 5 short meal or swap suggestions related to this food name: %s. Respond with an array of strings, e.g. ["Grilled salmon salad","Tuna sandwich", ...]. Keep items short.`, name)

	content, err := s.chat("You are a concise nutrition suggestions assistant that returns only JSON arrays.", prompt, 0.6)
	if err != nil {
		return nil, "", err
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		if sub, ok := extractDelimited(content, '[', ']'); ok {
			if err := json.Unmarshal([]byte(sub), &suggestions); err != nil {
				suggestions = nil
			}
		}
	}
	return suggestions, content, nil
}

// extractDelimited pulls the first open..last close substring out of model
// chatter like "Sure! Here you go: {...}".
func extractDelimited(s string, open, closing byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, closing)
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
