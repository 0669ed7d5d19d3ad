package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SillyCatLover68/NourishNine-Web-App/store"
)

// GatewayClient is the HTTP client the store's outbox drains through. It
// implements store.GatewayClient against the sync gateway's /api surface.
type GatewayClient struct {
	baseURL string
	token   string // identity token, empty for anonymous mirroring
	client  *http.Client
}

func NewGatewayClient(baseURL, token string) *GatewayClient {
	return &GatewayClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GatewayClient) do(method, path string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func (g *GatewayClient) MirrorEntry(e store.FoodLogEntry) error {
	return g.do(http.MethodPost, "/api/foodlog", e)
}

func (g *GatewayClient) UpsertProfile(p store.UserProfile) error {
	return g.do(http.MethodPost, "/api/profile", p)
}

func (g *GatewayClient) DeleteProfile() error {
	return g.do(http.MethodDelete, "/api/profile", nil)
}
