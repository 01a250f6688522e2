package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/handler"
)

// Retry defaults for calls to the planner API
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// APIClient handles communication with the DofusPlanner API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call runs a request and decodes a JSON body into out when the status matches
func (c *APIClient) call(method, path string, body interface{}, wantStatus int, out interface{}) error {
	resp, err := c.doRequest(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return readAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	var errResp handler.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

func accountPath(accountID, suffix string) string {
	return "/api/v1/accounts/" + url.PathEscape(accountID) + suffix
}

// ListPlan returns the planned items of an account
func (c *APIClient) ListPlan(accountID string) ([]domain.PlannedItem, error) {
	var resp handler.PlanResponse
	if err := c.call(http.MethodGet, accountPath(accountID, "/plan"), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddToPlan adds an item to the plan; lotSize 0 lets the server pick the default
func (c *APIClient) AddToPlan(accountID, itemName string, lotSize int) (*domain.PlannedItem, error) {
	req := handler.AddToPlanRequest{ItemName: itemName, LotSize: lotSize}

	var item domain.PlannedItem
	if err := c.call(http.MethodPost, accountPath(accountID, "/plan"), req, http.StatusCreated, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Needs returns the net requirements of an account against the given stock
func (c *APIClient) Needs(accountID string, stock map[int]int) ([]domain.NetRequirement, error) {
	req := handler.NeedsRequest{Stock: stock}

	var resp handler.NeedsResponse
	if err := c.call(http.MethodPost, accountPath(accountID, "/needs"), req, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Needs, nil
}

// ShoppingList returns the flat shopping list of an account
func (c *APIClient) ShoppingList(accountID string, selected []int, stock map[int]int) ([]domain.IngredientTotal, error) {
	req := handler.ShoppingListRequest{Stock: stock, Selected: selected}

	var resp handler.ShoppingListResponse
	if err := c.call(http.MethodPost, accountPath(accountID, "/shopping-list"), req, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// SearchItems runs a catalog search
func (c *APIClient) SearchItems(query string, limit int) ([]domain.CatalogItem, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp handler.ItemsResponse
	if err := c.call(http.MethodGet, "/api/v1/catalog/search?"+params.Encode(), nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Healthy reports whether the API answers on its liveness endpoint
func (c *APIClient) Healthy() bool {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
