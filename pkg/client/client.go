// Package client provides a typed HTTP client for the recipe hub API and a
// Session that mirrors the state a single household kitchen screen works with.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError carries a non-2xx response back to the caller with the server's
// error message intact.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to a recipe hub server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithAPIKey attaches an api_key header to every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("api_key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}

// ListRecipes fetches the catalog, optionally with reviews attached.
func (c *Client) ListRecipes(ctx context.Context, includeReviews bool) ([]Recipe, error) {
	path := "/api/recipes"
	if includeReviews {
		path += "?include_reviews=1"
	}
	var resp struct {
		Recipes []Recipe `json:"recipes"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recipes, nil
}

// GetRecipe fetches a single recipe with its reviews.
func (c *Client) GetRecipe(ctx context.Context, id string) (*Recipe, error) {
	var recipe Recipe
	if err := c.do(ctx, http.MethodGet, "/api/recipes/"+url.PathEscape(id), nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe adds a recipe to the catalog and returns the stored copy.
func (c *Client) CreateRecipe(ctx context.Context, recipe Recipe) (*Recipe, error) {
	var created Recipe
	if err := c.do(ctx, http.MethodPost, "/api/recipes", recipe, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddReview attaches a rating to a recipe.
func (c *Client) AddReview(ctx context.Context, recipeID string, rating int, note string) (*Review, error) {
	req := struct {
		Rating int    `json:"rating"`
		Note   string `json:"note"`
	}{Rating: rating, Note: note}

	var review Review
	path := "/api/recipes/" + url.PathEscape(recipeID) + "/reviews"
	if err := c.do(ctx, http.MethodPost, path, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Suggest reports which recipes the pantry can currently cover.
func (c *Client) Suggest(ctx context.Context) ([]Suggestion, error) {
	var resp struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/suggest", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// ListPantry fetches the pantry inventory.
func (c *Client) ListPantry(ctx context.Context) ([]PantryItem, error) {
	var resp struct {
		Items []PantryItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/pantry", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AddPantryItem stocks an ingredient.
func (c *Client) AddPantryItem(ctx context.Context, name string, quantity float64, unit string) (*PantryItem, error) {
	req := struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}{Name: name, Quantity: quantity, Unit: unit}

	var item PantryItem
	if err := c.do(ctx, http.MethodPost, "/api/pantry", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemovePantryItem deletes a pantry entry.
func (c *Client) RemovePantryItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/pantry/"+url.PathEscape(id), nil, nil)
}

// GetPlan fetches the plan for the week containing date (YYYY-MM-DD). The
// server normalizes the date to its Monday, so any day of the week works.
func (c *Client) GetPlan(ctx context.Context, date string) (*MealPlan, error) {
	var plan MealPlan
	if err := c.do(ctx, http.MethodGet, "/api/mealplan/"+url.PathEscape(date), nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// SavePlan stores a whole week and returns the canonical stored plan.
func (c *Client) SavePlan(ctx context.Context, plan MealPlan) (*MealPlan, error) {
	var saved MealPlan
	if err := c.do(ctx, http.MethodPost, "/api/mealplan", plan, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// AutoFill asks the server to fill the week's empty slots and returns the
// resulting plan.
func (c *Client) AutoFill(ctx context.Context, date string) (*MealPlan, error) {
	var plan MealPlan
	path := "/api/mealplan/" + url.PathEscape(date) + "/auto-fill"
	if err := c.do(ctx, http.MethodPost, path, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ShoppingList fetches the derived list for the week containing date.
func (c *Client) ShoppingList(ctx context.Context, date string) ([]ShoppingItem, error) {
	var resp struct {
		Items []ShoppingItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/shopping-list/"+url.PathEscape(date), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListReminders fetches all reminders ordered by due date.
func (c *Client) ListReminders(ctx context.Context) ([]Reminder, error) {
	var resp struct {
		Reminders []Reminder `json:"reminders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reminders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reminders, nil
}

// AddReminder creates a reminder. dueAt accepts RFC 3339 or a bare local
// datetime like "2024-05-01T12:00"; typ is meal, shopping or other.
func (c *Client) AddReminder(ctx context.Context, title, dueAt, typ string) (*Reminder, error) {
	req := struct {
		Title string `json:"title"`
		DueAt string `json:"due_at"`
		Type  string `json:"type"`
	}{Title: title, DueAt: dueAt, Type: typ}

	var reminder Reminder
	if err := c.do(ctx, http.MethodPost, "/api/reminders", req, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// RemoveReminder deletes a reminder.
func (c *Client) RemoveReminder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reminders/"+url.PathEscape(id), nil, nil)
}
