// Package client is a typed HTTP client for the Prayer Notebook API,
// mirroring the REST surface method for method.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"prayernotebook/pkg/types"
)

// Client calls the Prayer Notebook API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError carries the status and error message of a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// New constructs a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePrayerParams is the body of POST /api/prayers.
type CreatePrayerParams struct {
	CategoryID  int64   `json:"categoryId"`
	UserID      int64   `json:"userId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdatePrayerParams is the body of PUT /api/prayers/:id.
type UpdatePrayerParams struct {
	UserID      int64   `json:"userId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Notes       *string `json:"notes,omitempty"`
	CategoryID  int64   `json:"categoryId"`
}

// CategoryParams is the body of POST and PUT on /api/categories.
type CategoryParams struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
}

type createdResponse struct {
	InsertID int64 `json:"insertId"`
}

func (c *Client) Prayers(userID int64) ([]types.Prayer, error) {
	var prayers []types.Prayer
	err := c.get("/api/prayers", userQuery(userID), &prayers)
	return prayers, err
}

func (c *Client) Prayer(id, userID int64) (types.Prayer, error) {
	var prayer types.Prayer
	err := c.get(fmt.Sprintf("/api/prayers/%d", id), userQuery(userID), &prayer)
	return prayer, err
}

func (c *Client) PrayersByCategory(categoryID, userID int64) ([]types.Prayer, error) {
	var prayers []types.Prayer
	err := c.get(fmt.Sprintf("/api/prayers/category/%d", categoryID), userQuery(userID), &prayers)
	return prayers, err
}

func (c *Client) AnsweredPrayers(userID int64) ([]types.Prayer, error) {
	var prayers []types.Prayer
	err := c.get("/api/prayers/answered", userQuery(userID), &prayers)
	return prayers, err
}

func (c *Client) SearchPrayers(userID int64, keyword string) ([]types.Prayer, error) {
	query := userQuery(userID)
	query.Set("q", keyword)

	var prayers []types.Prayer
	err := c.get("/api/prayers/search", query, &prayers)
	return prayers, err
}

// CreatePrayer returns the id generated for the new prayer.
func (c *Client) CreatePrayer(params CreatePrayerParams) (int64, error) {
	var created createdResponse
	err := c.send(http.MethodPost, "/api/prayers", nil, params, &created)
	return created.InsertID, err
}

func (c *Client) UpdatePrayer(id int64, params UpdatePrayerParams) error {
	return c.send(http.MethodPut, fmt.Sprintf("/api/prayers/%d", id), nil, params, nil)
}

// MarkPrayerAnswered flips the prayer to answered; there is no way to
// flip it back.
func (c *Client) MarkPrayerAnswered(id, userID int64, notes *string) error {
	body := map[string]any{"userId": userID}
	if notes != nil {
		body["notes"] = *notes
	}
	return c.send(http.MethodPut, fmt.Sprintf("/api/prayers/%d/answer", id), nil, body, nil)
}

func (c *Client) DeletePrayer(id, userID int64) error {
	return c.send(http.MethodDelete, fmt.Sprintf("/api/prayers/%d", id), userQuery(userID), nil, nil)
}

func (c *Client) Categories(userID int64) ([]types.Category, error) {
	var categories []types.Category
	err := c.get("/api/categories", userQuery(userID), &categories)
	return categories, err
}

func (c *Client) Category(id, userID int64) (types.Category, error) {
	var category types.Category
	err := c.get(fmt.Sprintf("/api/categories/%d", id), userQuery(userID), &category)
	return category, err
}

// CreateCategory returns the id generated for the new category.
func (c *Client) CreateCategory(params CategoryParams) (int64, error) {
	var created createdResponse
	err := c.send(http.MethodPost, "/api/categories", nil, params, &created)
	return created.InsertID, err
}

func (c *Client) UpdateCategory(id int64, params CategoryParams) error {
	return c.send(http.MethodPut, fmt.Sprintf("/api/categories/%d", id), nil, params, nil)
}

// DeleteCategory also deletes every prayer in the category.
func (c *Client) DeleteCategory(id, userID int64) error {
	return c.send(http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), userQuery(userID), nil, nil)
}

func userQuery(userID int64) url.Values {
	query := url.Values{}
	query.Set("userId", fmt.Sprintf("%d", userID))
	return query
}

func (c *Client) get(path string, query url.Values, out any) error {
	return c.send(http.MethodGet, path, query, nil, out)
}

func (c *Client) send(method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewBuffer(data)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
