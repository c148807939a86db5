// Package client is the Go counterpart of the browser client: a thin REST
// client for the user records API and an in-memory store kept in sync
// with it.
package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DefaultBaseURL is used when no base API URL is configured, matching the
// server's default port convention.
const DefaultBaseURL = "http://localhost:4000"

// User is the client-side view of a user record. Timestamp fields hold
// date-only strings after normalization by the store.
type User struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	LastLogin string `json:"lastLogin"`
}

// UserInput carries the mutable user fields for create and partial
// update calls. Empty fields are omitted from the request body.
type UserInput struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	City   string `json:"city,omitempty"`
	Status string `json:"status,omitempty"`
}

// Issue is a field-level validation failure reported by the API.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded from the API's error body.
// Issues is set for validation failures; Meta for uniqueness conflicts.
type APIError struct {
	StatusCode int                    `json:"-"`
	Message    string                 `json:"message"`
	Issues     []Issue                `json:"issues,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// API is the transport used by the UserStore.
type API interface {
	ListUsers() ([]User, error)
	CreateUser(input UserInput) (*User, error)
	UpdateUser(id uint, input UserInput) (*User, error)
	DeleteUser(id uint) error
}

// Client implements API over HTTP using Fiber's Agent.
type Client struct {
	baseURL string
}

// New creates a Client. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

// ListUsers fetches the full user collection.
func (c *Client) ListUsers() ([]User, error) {
	var users []User
	if err := c.send(fiber.Get(c.baseURL+"/users"), fiber.StatusOK, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new user and returns the server's projection.
func (c *Client) CreateUser(input UserInput) (*User, error) {
	var user User
	agent := fiber.Post(c.baseURL + "/users").JSON(input)
	if err := c.send(agent, fiber.StatusCreated, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update and returns the updated projection.
func (c *Client) UpdateUser(id uint, input UserInput) (*User, error) {
	var user User
	agent := fiber.Put(fmt.Sprintf("%s/users/%d", c.baseURL, id)).JSON(input)
	if err := c.send(agent, fiber.StatusOK, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user by id.
func (c *Client) DeleteUser(id uint) error {
	return c.send(fiber.Delete(fmt.Sprintf("%s/users/%d", c.baseURL, id)), fiber.StatusOK, nil)
}

// send performs the request and decodes either the expected success body
// or the API error body.
func (c *Client) send(agent *fiber.Agent, wantStatus int, out interface{}) error {
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errs[0])
	}
	if code != wantStatus {
		return decodeAPIError(code, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

// decodeAPIError turns an error response into an *APIError, falling back
// to the bare status code when the body is not the expected shape.
func decodeAPIError(code int, body []byte) error {
	apiErr := &APIError{StatusCode: code}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("unexpected status %d", code)
	}
	return apiErr
}
