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

	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
)

const usersPath = "/api/users"

// NetworkError reports a request that never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx response from the users resource.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// UsersClient calls the /api/users resource.
type UsersClient struct {
	baseURL string
	http    *http.Client
}

// NewUsersClient creates a client for the resource served at baseURL.
// A nil httpClient uses a client without timeout.
func NewUsersClient(baseURL string, httpClient *http.Client) *UsersClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &UsersClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// List fetches all users, or the user with the given id when id is not empty.
func (c *UsersClient) List(ctx context.Context, id string) ([]models.User, error) {
	target := c.baseURL + usersPath
	if id != "" {
		target += "?" + url.Values{"id": {id}}.Encode()
	}

	var users []models.User
	if err := c.do(ctx, "list users", http.MethodGet, target, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Create inserts a user and returns the inserted rows.
func (c *UsersClient) Create(ctx context.Context, name, email string) ([]models.User, error) {
	var users []models.User
	body := models.CreateUserRequest{Name: name, Email: email}
	if err := c.do(ctx, "create user", http.MethodPost, c.baseURL+usersPath, body, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Update overwrites name and email of the user with the given id.
func (c *UsersClient) Update(ctx context.Context, id, name, email string) ([]models.User, error) {
	var users []models.User
	body := models.UpdateUserRequest{ID: id, Name: name, Email: email}
	if err := c.do(ctx, "update user", http.MethodPut, c.baseURL+usersPath, body, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user with the given id.
func (c *UsersClient) Delete(ctx context.Context, id string) error {
	target := c.baseURL + usersPath + "?" + url.Values{"id": {id}}.Encode()
	return c.do(ctx, "delete user", http.MethodDelete, target, nil, nil)
}

func (c *UsersClient) do(ctx context.Context, op, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("request failed", "op", op, "url", target, "error", err)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &errResp) != nil || errResp.Error == "" {
			errResp.Error = strings.TrimSpace(string(raw))
		}
		logger.Log.Errorw("unexpected response", "op", op, "status", resp.StatusCode, "error", errResp.Error)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
