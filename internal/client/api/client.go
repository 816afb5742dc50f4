// Package api implements the HTTP client for the passvault server API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks JSON over HTTP to a passvault server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL, e.g. "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Item is one decrypted vault entry as returned by the server.
type Item struct {
	ID        string    `json:"id"`
	SiteName  string    `json:"siteName"`
	Link      string    `json:"link"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type userIDResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// Signup registers a new account and returns the assigned user ID.
func (c *Client) Signup(ctx context.Context, name, email, password, secretKey string) (string, error) {
	body := map[string]string{
		"name": name, "email": email, "password": password, "secretKey": secretKey,
	}
	var resp userIDResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/signup", body, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// Login authenticates and returns the user ID used for all vault calls.
func (c *Client) Login(ctx context.Context, email, password, secretKey string) (string, error) {
	body := map[string]string{
		"email": email, "password": password, "secretKey": secretKey,
	}
	var resp userIDResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", body, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// SaveItem stores one credential for the user.
func (c *Client) SaveItem(ctx context.Context, userID, siteName, link, password string) error {
	body := map[string]string{
		"userId": userID, "siteName": siteName, "link": link, "password": password,
	}
	return c.doJSON(ctx, http.MethodPost, "/api/vault", body, nil)
}

// ListItems fetches the user's credentials, most recent first.
func (c *Client) ListItems(ctx context.Context, userID string) ([]Item, error) {
	var items []Item
	if err := c.doJSON(ctx, http.MethodGet, "/api/vault/"+url.PathEscape(userID), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItem removes one of the user's credentials.
func (c *Client) DeleteItem(ctx context.Context, userID, itemID string) error {
	path := "/api/vault/" + url.PathEscape(userID) + "/" + url.PathEscape(itemID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// doJSON sends one request and decodes the response into out (if non-nil).
// Non-2xx responses are turned into errors carrying the server's error kind.
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {

	var reqBody *bytes.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
			return fmt.Errorf("server error: %s", er.Error)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
