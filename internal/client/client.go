// Package client implements the command-line client for the CoinKeeper API:
// a thin HTTP/JSON client plus terminal input helpers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

// User mirrors the server's user representation. The password hash is never
// sent by the server, so it has no field here.
type User struct {
	ID           int64         `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	Transactions []Transaction `json:"transactions"`
}

type Transaction struct {
	ID        int64   `json:"id"`
	Amount    float64 `json:"amount"`
	Recipient string  `json:"recipient"`
	UserID    int64   `json:"user_id"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// doRequest sends a JSON request and decodes a JSON response into out (when
// out is non-nil). A non-2xx status is returned as an error carrying the
// server's message; 401 maps to common.ErrorUnauthorized.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if resp.StatusCode == http.StatusUnauthorized {
			return common.ErrorUnauthorized
		}
		if errBody.Error != "" {
			return fmt.Errorf("server: %s", errBody.Error)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SignUp registers a new account. The server does not issue a token here;
// call Login afterwards.
func (c *Client) SignUp(ctx context.Context, email, password, name string) (*User, error) {
	var user User
	err := c.doRequest(ctx, http.MethodPost, "/sign-up", "",
		map[string]string{"email": email, "password": password, "name": name}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and returns the user together with a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, string, error) {
	var resp struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
	err := c.doRequest(ctx, http.MethodPost, "/login", "",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, "", err
	}
	return &resp.User, resp.Token, nil
}

// Validate checks the token against the server and returns the current user.
func (c *Client) Validate(ctx context.Context, token string) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/validate", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Transactions lists the current user's transactions.
func (c *Client) Transactions(ctx context.Context, token string) ([]Transaction, error) {
	var list []Transaction
	if err := c.doRequest(ctx, http.MethodGet, "/transactions", token, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Send records a transfer to recipient.
func (c *Client) Send(ctx context.Context, token string, amount float64, recipient string) (*Transaction, error) {
	var tr Transaction
	err := c.doRequest(ctx, http.MethodPost, "/transactions", token,
		map[string]any{"amount": amount, "recipient": recipient}, &tr)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}
