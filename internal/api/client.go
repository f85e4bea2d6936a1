// Package api is the typed client for the employee-records REST collaborator.
// Every state the application renders comes from these calls; the client
// keeps no cache of its own beyond the credential and the last list, both
// rebuilt wholesale from each successful response.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/apierror"
)

// TokenSource yields the current bearer credential, or "" when logged out
// (or when the stored token has already expired).
type TokenSource interface {
	Token() string
}

// Client talks to the collaborator API. Safe for use from a single session
// loop; requests are issued one at a time from user-triggered events.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      TokenSource
}

func New(baseURL string, timeout time.Duration, creds TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
	}
}

// do issues a request and decodes the JSON response into out (when non-nil).
// Non-2xx responses come back as *apierror.APIError carrying the server's
// message verbatim.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apierror.FromResponse(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("api: decode response: %w", err)
		}
	}
	return nil
}
