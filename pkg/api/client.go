package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
)

// Params holds query parameters for a request. Entries with an empty value
// are omitted from the URL entirely.
type Params map[string]string

// Client is the storefront's remote gateway. Every backend call goes
// through Do, which builds the URL, attaches the ambient session cookie and
// normalizes all failures into *Error. The client itself holds no
// application state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a gateway for the backend at baseURL. The client carries a
// cookie jar so the session credential set by the auth collaborator rides
// along on every request.
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar},
	}
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes one request against the backend. A non-nil body is sent as
// JSON; a non-nil out receives the decoded JSON response. On a non-2xx
// status the structured {"error": ...} body is used when present, falling
// back to a generic message carrying the status code.
func (c *Client) Do(ctx context.Context, method, endpoint string, params Params, body, out any) error {
	target := c.baseURL + endpoint
	if len(params) > 0 {
		q := url.Values{}
		for key, value := range params {
			if value != "" {
				q.Set(key, value)
			}
		}
		if encoded := q.Encode(); encoded != "" {
			target += "?" + encoded
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return &Error{Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		var structured struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&structured); decodeErr == nil && structured.Error != "" {
			message = structured.Error
		}
		return &Error{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Message: fmt.Sprintf("parse response: %v", err)}
	}
	return nil
}
