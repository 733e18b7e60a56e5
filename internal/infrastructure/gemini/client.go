// Package gemini implements the Generator port against the Google
// generative-language HTTP API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/justicebuddy/backend/internal/core/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// fallbackReply is returned when the provider answers successfully but the
// response carries no extractable text.
const fallbackReply = "No reply received from Gemini."

// The original service left the upstream call unbounded; the timeout here is
// a deliberate tightening to keep a stuck provider from pinning requests.
const requestTimeout = 30 * time.Second

// Client issues generateContent calls. One synchronous request per Generate,
// no retries.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Wire types for the generateContent contract ---

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *upstreamError `json:"error"`
}

type upstreamError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate sends one prompt to the model and returns the reply text.
//
// A missing API key fails before any network I/O. A non-JSON response body
// (e.g. an HTML error page from a proxy) is never parsed as a reply and maps
// to domain.ErrUpstreamInvalid. A JSON error envelope maps to a wrapped
// domain.ErrUpstream carrying the provider message.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrAPIKeyMissing
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", domain.ErrUpstream, err)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return "", domain.ErrUpstreamInvalid
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", domain.ErrUpstreamInvalid
	}

	if out.Error != nil {
		if out.Error.Message != "" {
			return "", fmt.Errorf("%w: %s", domain.ErrUpstream, out.Error.Message)
		}
		return "", domain.ErrUpstream
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 ||
		out.Candidates[0].Content.Parts[0].Text == "" {
		return fallbackReply, nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
