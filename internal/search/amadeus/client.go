// README: Amadeus self-service API client (token handling and GET plumbing).
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tripdesk/internal/search"
)

// httpClient guards against stalled connections; context cancellation is
// still honoured via NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// Client talks to the Amadeus self-service APIs.
type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	cache     *search.ResponseCache
	log       *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(baseURL, apiKey, apiSecret string, cache *search.ResponseCache, log *zap.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		apiSecret: apiSecret,
		cache:     cache,
		log:       log,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.apiKey},
		"client_secret": {c.apiSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("amadeus: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("amadeus: token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("amadeus: read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Code: "auth", Detail: string(body)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("amadeus: parse token response: %w", err)
	}

	c.accessToken = tok.AccessToken
	// Renew a minute early to avoid using a token mid-expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn-60) * time.Second)
	return c.accessToken, nil
}

// apiErrorBody is the provider's error envelope.
type apiErrorBody struct {
	Errors []struct {
		Code   json.Number `json:"code"`
		Title  string      `json:"title"`
		Detail string      `json:"detail"`
	} `json:"errors"`
}

// get performs an authenticated GET and decodes the JSON body into out.
// Non-2xx responses become *APIError carrying the provider's own detail.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("amadeus: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("amadeus: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("amadeus: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "unknown", Detail: strings.TrimSpace(string(body))}
		var parsed apiErrorBody
		if json.Unmarshal(body, &parsed) == nil && len(parsed.Errors) > 0 {
			apiErr.Code = parsed.Errors[0].Code.String()
			apiErr.Detail = parsed.Errors[0].Title
			if parsed.Errors[0].Detail != "" {
				apiErr.Detail += ": " + parsed.Errors[0].Detail
			}
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("amadeus: parse response: %w", err)
	}
	return nil
}
