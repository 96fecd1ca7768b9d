package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Errors     []APIErrorDetail
}

// APIErrorDetail is one entry of the upstream error envelope.
type APIErrorDetail struct {
	ID     string `json:"id"`
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("non-2xx status code -> (%d)", e.StatusCode)
	}
	details := make([]string, len(e.Errors))
	for i, d := range e.Errors {
		details[i] = fmt.Sprintf("%s: %s", d.Title, d.Detail)
	}
	return fmt.Sprintf("non-2xx status code -> (%d) %s", e.StatusCode, strings.Join(details, "; "))
}

type API struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewAPI(baseURL string, client *http.Client, userAgent string) *API {
	if client == nil {
		client = http.DefaultClient
	}
	return &API{client: client, baseURL: strings.TrimRight(baseURL, "/"), userAgent: userAgent}
}

// BaseURL returns the root every request path is appended to.
func (a *API) BaseURL() string {
	return a.baseURL
}

// Get issues a GET for path with params and decodes the JSON body into v.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	endpoint := a.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("error requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Errors []APIErrorDetail `json:"errors"`
		}
		body, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(body, &envelope) == nil {
			apiErr.Errors = envelope.Errors
		}
		return fmt.Errorf("error requesting %s: %w", path, apiErr)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error decoding %s response: %w", path, err)
	}
	return nil
}
