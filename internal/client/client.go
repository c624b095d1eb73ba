// Package client provides an HTTP client for the definitions API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const (
	DefaultResourcePath = "/api/definitions/"
	defaultRetryDelay   = 200 * time.Millisecond
)

// Response is the JSON body returned by the definitions API.
type Response struct {
	Word          string `json:"word,omitempty"`
	Definition    string `json:"definition,omitempty"`
	Message       string `json:"message,omitempty"`
	RequestNumber int64  `json:"requestNumber"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Response   Response
}

func (e *APIError) Error() string {
	if e.Response.Message != "" {
		return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Response.Message)
	}
	return fmt.Sprintf("response error %d", e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is a 409 from the API.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict
}

type Client struct {
	httpClient       *resty.Client
	resourcePath     string
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewClient(baseURL string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient:       client,
		resourcePath:     DefaultResourcePath,
		maxRetryAttempts: retryAttempts,
		retryDelay:       defaultRetryDelay,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Lookup fetches the definition of word, retrying transport failures and 5xx responses.
func (client *Client) Lookup(ctx context.Context, word string) (Response, error) {
	return client.do(ctx, client.maxRetryAttempts+1, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetQueryParam("word", word).
			Get(client.resourcePath)
	})
}

// Add registers a new word and its definition. It is sent once: a retry after a
// lost response would see the server's 409 for the word it just stored.
func (client *Client) Add(ctx context.Context, word, meaning string) (Response, error) {
	body := map[string]string{
		"word":       word,
		"definition": meaning,
	}
	return client.do(ctx, 1, func() (*resty.Response, error) {
		return client.httpClient.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post(client.resourcePath)
	})
}

func (client *Client) do(ctx context.Context, attempts uint, send func() (*resty.Response, error)) (Response, error) {
	var result Response
	err := retry.Do(
		func() error {
			response, err := send()
			if err != nil {
				return fmt.Errorf("httpClient.Execute > %w", err)
			}

			var body Response
			if len(response.Bytes()) > 0 {
				if err := json.Unmarshal(response.Bytes(), &body); err != nil {
					return fmt.Errorf("json.Unmarshal(%s) > %w", response.String(), err)
				}
			}
			if response.IsError() {
				return &APIError{StatusCode: response.StatusCode(), Response: body}
			}
			result = body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying definitions API call",
				"attempt", n+1,
				"lastError", err)
		}),
	)
	if err != nil {
		return Response{}, err
	}
	return result, nil
}

// isRetryableError retries transport failures and 5xx responses only.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
