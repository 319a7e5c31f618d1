package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// ErrUpstreamExhausted reports that every retry attempt failed.
var ErrUpstreamExhausted = errors.New("max retries exceeded")

// HTTPClient is a polite HTTP client: a single shared gate serializes all
// outbound calls, enforces a minimum delay between them (measured from the
// end of the previous call) and retries failed requests with exponential
// backoff before surfacing a terminal error.
type HTTPClient struct {
	BaseURL      string
	HTTPClient   *http.Client
	RequestDelay time.Duration
	MaxRetries   int
	// Backoff is the base of the 2^attempt backoff. Tests shrink it.
	Backoff time.Duration

	mu              sync.Mutex
	lastRequestTime time.Time
}

// NewHTTPClient creates an HTTPClient with the given politeness delay and
// attempt budget.
func NewHTTPClient(baseURL string, requestDelay time.Duration, maxRetries int) *HTTPClient {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		RequestDelay: requestDelay,
		MaxRetries:   maxRetries,
		Backoff:      time.Second,
	}
}

// Request performs an HTTP request and decodes the JSON response into
// response (which may be nil). The gate is held for the whole call including
// retries, so at most one request is outstanding per client instance.
func (c *HTTPClient) Request(method, endpoint string, params url.Values, body interface{}, response interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.waitPoliteness()

	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	reqURL := c.BaseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < c.MaxRetries; attempt++ {
		if attempt > 0 {
			// 2^(attempt-1) backoff units after the previous failure.
			time.Sleep(c.Backoff << (attempt - 1))
		}

		log.Printf("[HTTPClient] %s %s (attempt %d/%d)", method, reqURL, attempt+1, c.MaxRetries)
		lastErr = c.doOnce(method, reqURL, requestBody, response)
		c.lastRequestTime = time.Now()
		if lastErr == nil {
			return nil
		}
		log.Printf("[HTTPClient] request failed (attempt %d/%d): %v", attempt+1, c.MaxRetries, lastErr)
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrUpstreamExhausted, c.MaxRetries, lastErr)
}

func (c *HTTPClient) doOnce(method, reqURL string, requestBody []byte, response interface{}) error {
	req, err := http.NewRequest(method, reqURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %s", res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}
	return nil
}

// waitPoliteness sleeps until RequestDelay has passed since the end of the
// previous call. Callers must hold c.mu.
func (c *HTTPClient) waitPoliteness() {
	if c.lastRequestTime.IsZero() || c.RequestDelay <= 0 {
		return
	}
	elapsed := time.Since(c.lastRequestTime)
	if elapsed < c.RequestDelay {
		time.Sleep(c.RequestDelay - elapsed)
	}
}
