package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	// Mock server setup
	mockResponse := map[string]string{"message": "success"}
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-endpoint" {
			t.Errorf("Expected endpoint '/test-endpoint', got '%s'", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, 0, 3)
	var response map[string]string

	err := client.Request("GET", "/test-endpoint", nil, nil, &response)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if response["message"] != "success" {
		t.Errorf("Expected response message to be 'success', got '%s'", response["message"])
	}
}

func TestHTTPClient_Request_RetriesThenSucceeds(t *testing.T) {
	// First two attempts fail, third succeeds.
	var calls int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"message": "recovered"})
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, 0, 3)
	client.Backoff = time.Millisecond

	var response map[string]string
	err := client.Request("GET", "/flaky", nil, nil, &response)

	if err != nil {
		t.Fatalf("Expected no error after retries, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("Expected 3 attempts, got %d", got)
	}
	if response["message"] != "recovered" {
		t.Errorf("Expected 'recovered', got '%s'", response["message"])
	}
}

func TestHTTPClient_Request_RetriesExhausted(t *testing.T) {
	var calls int32
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, 0, 3)
	client.Backoff = time.Millisecond

	err := client.Request("GET", "/down", nil, nil, nil)

	if !errors.Is(err, ErrUpstreamExhausted) {
		t.Fatalf("Expected ErrUpstreamExhausted, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("Expected 3 attempts, got %d", got)
	}
}

func TestHTTPClient_Request_PolitenessDelay(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	delay := 50 * time.Millisecond
	client := NewHTTPClient(mockServer.URL, delay, 1)

	if err := client.Request("GET", "/a", nil, nil, nil); err != nil {
		t.Fatalf("first request: %v", err)
	}

	start := time.Now()
	if err := client.Request("GET", "/b", nil, nil, nil); err != nil {
		t.Fatalf("second request: %v", err)
	}

	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("Expected at least %v between calls, got %v", delay, elapsed)
	}
}
