package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"calendar-booking-agent/pkg/gemini"
)

func TestConfigValidate(t *testing.T) {
	cfg := gemini.Config{}
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for missing api key")
	}

	cfg = gemini.Config{APIKey: "test-api-key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != gemini.DefaultModel {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
	if cfg.APIURL != gemini.DefaultAPIURL {
		t.Errorf("expected default URL, got %q", cfg.APIURL)
	}
	if cfg.HTTPClient == nil {
		t.Errorf("expected default http client")
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body struct {
			Contents []struct {
				Role  string `json:"role"`
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
			Tools []struct {
				FunctionDeclarations []struct {
					Name string `json:"name"`
				} `json:"functionDeclarations"`
			} `json:"tools"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(body.Contents) != 1 || body.Contents[0].Parts[0].Text != "book a meeting tomorrow" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(body.Tools) != 1 || body.Tools[0].FunctionDeclarations[0].Name != "check_availability" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {
					"role": "model",
					"parts": [{
						"functionCall": {
							"name": "check_availability",
							"args": {"date": "tomorrow", "start_time": "10:00"}
						}
					}]
				}
			}]
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey: "test-api-key",
		APIURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "book a meeting tomorrow"}}},
		},
		Tools: []gemini.Tool{
			{
				Name:        "check_availability",
				Description: "Check whether a time range is free",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"date":       map[string]interface{}{"type": "string"},
						"start_time": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := resp.FunctionCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 function call, got %d", len(calls))
	}
	if calls[0].Name != "check_availability" {
		t.Errorf("expected check_availability, got %q", calls[0].Name)
	}
	if calls[0].Args["date"] != "tomorrow" {
		t.Errorf("unexpected args: %v", calls[0].Args)
	}
	if resp.Text() != "" {
		t.Errorf("expected no text parts, got %q", resp.Text())
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}
