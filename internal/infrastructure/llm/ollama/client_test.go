package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/insightlab/insightsort/internal/core/ports"
)

func TestCompleteSendsBoundedGenerationRequest(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"response":" Tech \n"}`))
	}))
	defer server.Close()

	client := New(server.URL, "mistral:7b-instruct")
	reply, err := client.Complete(context.Background(), "classify this", ports.CompletionOptions{
		Stop:        []string{"\n"},
		Temperature: 0.2,
		MaxTokens:   10,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "Tech" {
		t.Fatalf("reply = %q, want trimmed Tech", reply)
	}

	if payload["model"] != "mistral:7b-instruct" {
		t.Fatalf("model = %v", payload["model"])
	}
	if payload["stream"] != false {
		t.Fatalf("stream = %v, want false", payload["stream"])
	}
	options, ok := payload["options"].(map[string]any)
	if !ok {
		t.Fatalf("options missing: %v", payload)
	}
	if options["num_predict"] != float64(10) {
		t.Fatalf("num_predict = %v", options["num_predict"])
	}
	if options["temperature"] != 0.2 {
		t.Fatalf("temperature = %v", options["temperature"])
	}
}

func TestCompleteIncludesHTTPBodyInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL, "mistral:7b-instruct")
	_, err := client.Complete(context.Background(), "p", ports.CompletionOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model not loaded") {
		t.Fatalf("expected response body in error, got %v", err)
	}
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 HTTPStatusError, got %v", err)
	}
}

func TestCompleteHonorsCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":"late"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL, "m", WithRequestsPerSecond(1))
	if _, err := client.Complete(ctx, "p", ports.CompletionOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}
