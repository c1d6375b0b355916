package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/ports"
)

func completionRequest() ports.CompletionRequest {
	return ports.CompletionRequest{
		Credential: "sk-or-test",
		Model:      "openai/gpt-4o",
		MaxTokens:  256,
		Messages: []domain.PromptMessage{
			{Role: "system", Content: "You are DevZap."},
			{Role: "user", Content: "fix my error"},
		},
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotBody chatCompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Run: systemctl restart myapp\n"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	reply, err := client.Complete(context.Background(), completionRequest())
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "Run: systemctl restart myapp" {
		t.Fatalf("reply = %q", reply)
	}
	if gotAuth != "Bearer sk-or-test" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotBody.Model != "openai/gpt-4o" || len(gotBody.Messages) != 2 {
		t.Fatalf("request body = %+v", gotBody)
	}
}

func TestCompleteUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Complete(context.Background(), completionRequest())
	ce, ok := domain.AsCompletionError(err)
	if !ok || ce.Kind != domain.CompletionErrAuth {
		t.Fatalf("err = %v, want auth error", err)
	}
}

func TestCompleteRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Complete(context.Background(), completionRequest())
	ce, ok := domain.AsCompletionError(err)
	if !ok || ce.Kind != domain.CompletionErrRateLimit {
		t.Fatalf("err = %v, want rate_limit error", err)
	}
}

func TestCompleteEmptyChoicesIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Complete(context.Background(), completionRequest())
	ce, ok := domain.AsCompletionError(err)
	if !ok || ce.Kind != domain.CompletionErrMalformed {
		t.Fatalf("err = %v, want malformed error", err)
	}
}

func TestCompleteNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	_, err := client.Complete(context.Background(), completionRequest())
	ce, ok := domain.AsCompletionError(err)
	if !ok || ce.Kind != domain.CompletionErrNetwork {
		t.Fatalf("err = %v, want network error", err)
	}
}

func TestListModelsReturnsAPIOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":[
			{"id":"openai/gpt-4o","name":"GPT-4o","context_length":128000},
			{"id":"mistralai/mistral-7b-instruct","name":"Mistral 7B","context_length":32768}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	models, err := client.ListModels(context.Background(), "sk-or-test")
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("models = %d, want 2", len(models))
	}
	if models[0].ID != "openai/gpt-4o" || models[1].ID != "mistralai/mistral-7b-instruct" {
		t.Fatalf("order not preserved: %+v", models)
	}
}

func TestListModelsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListModels(context.Background(), "bad-key")
	ce, ok := domain.AsCompletionError(err)
	if !ok || ce.Kind != domain.CompletionErrAuth {
		t.Fatalf("err = %v, want auth error", err)
	}
}

func TestValidateKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/key" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") == "Bearer good-key" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.ValidateKey(context.Background(), "good-key"); err != nil {
		t.Fatalf("ValidateKey(good) error = %v", err)
	}
	if err := client.ValidateKey(context.Background(), "bad-key"); err == nil {
		t.Fatal("ValidateKey(bad) expected error")
	}
}
