// Package openrouter implements the completion client against the OpenRouter
// HTTP API. One synchronous request per call; failures map onto the
// domain.CompletionError taxonomy and are never retried.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/ports"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Client talks to the OpenRouter API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client. An empty baseURL selects the production API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: domain.DefaultRequestTimeout},
	}
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete implements ports.CompletionClient.
func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	payload := chatCompletionRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		Messages:  toChatMessages(req.Messages),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	setHeaders(httpReq, req.Credential)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &domain.CompletionError{Kind: domain.CompletionErrNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return "", err
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &domain.CompletionError{Kind: domain.CompletionErrMalformed, Message: err.Error()}
	}
	if len(decoded.Choices) == 0 {
		return "", &domain.CompletionError{Kind: domain.CompletionErrMalformed, Message: "response contained no choices"}
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}

type modelsResponse struct {
	Data []domain.ModelInfo `json:"data"`
}

// ListModels implements ports.CompletionClient. Models are returned in API
// order for discovery.
func (c *Client) ListModels(ctx context.Context, credential string) ([]domain.ModelInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, err
	}
	setHeaders(httpReq, credential)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.CompletionError{Kind: domain.CompletionErrNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	var decoded modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.CompletionError{Kind: domain.CompletionErrMalformed, Message: err.Error()}
	}
	return decoded.Data, nil
}

// ValidateKey checks a candidate credential against the auth endpoint,
// mirroring the setup flow's one-time verification.
func (c *Client) ValidateKey(ctx context.Context, credential string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/key", nil)
	if err != nil {
		return err
	}
	setHeaders(httpReq, credential)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &domain.CompletionError{Kind: domain.CompletionErrNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	return classifyStatus(resp)
}

func setHeaders(req *http.Request, credential string) {
	req.Header.Set("Authorization", "Bearer "+credential)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://github.com/doeshing/devzap")
	req.Header.Set("X-Title", "devzap")
}

func classifyStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	snippet := readSnippet(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &domain.CompletionError{Kind: domain.CompletionErrAuth, Message: "unauthorized: check your API key"}
	case http.StatusTooManyRequests:
		return &domain.CompletionError{Kind: domain.CompletionErrRateLimit, Message: "rate limited by provider"}
	case http.StatusNotFound:
		return &domain.CompletionError{Kind: domain.CompletionErrUnknownModel, Message: "unknown model or endpoint: " + snippet}
	default:
		return &domain.CompletionError{
			Kind:    domain.CompletionErrAPI,
			Message: fmt.Sprintf("%s: %s", resp.Status, snippet),
		}
	}
}

func readSnippet(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func toChatMessages(messages []domain.PromptMessage) []chatMessage {
	out := make([]chatMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, chatMessage{
			Role:    strings.ToLower(msg.Role),
			Content: msg.Content,
		})
	}
	return out
}

var _ ports.CompletionClient = (*Client)(nil)
