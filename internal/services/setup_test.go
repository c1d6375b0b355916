package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/pkg/logger"
	"github.com/doeshing/devzap/internal/ports"
)

type memConfigStore struct {
	cfg   domain.Config
	saved *domain.Config
}

func (m *memConfigStore) Load(context.Context) (domain.Config, error) { return m.cfg, nil }
func (m *memConfigStore) Save(cfg domain.Config) error                { m.saved = &cfg; return nil }
func (m *memConfigStore) Path() string                                { return "/tmp/config.yaml" }

type setupClient struct {
	models      []domain.ModelInfo
	listErr     error
	validateErr error
}

func (c *setupClient) Complete(context.Context, ports.CompletionRequest) (string, error) {
	return "", nil
}

func (c *setupClient) ListModels(context.Context, string) ([]domain.ModelInfo, error) {
	return c.models, c.listErr
}

func (c *setupClient) ValidateKey(context.Context, string) error {
	return c.validateErr
}

func TestSetupPicksModelByNumber(t *testing.T) {
	store := &memConfigStore{cfg: domain.Config{Model: domain.DefaultModel}}
	client := &setupClient{models: []domain.ModelInfo{
		{ID: "openai/gpt-4o"},
		{ID: "mistralai/mistral-7b-instruct"},
	}}

	svc := &SetupService{
		ConfigStore: store,
		Client:      client,
		In:          strings.NewReader("sk-or-test\n2\n"),
		Out:         &bytes.Buffer{},
		Logger:      logger.NewStd(false),
	}
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if store.saved == nil {
		t.Fatal("config was not saved")
	}
	if store.saved.APIKey != "sk-or-test" {
		t.Fatalf("saved key = %q", store.saved.APIKey)
	}
	if store.saved.Model != "mistralai/mistral-7b-instruct" {
		t.Fatalf("saved model = %q", store.saved.Model)
	}
}

func TestSetupAcceptsCustomModelID(t *testing.T) {
	store := &memConfigStore{}
	client := &setupClient{models: []domain.ModelInfo{{ID: "openai/gpt-4o"}}}

	svc := &SetupService{
		ConfigStore: store,
		Client:      client,
		In:          strings.NewReader("sk-or-test\nanthropic/claude-3.5-sonnet\n"),
		Out:         &bytes.Buffer{},
		Logger:      logger.NewStd(false),
	}
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if store.saved.Model != "anthropic/claude-3.5-sonnet" {
		t.Fatalf("saved model = %q", store.saved.Model)
	}
}

func TestSetupFallsBackToStaticModelList(t *testing.T) {
	store := &memConfigStore{}
	client := &setupClient{listErr: &domain.CompletionError{Kind: domain.CompletionErrNetwork, Message: "unreachable"}}

	var out bytes.Buffer
	svc := &SetupService{
		ConfigStore: store,
		Client:      client,
		In:          strings.NewReader("sk-or-test\n1\n"),
		Out:         &out,
		Logger:      logger.NewStd(false),
	}
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if store.saved.Model != domain.FallbackModels[0] {
		t.Fatalf("saved model = %q, want first fallback", store.saved.Model)
	}
}

func TestSetupRejectsInvalidKey(t *testing.T) {
	store := &memConfigStore{}
	client := &setupClient{validateErr: &domain.CompletionError{Kind: domain.CompletionErrAuth, Message: "unauthorized"}}

	svc := &SetupService{
		ConfigStore: store,
		Client:      client,
		In:          strings.NewReader("bad-key\n"),
		Out:         &bytes.Buffer{},
		Logger:      logger.NewStd(false),
	}
	if err := svc.Run(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
	if store.saved != nil {
		t.Fatal("config saved despite invalid key")
	}
}
