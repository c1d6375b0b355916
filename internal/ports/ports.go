// Package ports defines the interfaces between the application core and
// external adapters (infrastructure). The application depends on these
// abstractions, not on concrete HTTP clients, databases, or terminals.
package ports

import (
	"context"

	"github.com/doeshing/devzap/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.devzap/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ConfigStore extends ConfigProvider with write access, used by setup and
// the config command.
type ConfigStore interface {
	ConfigProvider
	Save(domain.Config) error
	Path() string
}

// CompletionRequest carries everything one synchronous completion call needs.
// The credential is threaded explicitly so tests can inject fakes without
// environment mutation.
type CompletionRequest struct {
	Credential string
	Model      string
	MaxTokens  int
	Messages   []domain.PromptMessage
}

// CompletionClient is the remote text-completion provider. One request, one
// response; no retries, no streaming, no conversation state.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	ListModels(ctx context.Context, credential string) ([]domain.ModelInfo, error)
	ValidateKey(ctx context.Context, credential string) error
}

// CommandExecutor runs a suggested command in the configured shell. Spawn
// failures and non-zero exits are reported inside the result, never returned
// as errors.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) domain.ExecutionResult
}

// ConfirmationPrompter asks the operator whether a suggested command should
// run. Injectable so automated tests can supply canned answers.
type ConfirmationPrompter interface {
	Confirm(command, explanation string) (bool, error)
	Enabled() bool
}

// SecurityService evaluates suggested commands against guardrail rules.
type SecurityService interface {
	Evaluate(command string) (domain.RiskAssessment, error)
}

// HostInspector gathers a snapshot of the machine for prompt context.
type HostInspector interface {
	Collect(context.Context) domain.HostSnapshot
}

// HistoryStore persists invocation outcomes.
type HistoryStore interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	Path() string
}

// Logger provides logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
