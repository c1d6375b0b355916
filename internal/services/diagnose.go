package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/ports"
	"github.com/doeshing/devzap/internal/suggest"
)

// DiagnoseService orchestrates one invocation end-to-end: build the prompt,
// call the completion client, extract a suggestion, and run it through the
// confirmation/execution gate.
type DiagnoseService struct {
	ConfigProvider ports.ConfigProvider
	Client         ports.CompletionClient
	Host           ports.HostInspector
	Security       ports.SecurityService
	Executor       ports.CommandExecutor
	Prompter       ports.ConfirmationPrompter
	History        ports.HistoryStore
	Logger         ports.Logger
}

// Run processes a single diagnosis request. The returned error covers
// configuration, input, and API failures only; a failed suggested command is
// reported inside the response.
func (s *DiagnoseService) Run(req domain.DiagnosisRequest) (domain.DiagnosisResponse, error) {
	if s.ConfigProvider == nil || s.Client == nil || s.Host == nil ||
		s.Security == nil || s.Executor == nil || s.Logger == nil {
		return domain.DiagnosisResponse{}, errors.New("services.DiagnoseService dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.DiagnosisResponse{}, fmt.Errorf("load config: %w", err)
	}

	// Fail fast before any network call.
	credential, err := cfg.Credential()
	if err != nil {
		return domain.DiagnosisResponse{}, err
	}

	model := req.ModelOverride
	if model == "" {
		model = cfg.Model
	}

	host := s.Host.Collect(ctx)
	messages, err := renderMessages(req.Kind, buildPromptData(req, host))
	if err != nil {
		return domain.DiagnosisResponse{}, fmt.Errorf("render prompt: %w", err)
	}

	s.Logger.Info("calling completion provider", map[string]interface{}{
		"kind":  string(req.Kind),
		"model": model,
	})

	reply, err := s.Client.Complete(ctx, ports.CompletionRequest{
		Credential: credential,
		Model:      model,
		MaxTokens:  cfg.Preferences.MaxTokens,
		Messages:   messages,
	})
	if err != nil {
		return domain.DiagnosisResponse{}, err
	}

	resp := domain.DiagnosisResponse{
		Reply:     reply,
		ModelUsed: model,
	}

	suggestion, ok := suggest.Extract(reply)
	if !ok {
		// Explanation only: the gate never starts.
		resp.Decision = domain.DecisionNoCommand
		s.record(req, resp)
		return resp, nil
	}
	resp.Suggestion = &suggestion

	risk, err := s.Security.Evaluate(suggestion.Command)
	if err != nil {
		return resp, fmt.Errorf("security evaluate: %w", err)
	}
	resp.Risk = risk

	if cfg.Security.Enabled && risk.Action == domain.ActionBlock {
		resp.Decision = domain.DecisionBlocked
		s.record(req, resp)
		return resp, nil
	}

	approved, err := s.decide(req, cfg, suggestion)
	if err != nil {
		return resp, err
	}
	if !approved {
		resp.Decision = domain.DecisionSkipped
		s.record(req, resp)
		return resp, nil
	}

	result := s.Executor.Execute(ctx, suggestion.Command)
	resp.Decision = domain.DecisionExecuted
	resp.ExecutionResult = &result
	s.record(req, resp)
	return resp, nil
}

// decide is the gate's transition rule: auto-approve executes without
// prompting, otherwise the operator is asked and anything but an affirmative
// answer skips.
func (s *DiagnoseService) decide(req domain.DiagnosisRequest, cfg domain.Config, suggestion domain.SuggestedCommand) (bool, error) {
	if req.AutoApprove || cfg.Preferences.AutoExecute {
		return true, nil
	}
	if s.Prompter == nil || !s.Prompter.Enabled() {
		return false, nil
	}
	return s.Prompter.Confirm(suggestion.Command, suggestion.Explanation)
}

func (s *DiagnoseService) record(req domain.DiagnosisRequest, resp domain.DiagnosisResponse) {
	if s.History == nil {
		return
	}
	rec := domain.HistoryRecord{
		Timestamp: time.Now(),
		Kind:      string(req.Kind),
		Source:    req.Source,
		Model:     resp.ModelUsed,
		Decision:  string(resp.Decision),
	}
	if resp.Suggestion != nil {
		rec.Command = resp.Suggestion.Command
	}
	if resp.ExecutionResult != nil {
		rec.Success = resp.ExecutionResult.Success()
		rec.ExitCode = resp.ExecutionResult.ExitCode
		rec.DurationMS = resp.ExecutionResult.DurationMS
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}
