package domain

import "context"

// TaskKind identifies which dispatcher entry point produced a request.
type TaskKind string

const (
	TaskAnalyze TaskKind = "analyze"
	TaskInstall TaskKind = "install"
	TaskMonitor TaskKind = "monitor"
)

// DiagnosisRequest captures user intent originating from the CLI.
type DiagnosisRequest struct {
	Context       context.Context
	Kind          TaskKind
	Input         string   // error text, tool name, or log excerpt
	Source        string   // file path or tool name, for display and history
	Flagged       []string // monitor: log lines matching configured patterns
	ModelOverride string
	AutoApprove   bool
}

// Decision is the terminal state of the confirmation/execution gate.
type Decision string

const (
	DecisionNoCommand Decision = "no_command"
	DecisionExecuted  Decision = "executed"
	DecisionSkipped   Decision = "skipped"
	DecisionBlocked   Decision = "blocked"
)

// SuggestedCommand is a shell command extracted from the provider's reply,
// together with the surrounding explanation text.
type SuggestedCommand struct {
	Command     string
	Explanation string
}

// DiagnosisResponse is the canonical response propagated back to the CLI.
type DiagnosisResponse struct {
	Reply           string
	ModelUsed       string
	Suggestion      *SuggestedCommand
	Risk            RiskAssessment
	Decision        Decision
	ExecutionResult *ExecutionResult
}

// ExecutionResult wraps details from the command executor. A spawn failure
// or non-zero exit lives here; it never escalates to a program-level error.
type ExecutionResult struct {
	Ran        bool
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
	Err        error
}

// Success reports whether the command spawned and exited zero.
func (r ExecutionResult) Success() bool {
	return r.Ran && r.Err == nil && r.ExitCode == 0
}

// PromptMessage follows the role/content pair required by chat APIs.
type PromptMessage struct {
	Role    string
	Content string
}
