package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/devzap/internal/domain"
)

// RenderResponse prints the diagnosis in a friendly, ASCII-only format.
func RenderResponse(out io.Writer, resp domain.DiagnosisResponse) {
	fmt.Fprintf(out, "Model: %s\n\n", resp.ModelUsed)
	fmt.Fprintln(out, strings.TrimSpace(resp.Reply))

	if resp.Suggestion == nil {
		fmt.Fprintln(out, "\nNo executable command was suggested.")
		return
	}

	fmt.Fprintf(out, "\nSuggested command:\n  %s\n", resp.Suggestion.Command)

	if len(resp.Risk.Reasons) > 0 {
		fmt.Fprintf(out, "\nRisk: %s\n", strings.ToUpper(string(resp.Risk.Level)))
		for _, reason := range resp.Risk.Reasons {
			fmt.Fprintf(out, " - %s\n", reason)
		}
	}

	switch resp.Decision {
	case domain.DecisionBlocked:
		fmt.Fprintln(out, "\nRefused: the command matched a guardrail rule and was not executed.")
	case domain.DecisionSkipped:
		fmt.Fprintln(out, "\nSkipped: command was not executed.")
	case domain.DecisionExecuted:
		renderExecution(out, resp.ExecutionResult)
	}
}

func renderExecution(out io.Writer, result *domain.ExecutionResult) {
	if result == nil {
		return
	}
	switch {
	case result.Success():
		fmt.Fprintln(out, "\nCommand executed successfully.")
	case result.Ran:
		fmt.Fprintf(out, "\nWarning: command exited with code %d.\n", result.ExitCode)
	default:
		fmt.Fprintf(out, "\nWarning: command could not be started: %v\n", result.Err)
	}
	if result.Stdout != "" {
		fmt.Fprintln(out, "\nstdout:")
		fmt.Fprintln(out, strings.TrimRight(result.Stdout, "\n"))
	}
	if result.Stderr != "" {
		fmt.Fprintln(out, "\nstderr:")
		fmt.Fprintln(out, strings.TrimRight(result.Stderr, "\n"))
	}
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
}
