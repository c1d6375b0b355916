package services

import (
	"strings"
	"testing"

	"github.com/doeshing/devzap/internal/domain"
)

func TestRenderMessagesAnalyze(t *testing.T) {
	messages, err := renderMessages(domain.TaskAnalyze, promptData{
		Input:  "panic: runtime error",
		Source: "/tmp/crash.log",
		OS:     "linux",
		Arch:   "amd64",
		Shell:  "bash",
		Tools:  "apt-get, git",
	})
	if err != nil {
		t.Fatalf("renderMessages error = %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(messages))
	}
	if messages[0].Role != "system" || !strings.Contains(messages[0].Content, "linux") {
		t.Fatalf("system message = %+v", messages[0])
	}
	if !strings.Contains(messages[1].Content, "panic: runtime error") {
		t.Fatalf("user message missing input: %q", messages[1].Content)
	}
	if !strings.Contains(messages[1].Content, "/tmp/crash.log") {
		t.Fatalf("user message missing source: %q", messages[1].Content)
	}
}

func TestRenderMessagesInstallNamesTool(t *testing.T) {
	messages, err := renderMessages(domain.TaskInstall, promptData{Input: "ripgrep", OS: "linux"})
	if err != nil {
		t.Fatalf("renderMessages error = %v", err)
	}
	if !strings.Contains(messages[1].Content, "install ripgrep on linux") {
		t.Fatalf("user message = %q", messages[1].Content)
	}
}

func TestRenderMessagesMonitorIncludesFlaggedLines(t *testing.T) {
	messages, err := renderMessages(domain.TaskMonitor, promptData{
		Input: "line a\nline b",
		Flags: "Error: connect ECONNREFUSED",
	})
	if err != nil {
		t.Fatalf("renderMessages error = %v", err)
	}
	if !strings.Contains(messages[1].Content, "Flagged lines:") {
		t.Fatalf("user message missing flagged section: %q", messages[1].Content)
	}
	if !strings.Contains(messages[1].Content, "ECONNREFUSED") {
		t.Fatalf("user message = %q", messages[1].Content)
	}
}

func TestRenderMessagesMonitorOmitsEmptyFlagSection(t *testing.T) {
	messages, err := renderMessages(domain.TaskMonitor, promptData{Input: "quiet log"})
	if err != nil {
		t.Fatalf("renderMessages error = %v", err)
	}
	if strings.Contains(messages[1].Content, "Flagged lines:") {
		t.Fatalf("unexpected flagged section: %q", messages[1].Content)
	}
}
