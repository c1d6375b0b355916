package services

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/doeshing/devzap/internal/domain"
)

// promptData feeds the task templates.
type promptData struct {
	Input  string
	Source string
	OS     string
	Arch   string
	Shell  string
	Tools  string
	Flags  string // monitor: lines matching configured log patterns
}

const systemTemplate = `You are DevZap, a DevOps AI assistant.
Diagnose the problem and suggest a remedy. When a shell command fixes it,
put exactly one command in a fenced code block so it can be executed as-is.
Environment:
- OS: {{.OS}} ({{.Arch}})
- Shell: {{.Shell}}
{{if .Tools}}- Tools: {{.Tools}}{{end}}`

var userTemplates = map[domain.TaskKind]string{
	domain.TaskAnalyze: `Analyze this error output{{if .Source}} from {{.Source}}{{end}} and suggest a fix:

{{.Input}}`,
	domain.TaskInstall: `How do I install {{.Input}} on {{.OS}}? Give the single best installation command for this system.`,
	domain.TaskMonitor: `Inspect this log excerpt{{if .Source}} from {{.Source}}{{end}} for problems and suggest a remedy.
{{if .Flags}}Flagged lines:
{{.Flags}}

{{end}}Log tail:

{{.Input}}`,
}

// renderMessages builds the system/user message pair for one task.
func renderMessages(kind domain.TaskKind, data promptData) ([]domain.PromptMessage, error) {
	system, err := executeTemplate(systemTemplate, data)
	if err != nil {
		return nil, err
	}

	userTmpl, ok := userTemplates[kind]
	if !ok {
		userTmpl = "{{.Input}}"
	}
	user, err := executeTemplate(userTmpl, data)
	if err != nil {
		return nil, err
	}

	return []domain.PromptMessage{
		{Role: "system", Content: strings.TrimSpace(system)},
		{Role: "user", Content: strings.TrimSpace(user)},
	}, nil
}

func buildPromptData(req domain.DiagnosisRequest, host domain.HostSnapshot) promptData {
	return promptData{
		Input:  strings.TrimSpace(req.Input),
		Source: req.Source,
		OS:     host.OS,
		Arch:   host.Arch,
		Shell:  host.Shell,
		Tools:  strings.Join(host.AvailableTools, ", "),
		Flags:  strings.Join(req.Flagged, "\n"),
	}
}

func executeTemplate(raw string, data promptData) (string, error) {
	tmpl, err := template.New("prompt").Parse(raw)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
