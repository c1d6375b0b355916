// Package suggest extracts a candidate shell command from free-form
// completion text. Pure string functions, best-effort: no correctness
// guarantee beyond a plausible single command line.
package suggest

import (
	"strings"

	"github.com/doeshing/devzap/internal/domain"
)

// shellVerbs are command words that mark a bare line as executable.
var shellVerbs = map[string]bool{
	"sudo": true, "apt": true, "apt-get": true, "yum": true, "dnf": true,
	"pacman": true, "brew": true, "snap": true, "pip": true, "pip3": true,
	"npm": true, "yarn": true, "go": true, "cargo": true, "gem": true,
	"systemctl": true, "service": true, "journalctl": true, "docker": true,
	"kubectl": true, "git": true, "curl": true, "wget": true, "chmod": true,
	"chown": true, "mkdir": true, "rm": true, "mv": true, "cp": true,
	"ln": true, "tar": true, "make": true, "kill": true, "pkill": true,
	"export": true, "source": true,
}

// Extract scans reply text for a recognizable command. The second return is
// false when no command-like content is found, the normal explanation-only
// case.
func Extract(text string) (domain.SuggestedCommand, bool) {
	if cmd := fromCodeBlock(text); cmd != "" {
		return domain.SuggestedCommand{Command: cmd, Explanation: text}, true
	}
	if cmd := fromPrefixedLine(text); cmd != "" {
		return domain.SuggestedCommand{Command: cmd, Explanation: text}, true
	}
	if cmd := fromVerbLine(text); cmd != "" {
		return domain.SuggestedCommand{Command: cmd, Explanation: text}, true
	}
	return domain.SuggestedCommand{}, false
}

// fromCodeBlock returns the first runnable line of the first fenced block.
func fromCodeBlock(text string) string {
	start := strings.Index(text, "```")
	if start == -1 {
		return ""
	}
	rest := text[start+3:]
	end := strings.Index(rest, "```")
	if end == -1 {
		return ""
	}
	block := rest[:end]

	lines := strings.Split(block, "\n")
	if len(lines) > 0 && isLanguageTag(lines[0]) {
		lines = lines[1:]
	}
	for _, line := range lines {
		line = stripPromptMarker(strings.TrimSpace(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}

func fromPrefixedLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		for _, prefix := range []string{"run:", "command:", "execute:"} {
			if strings.HasPrefix(lower, prefix) {
				return strings.TrimSpace(line[len(prefix):])
			}
		}
		if strings.HasPrefix(line, "$ ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}

func fromVerbLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first, _, _ := strings.Cut(line, " ")
		if shellVerbs[first] {
			return line
		}
	}
	return ""
}

func isLanguageTag(line string) bool {
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "sh", "bash", "shell", "zsh", "console", "terminal":
		return true
	}
	return false
}

func stripPromptMarker(line string) string {
	if strings.HasPrefix(line, "$ ") {
		return strings.TrimSpace(line[2:])
	}
	return line
}
