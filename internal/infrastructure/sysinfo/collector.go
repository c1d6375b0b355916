// Package sysinfo gathers a small host snapshot so prompts can mention the
// OS, shell, and tooling a remedy would run under.
package sysinfo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/ports"
)

// Collector implements HostInspector with filesystem + tool detection.
type Collector struct {
	toolsToCheck []string
}

// NewCollector builds a collector probing common package managers and
// service tooling.
func NewCollector() *Collector {
	return &Collector{
		toolsToCheck: []string{
			"apt-get", "yum", "dnf", "pacman", "brew", "snap",
			"docker", "kubectl", "git", "systemctl", "pip3", "npm", "go", "make",
		},
	}
}

// Collect gathers the snapshot. Everything is best-effort; a partial
// snapshot is still useful prompt context.
func (c *Collector) Collect(ctx context.Context) domain.HostSnapshot {
	wd, _ := os.Getwd()
	return domain.HostSnapshot{
		OS:             runtime.GOOS,
		Arch:           runtime.GOARCH,
		Shell:          detectShell(),
		User:           os.Getenv("USER"),
		WorkingDir:     wd,
		AvailableTools: c.detectTools(),
	}
}

func (c *Collector) detectTools() []string {
	var available []string
	for _, tool := range c.toolsToCheck {
		if _, err := exec.LookPath(tool); err == nil {
			available = append(available, tool)
		}
	}
	sort.Strings(available)
	return available
}

func detectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "sh"
}

var _ ports.HostInspector = (*Collector)(nil)
