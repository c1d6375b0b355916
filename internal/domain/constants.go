package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

const (
	// DefaultRequestTimeout bounds a single completion call.
	DefaultRequestTimeout = 60 * time.Second
	// DefaultMaxTokens caps the completion response length.
	DefaultMaxTokens = 1024
	// DefaultTailLines is the monitor command's fixed log window.
	DefaultTailLines = 200
)

// HealthStatus grades one doctor check.
type HealthStatus string

const (
	HealthOK   HealthStatus = "ok"
	HealthWarn HealthStatus = "warn"
	HealthFail HealthStatus = "fail"
)

// HealthCheck is one doctor finding.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates doctor findings.
type HealthReport struct {
	Checks []HealthCheck
}

// HostSnapshot describes the machine a remedy would run on.
type HostSnapshot struct {
	OS             string
	Arch           string
	Shell          string
	User           string
	WorkingDir     string
	AvailableTools []string
}
