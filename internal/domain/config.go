// Package domain defines core business entities and value objects for DevZap.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures.
package domain

import "os"

// EnvAPIKey overrides the stored credential when set.
const EnvAPIKey = "DEVZAP_API_KEY"

// Config mirrors ~/.devzap/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	APIKey              string             `yaml:"api_key,omitempty"`
	Model               string             `yaml:"model"`
	Preferences         Preferences        `yaml:"preferences"`
	Monitoring          MonitoringSettings `yaml:"monitoring"`
	Security            SecuritySettings   `yaml:"security"`
	Execution           ExecutionSettings  `yaml:"execution"`
}

// Preferences captures user level toggles.
type Preferences struct {
	TimeoutSeconds int  `yaml:"timeout"`
	MaxTokens      int  `yaml:"max_tokens"`
	AutoExecute    bool `yaml:"auto_execute"`
}

// MonitoringSettings configures the monitor command's log scan.
type MonitoringSettings struct {
	TailLines   int      `yaml:"tail_lines"`
	LogPatterns []string `yaml:"log_patterns"`
}

// SecuritySettings defines guardrail behavior.
type SecuritySettings struct {
	Enabled   bool   `yaml:"enabled"`
	RulesFile string `yaml:"rules_file"`
}

// ExecutionSettings controls how suggested commands run.
type ExecutionSettings struct {
	Shell string `yaml:"shell"`
}

// Credential resolves the API key: environment variable first, then the
// stored value. Returns ErrMissingCredential when neither yields a value.
// Validity is only discovered on the first API call.
func (c Config) Credential() (string, error) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	return "", ErrMissingCredential
}
