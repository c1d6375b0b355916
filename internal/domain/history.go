package domain

import "time"

// HistoryRecord is one persisted invocation outcome.
type HistoryRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Kind       string    `json:"kind"`
	Source     string    `json:"source"`
	Model      string    `json:"model"`
	Command    string    `json:"command"`
	Decision   string    `json:"decision"`
	Success    bool      `json:"success"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
}
