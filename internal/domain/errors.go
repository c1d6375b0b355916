package domain

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned when no API key is available from either
// the environment or the config file. Commands surface it before any network
// call is attempted.
var ErrMissingCredential = errors.New("no API key configured: set " + EnvAPIKey + " or run 'devzap setup'")

// CompletionErrorKind classifies failures from the completion provider.
type CompletionErrorKind string

const (
	CompletionErrNetwork      CompletionErrorKind = "network"
	CompletionErrAuth         CompletionErrorKind = "auth"
	CompletionErrRateLimit    CompletionErrorKind = "rate_limit"
	CompletionErrUnknownModel CompletionErrorKind = "unknown_model"
	CompletionErrMalformed    CompletionErrorKind = "malformed_response"
	CompletionErrAPI          CompletionErrorKind = "api"
)

// CompletionError carries a human-readable reason for a failed API call.
// Failures abort the current invocation; nothing is retried.
type CompletionError struct {
	Kind    CompletionErrorKind
	Message string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion %s error: %s", e.Kind, e.Message)
}

// AsCompletionError unwraps err into a *CompletionError when possible.
func AsCompletionError(err error) (*CompletionError, bool) {
	var ce *CompletionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
