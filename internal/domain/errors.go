package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInstallationRequired means the acting user has no per-user token.
	ErrInstallationRequired = errors.New("installation required")

	// ErrNotInstalled means the team has no bot installation.
	ErrNotInstalled = errors.New("app is not installed for this team")

	// ErrNotInChannel is returned when Slack rejects a scheduled message
	// because the user is not a member of the target channel.
	ErrNotInChannel = errors.New("not_in_channel")
)

// ValidationError carries per-field messages for the schedule modal.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(pairs ...string) *ValidationError {
	fields := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields[pairs[i]] = pairs[i+1]
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
