package client

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrConfigMissing means the mutation-service base address was never
	// configured. It is reported before any other check.
	ErrConfigMissing = errors.New("service address is not configured")

	// ErrNotAuthenticated means no session token could be obtained. It is
	// checked immediately before each mutating call, never cached, so an
	// expired session is caught at the next attempt.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUploadInFlight is returned by Session.Start while a transfer is
	// already active on the same session.
	ErrUploadInFlight = errors.New("an upload is already in progress")
)

// Terminal messages surfaced to users, matching the admin console wording.
const (
	MsgNetworkError  = "Network error"
	MsgUploadAborted = "Upload aborted"
	MsgInvalidJSON   = "Invalid JSON from server"
)

// RequestError is a non-2xx response from the mutation service. Message is
// the body's error field when present, otherwise synthesized from the
// operation name and status code.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// ReadError is a failure of the read path (the post list fetch).
type ReadError struct {
	Message string
}

func (e *ReadError) Error() string {
	return e.Message
}

// ValidationErrors maps form field names to human-readable messages. It is
// produced by the validation pipeline before any network cost is paid.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}

	return strings.Join(parts, "; ")
}
