package models

import (
	"errors"
	"fmt"
)

var (
	ErrConfig     = errors.New("configuration error")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream error")
	ErrValidation = errors.New("validation error")
	ErrParse      = errors.New("parse error")
	ErrTimeout    = errors.New("timeout")
)

// ConfigError names a required setting that is missing.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return e.Setting + " is not configured"
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// NotFoundError means a referenced entity id did not resolve.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError is a presence or enum-membership failure on caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Required returns the validation error for a missing field.
func Required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

// UpstreamError wraps a failed call to an external service. Details keeps
// the raw provider payload when one was returned.
type UpstreamError struct {
	Service string
	Status  int
	Details string
	Err     error
}

func (e *UpstreamError) Error() string {
	msg := e.Service + " request failed"
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}

// ParseError means the model replied with text that does not satisfy the
// output contract for Flow. Raw is the unmodified reply.
type ParseError struct {
	Flow   string
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %s", e.Flow, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// TimeoutError is returned when a bounded wait runs out of attempts.
type TimeoutError struct {
	Operation string
	Attempts  int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s did not complete after %d attempts", e.Operation, e.Attempts)
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }
