package patient

import (
	"errors"
	"strings"
)

// Conflict sentinels returned by Repository.Save when a unique
// constraint rejects the write at commit. The service translates them
// into the matching validation message.
var (
	ErrEmailConflict = errors.New("email unique constraint violated")
	ErrDNIConflict   = errors.New("dni unique constraint violated")
)

// NotFoundError is raised by every load-or-fail path. The transport
// renders it as a single-message 404 envelope.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// ValidationError carries the accumulated messages of a rejected write,
// in discovery order. The transport renders it as a 400 envelope.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, "; ") }

func NewValidation(messages ...string) error {
	return &ValidationError{Messages: messages}
}
