package domain

import "errors"

// Error kinds. Every error surfaced by a service wraps exactly one of them.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrProvider         = errors.New("external provider failure")
)

// Error pairs an error kind with the message returned to API clients.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// ProviderError wraps a failed call to the database or the storage provider.
func ProviderError(message string, cause error) error {
	return &Error{Kind: ErrProvider, Message: message, Cause: cause}
}

func Validation(message string) error { return NewError(ErrValidation, message) }
func NotFound(message string) error   { return NewError(ErrNotFound, message) }
func Conflict(message string) error   { return NewError(ErrConflict, message) }
