package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the client can report. Raw status codes
// never escape the classifier; callers switch on the kind.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindCreationRejected is a 400 on create or update.
	KindCreationRejected
	// KindNotFound is a 404 on a single-resource read or a delete.
	KindNotFound
	// KindServerUnavailable is a 503 on reads or a connection-level failure.
	KindServerUnavailable
	// KindInvalidSettings is a 400 on a settings upload.
	KindInvalidSettings
	// KindUnexpectedStatus is any status the action's table does not anticipate.
	KindUnexpectedStatus
	// KindNotSupported is an extended-only feature invoked against a base edition server.
	KindNotSupported
	// KindInvalidCredentials is a 400 on a password change.
	KindInvalidCredentials
)

func (k ErrorKind) String() string {
	switch k {
	case KindCreationRejected:
		return "CreationRejected"
	case KindNotFound:
		return "NotFound"
	case KindServerUnavailable:
		return "ServerUnavailable"
	case KindInvalidSettings:
		return "InvalidSettings"
	case KindUnexpectedStatus:
		return "UnexpectedStatus"
	case KindNotSupported:
		return "NotSupported"
	case KindInvalidCredentials:
		return "InvalidCredentials"
	default:
		return "Unknown"
	}
}

// ExitCode is the process status the CLI terminates with for this kind.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindNotSupported:
		return 101
	case KindCreationRejected:
		return 102
	case KindInvalidSettings:
		return 103
	case KindNotFound:
		return 104
	case KindServerUnavailable:
		return 105
	case KindUnexpectedStatus:
		return 106
	case KindInvalidCredentials:
		return 107
	default:
		return 1
	}
}

// Sentinel errors, one per kind, for errors.Is checks.
var (
	ErrCreationRejected   = &Error{Kind: KindCreationRejected}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrServerUnavailable  = &Error{Kind: KindServerUnavailable}
	ErrInvalidSettings    = &Error{Kind: KindInvalidSettings}
	ErrUnexpectedStatus   = &Error{Kind: KindUnexpectedStatus}
	ErrNotSupported       = &Error{Kind: KindNotSupported}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
)

// Error is the single error type produced by the classifier, the transport
// and the edition gate.
type Error struct {
	Kind ErrorKind
	// Resource names what the failing operation targeted, e.g. "capability 42".
	Resource string
	// Message is the server-supplied detail, usually the response body.
	Message string
	// StatusCode is the HTTP status when the error came from a response.
	StatusCode int
	// Err is the underlying cause for transport failures.
	Err error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindCreationRejected:
		msg = "the server rejected the request"
	case KindNotFound:
		msg = "not found"
	case KindServerUnavailable:
		msg = "could not connect to the Nexus server"
	case KindInvalidSettings:
		msg = "the server rejected the uploaded settings"
	case KindUnexpectedStatus:
		msg = fmt.Sprintf("unexpected status code %d", e.StatusCode)
	case KindNotSupported:
		msg = "this operation requires Nexus Pro"
	case KindInvalidCredentials:
		msg = "the provided credentials are invalid"
	default:
		msg = "unknown error"
	}
	if e.Resource != "" {
		msg = e.Resource + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports kind equality so errors.Is(err, ErrNotFound) works through wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the kind-specific exit status.
func (e *Error) ExitCode() int {
	return e.Kind.ExitCode()
}

// KindOf extracts the ErrorKind from err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotSupported checks if the error came from the edition gate.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
