package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a request failure. Every error that crosses the tool
// boundary carries exactly one kind so the RPC layer can surface it without
// string matching.
type ErrorKind string

const (
	// KindInvalidArgument marks malformed or out-of-range tool input.
	KindInvalidArgument ErrorKind = "invalid_argument"

	// KindUnknownTool marks a tool name the dispatcher does not recognize.
	KindUnknownTool ErrorKind = "unknown_tool"

	// KindUnsupportedLocation marks coordinates the domestic provider cannot
	// resolve even though the classifier routed them domestically.
	KindUnsupportedLocation ErrorKind = "unsupported_location"

	// KindUpstream marks a transport failure, timeout, or non-success status
	// from either provider.
	KindUpstream ErrorKind = "upstream_error"

	// KindParse marks an upstream response body that does not match the
	// expected shape.
	KindParse ErrorKind = "parse_error"
)

// Error is the single error type crossing the tool boundary. It pairs a kind
// with an operator-readable message and optionally wraps a cause.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Errorf builds an Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error that keeps its cause inspectable via errors.Is/As.
// The cause's text is appended to the message so a single line is enough to
// diagnose without log access.
func WrapError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...) + ": " + cause.Error(),
		cause:   cause,
	}
}

// KindOf extracts the ErrorKind from err, or "" when err is not a domain
// Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
