// Package errors defines the five error kinds the generator can raise and
// the single user-visible rendering rule: one line to stderr, no source
// spans, no fix suggestions. There is no source language here for a
// diagnostic to point into — only a binary metadata file, a filter, and a
// file tree.
package errors

import "fmt"

// Kind is one of the five error categories named in the specification.
type Kind int

const (
	// Usage means invalid or conflicting CLI arguments. The caller prints
	// usage text and exits 0, not 1.
	Usage Kind = iota
	// Metadata means a binary metadata file failed to parse, or a
	// referenced type could not be resolved.
	Metadata
	// Config means the -config XML file is missing its <configuration>
	// root, contains a non-ASCII prefix, or could not be read.
	Config
	// Io means a file create/write/rename or directory create failed.
	Io
	// Internal means an invariant was violated, e.g. the planner observed
	// a dependency on a namespace absent from the cache.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "usage"
	case Metadata:
		return "metadata"
	case Config:
		return "config"
	case Io:
		return "io"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the single error type the generator returns. Phase-specific
// packages construct one via the kind-named helpers below rather than
// building the struct directly.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// UsageErrorf builds a Usage error.
func UsageErrorf(format string, args ...any) *Error { return newErr(Usage, format, args...) }

// MetadataErrorf builds a Metadata error.
func MetadataErrorf(format string, args ...any) *Error { return newErr(Metadata, format, args...) }

// ConfigErrorf builds a Config error.
func ConfigErrorf(format string, args ...any) *Error { return newErr(Config, format, args...) }

// IoErrorf builds an Io error.
func IoErrorf(format string, args ...any) *Error { return newErr(Io, format, args...) }

// InternalErrorf builds an Internal error.
func InternalErrorf(format string, args ...any) *Error { return newErr(Internal, format, args...) }

// Wrap attaches a cause to an existing error of the given kind, preserving
// the wrapped error for errors.Is/As while keeping the one-line rendering.
func Wrap(k Kind, message string, cause error) *Error {
	return &Error{Kind: k, Message: message, Cause: cause}
}

// KindOf extracts the Kind of err if it is (or wraps) an *Error, defaulting
// to Internal for anything else — an un-kinded error reaching the top of
// main is itself treated as an invariant violation.
func KindOf(err error) Kind {
	var e *Error
	for err != nil {
		if as, ok := err.(*Error); ok {
			e = as
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return Internal
	}
	return e.Kind
}

// ExitCode maps a Kind to the process exit code the CLI surface uses.
func ExitCode(k Kind) int {
	if k == Usage {
		return 0
	}
	return 1
}
