package pkg

// Sentinel errors for the xprovide module and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
//
// The first element is the innermost error. Wrapping a sentinel keeps the
// sentinel as the prefix of the chain, which is what [Error.Is] matches.
type Error []error

// ErrUnsupportedExtension is returned when a definitions directory contains a
// file whose extension is neither a script nor a declarative object file.
//
// Loading is aborted; no partial table is usable.
var ErrUnsupportedExtension = MakeErrorf("unsupported extension")

// ErrDuplicateDefinition is returned when two files of the same
// classification produce the same definition key.
var ErrDuplicateDefinition = MakeErrorf("duplicate definition")

// ErrMalformedDefinition is returned when a declarative object file (or a
// static script) cannot be parsed, or its root value is not an object.
var ErrMalformedDefinition = MakeErrorf("malformed definition")

// ErrReadDefinitions is returned when the definitions directory exists but
// cannot be read.
var ErrReadDefinitions = MakeErrorf("failed to read definitions")

// ErrInvalidTarget is returned when a target reference has no module.
var ErrInvalidTarget = MakeErrorf("invalid target")

// ErrParse is returned when a source module cannot be parsed.
//
// This error should be wrapped with the underlying parse error
// to preserve the error chain and detailed parse error information.
var ErrParse = MakeErrorf("parse error")

// ErrReservedName is returned when a source module rebinds a reserved
// namespace root or a provided definition as a local variable.
var ErrReservedName = MakeErrorf("reserved name")

// ErrDefinitionNotFound is returned when a requested definition is not found.
//
// This error should be wrapped with the name of the definition that was
// not found.
var ErrDefinitionNotFound = MakeErrorf("definition not found")

// ErrReadInput is returned when reading input fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrInvalidFormat is returned when an invalid output format is specified.
var ErrInvalidFormat = MakeErrorf("invalid format")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return slices.Clip(e)
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range e {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
// The receiver is never modified.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
// The receiver is never modified.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether target is an Error whose chain is a prefix of the
// receiver's chain. Sentinels created with [MakeErrorf] therefore match every
// error derived from them with [Error.Wrap] or [Error.Wrapf].
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if e[i] != t[i] {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(Error); ok {
		return slices.Clone(e)
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
