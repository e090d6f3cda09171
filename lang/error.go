package lang

import (
	"log/slog"

	"github.com/ardnew/xprovide/provide"
)

// Error is an error located in a source module. It wraps one of the
// sentinels in package pkg, so callers match it with errors.Is.
type Error struct {
	Module string
	Pos    provide.Position

	err   error
	attrs []slog.Attr
}

func newError(module string, pos provide.Position, err error) *Error {
	return &Error{Module: module, Pos: pos, err: err}
}

// With returns a copy of e carrying additional logging attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...)

	return &c
}

// Error implements the error interface.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)
	attrs = append(attrs,
		slog.String("error", e.err.Error()),
		slog.String("module", e.Module),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	)

	return slog.GroupValue(append(attrs, e.attrs...)...)
}
