package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_IsMatchesWrappedSentinel(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "sentinel itself",
			err:    ErrDuplicateDefinition,
			target: ErrDuplicateDefinition,
			want:   true,
		},
		{
			name:   "wrapf",
			err:    ErrDuplicateDefinition.Wrapf("key %q", "FOO"),
			target: ErrDuplicateDefinition,
			want:   true,
		},
		{
			name:   "different sentinel",
			err:    ErrUnsupportedExtension.Wrapf("%q", ".txt"),
			target: ErrDuplicateDefinition,
			want:   false,
		},
		{
			name:   "through fmt wrapping",
			err:    fmt.Errorf("load: %w", ErrMalformedDefinition.Wrapf("x.json")),
			target: ErrMalformedDefinition,
			want:   true,
		},
		{
			name:   "plain error",
			err:    errors.New("duplicate definition"),
			target: ErrDuplicateDefinition,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

func TestError_WrapDoesNotAlias(t *testing.T) {
	base := ErrParse.Wrapf("first")
	a := base.Wrapf("a")
	b := base.Wrapf("b")

	if a.Error() != "parse error: first: a" {
		t.Errorf("a = %q", a.Error())
	}

	if b.Error() != "parse error: first: b" {
		t.Errorf("b = %q", b.Error())
	}
}

func TestMakeError_SkipsNil(t *testing.T) {
	if err := MakeError(nil, nil); err != nil {
		t.Errorf("MakeError(nil, nil) = %v, want nil", err)
	}

	inner := errors.New("inner")
	chain := MakeError(inner, nil, errors.New("outer"))

	if len(chain) != 2 {
		t.Fatalf("len(chain) = %d, want 2", len(chain))
	}

	if chain.Error() != "inner: outer" {
		t.Errorf("chain.Error() = %q", chain.Error())
	}

	if !errors.Is(chain, inner) {
		t.Error("chain does not match inner error")
	}
}
