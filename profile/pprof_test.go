package profile

import (
	"slices"
	"testing"
)

func TestModes_Sorted(t *testing.T) {
	modes := Modes()

	if !slices.IsSorted(modes) {
		t.Errorf("Modes() not sorted: %v", modes)
	}

	for _, want := range []string{"cpu", "heap", "trace"} {
		if !slices.Contains(modes, want) {
			t.Errorf("Modes() missing %q", want)
		}
	}
}

func TestStart_UnknownModeIsNoop(t *testing.T) {
	for _, m := range []string{"", "bogus"} {
		s := Start(WithMode(m), WithPath(t.TempDir()), WithQuiet(true))
		if _, ok := s.(ignore); !ok {
			t.Errorf("Start(%q) = %T, want no-op", m, s)
		}

		s.Stop()
	}
}
