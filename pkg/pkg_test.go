package pkg

import (
	"regexp"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "xprovide" {
		t.Errorf("Expected Name to be %q, got %q", "xprovide", Name)
	}
}

func TestVersion(t *testing.T) {
	semver := regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)
	if !semver.MatchString(Version()) {
		t.Errorf("Version %q is not a semantic version", Version())
	}
}

func TestApply(t *testing.T) {
	double := func(n int) int { return n * 2 }
	incr := func(n int) int { return n + 1 }

	got := Apply(3, double, nil, incr)
	if got != 7 {
		t.Errorf("Apply(3, double, nil, incr) = %d, want 7", got)
	}
}

func TestPrefix(t *testing.T) {
	if Prefix() == "" {
		t.Error("Prefix() returned an empty string")
	}
}
