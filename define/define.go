package define

import (
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/xprovide/pkg"
)

// Env identifies the build environment a definition belongs to.
type Env int

const (
	// Shared definitions are merged into every environment. Shared is only
	// visible while a directory is being loaded.
	Shared Env = iota
	Development
	Production
)

// String returns the name of the environment.
func (e Env) String() string {
	switch e {
	case Shared:
		return "shared"
	case Development:
		return "development"
	case Production:
		return "production"
	default:
		return "unknown"
	}
}

// ModeEnv returns the environment selected by a host build mode.
// Only "development" (or "dev") selects [Development]; every other mode,
// including "none" and the empty string, selects [Production].
func ModeEnv(mode string) Env {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "development", "dev":
		return Development
	default:
		return Production
	}
}

// TargetSeparator separates the module from the member path in the text
// form of a [Target].
const TargetSeparator = "#"

// Target is what a definition resolves to: a module and an optional member
// path applied to the module's default export.
type Target struct {
	Module string   `json:"module"         yaml:"module"`
	Path   []string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ParseTarget parses the text form "module" or "module#member[#member...]".
func ParseTarget(s string) (Target, error) {
	parts := strings.Split(strings.TrimSpace(s), TargetSeparator)
	if parts[0] == "" {
		return Target{}, pkg.ErrInvalidTarget.Wrapf("%q: missing module", s)
	}

	t := Target{Module: parts[0]}

	for _, member := range parts[1:] {
		if member == "" {
			return Target{}, pkg.ErrInvalidTarget.Wrapf("%q: empty member", s)
		}

		t.Path = append(t.Path, member)
	}

	return t, nil
}

// String returns the text form accepted by [ParseTarget].
func (t Target) String() string {
	return strings.Join(append([]string{t.Module}, t.Path...), TargetSeparator)
}

// Equal reports whether t and u refer to the same module and member path.
func (t Target) Equal(u Target) bool {
	return t.Module == u.Module && slices.Equal(t.Path, u.Path)
}

// Table maps definition keys to targets for one environment.
//
// Tables returned by this package must be treated as read-only; they are
// shared by every module processed in a build.
type Table map[string]Target

// Keys returns the keys of the table in sorted order.
func (t Table) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Lookup returns the target for key.
func (t Table) Lookup(key string) (Target, bool) {
	target, ok := t[key]

	return target, ok
}

// Clone returns a shallow copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}

	return maps.Clone(t)
}

// Tables holds the merged definitions of both environments.
type Tables struct {
	Development Table `json:"development" yaml:"development"`
	Production  Table `json:"production"  yaml:"production"`
}

// EmptyTables returns tables with no definitions.
func EmptyTables() Tables {
	return Tables{Development: Table{}, Production: Table{}}
}

// For returns the table of env. [Shared] has no table of its own after
// loading and yields nil.
func (t Tables) For(env Env) Table {
	switch env {
	case Development:
		return t.Development
	case Production:
		return t.Production
	default:
		return nil
	}
}

// Override returns a copy of t with every override written into both
// tables. Existing keys are replaced without a conflict check; override keys
// are used verbatim.
func (t Tables) Override(overrides map[string]Target) Tables {
	out := Tables{
		Development: t.Development.Clone(),
		Production:  t.Production.Clone(),
	}

	for key, target := range overrides {
		out.Development[key] = target
		out.Production[key] = target
	}

	return out
}
