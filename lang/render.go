package lang

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/xprovide/provide"
)

// Import is one dependency of a rendered module.
type Import struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Module     string `json:"module"     yaml:"module"`
}

// String returns the import as an expr line comment.
func (i Import) String() string {
	return "// import " + i.Identifier + " from " + strconv.Quote(i.Module)
}

// Imports returns the distinct dependencies of the module in order of first
// use.
func (m *Module) Imports() []Import {
	var out []Import

	seen := map[Import]bool{}

	for _, b := range m.bindings {
		imp := Import{Identifier: b.Identifier, Module: b.Module}
		if !seen[imp] {
			seen[imp] = true
			out = append(out, imp)
		}
	}

	return out
}

// Render returns the module source with every bound span replaced by its
// binding expression, preceded by one import comment per dependency. A module
// without bindings renders as its unchanged source.
func (m *Module) Render() string {
	if len(m.bindings) == 0 {
		return m.Source()
	}

	ordered := slices.SortedFunc(slices.Values(m.bindings),
		func(a, b provide.Binding) int {
			return cmp.Compare(b.Range.Start, a.Range.Start)
		},
	)

	out := slices.Clone(m.src.runes)

	for _, b := range ordered {
		start := min(max(b.Range.Start, 0), len(out))
		end := min(max(b.Range.End, start), len(out))
		out = slices.Replace(out, start, end, []rune(b.Expression())...)
	}

	var sb strings.Builder

	for _, imp := range m.Imports() {
		sb.WriteString(imp.String())
		sb.WriteByte('\n')
	}

	sb.WriteString(string(out))

	return sb.String()
}
