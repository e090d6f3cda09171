package provide

import (
	"maps"
	"slices"
)

// Position is a line and column in a source module. Line is 1-based and
// Column is 0-based.
type Position struct {
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Range is a half-open span of offsets into a source module.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// Loc is the line/column form of a [Range].
type Loc struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end"   yaml:"end"`
}

// Node is a source site visited by the host: a bare identifier, a member
// chain, or the callee of a call.
type Node interface {
	Range() Range
	Loc() Loc
}

// Call is a call site. Callee is the node being invoked; Args are the
// argument expressions in source order.
type Call interface {
	Node
	Callee() Node
	Args() []Node
}

// Session is the host's parse pass over one source module.
//
// Callbacks registered with Expression and Call fire during the pass when
// a site resolves to name. Returning true consumes the site: the host must
// not resolve it any further. Several callbacks may be registered for one
// name; they run in registration order until one returns true.
type Session interface {
	// Reserve marks names that the module may not rebind locally.
	Reserve(roots Roots)
	// Expression registers fn for bare expressions that resolve to name.
	Expression(name string, fn func(Node) bool)
	// Call registers fn for calls whose callee resolves to name.
	Call(name string, fn func(Call) bool)
	// Walk continues the pass into nodes, in order.
	Walk(nodes []Node)
}

// Sink collects the dependencies of one source module.
type Sink interface {
	AddDependency(b Binding)
}

// Roots is a set of reserved namespace roots.
type Roots map[string]struct{}

// Add inserts every name into r.
func (r Roots) Add(names ...string) {
	for _, name := range names {
		r[name] = struct{}{}
	}
}

// Has reports whether name is reserved.
func (r Roots) Has(name string) bool {
	_, ok := r[name]

	return ok
}

// Sorted returns the reserved names in sorted order.
func (r Roots) Sorted() []string {
	return slices.Sorted(maps.Keys(r))
}
