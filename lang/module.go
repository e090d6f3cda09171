package lang

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/parser"

	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
	"github.com/ardnew/xprovide/provide"
)

// Module is one parsed source module. It implements [provide.Session] and
// [provide.Sink]; rules attached to it fire during [Module.Run].
//
// A Module is not safe for concurrent use. Separate modules are independent.
type Module struct {
	name   string
	src    source
	root   ast.Node
	logger log.Logger

	reserved provide.Roots
	exprs    map[string][]func(provide.Node) bool
	calls    map[string][]func(provide.Call) bool

	bindings []provide.Binding
	err      error
}

// Option configures a [Module].
type Option func(*Module)

// WithLogger sets the logger used to trace rule matches.
func WithLogger(logger log.Logger) Option {
	return func(m *Module) {
		m.logger = logger
	}
}

// Parse parses the source text of a module. name identifies the module in
// errors and logs.
func Parse(name, text string, opts ...Option) (*Module, error) {
	m := &Module{
		name:     name,
		src:      newSource(text),
		logger:   log.Default(),
		reserved: provide.Roots{},
		exprs:    map[string][]func(provide.Node) bool{},
		calls:    map[string][]func(provide.Call) bool{},
	}

	for _, opt := range opts {
		opt(m)
	}

	tree, err := parser.Parse(text)
	if err != nil {
		var pos provide.Position

		var fe *file.Error
		if errors.As(err, &fe) {
			pos = m.src.position(fe.From)
		}

		return nil, newError(name, pos, pkg.ErrParse.Wrap(err))
	}

	m.root = tree.Node
	m.logger = m.logger.With(slog.String("module", name))

	return m, nil
}

// Name returns the name the module was parsed with.
func (m *Module) Name() string { return m.name }

// Source returns the source text of the module.
func (m *Module) Source() string { return string(m.src.runes) }

// Reserve implements [provide.Session].
func (m *Module) Reserve(roots provide.Roots) {
	for name := range roots {
		m.reserved.Add(name)
	}
}

// Reserved reports whether name may not be rebound by the module.
func (m *Module) Reserved(name string) bool {
	if m.reserved.Has(name) {
		return true
	}

	return len(m.exprs[name]) > 0 || len(m.calls[name]) > 0
}

// Expression implements [provide.Session].
func (m *Module) Expression(name string, fn func(provide.Node) bool) {
	m.exprs[name] = append(m.exprs[name], fn)
}

// Call implements [provide.Session].
func (m *Module) Call(name string, fn func(provide.Call) bool) {
	m.calls[name] = append(m.calls[name], fn)
}

// Walk implements [provide.Session]. Nodes that did not originate from this
// module are ignored.
func (m *Module) Walk(nodes []provide.Node) {
	for _, n := range nodes {
		switch s := n.(type) {
		case *site:
			if s.m == m {
				m.visit(s.node)
			}
		case *callSite:
			if s.m == m {
				m.visit(s.node)
			}
		}
	}
}

// AddDependency implements [provide.Sink].
func (m *Module) AddDependency(b provide.Binding) {
	m.logger.Trace("bind",
		slog.String("text", m.src.text(b.Range)),
		slog.Any("binding", b),
	)

	m.bindings = append(m.bindings, b)
}

// Bindings returns the dependencies collected by the last [Module.Run], in
// document order.
func (m *Module) Bindings() []provide.Binding {
	return slices.Clone(m.bindings)
}

// Run visits the module once and fires the attached rules. Bindings from a
// previous run are discarded.
func (m *Module) Run() error {
	m.bindings = nil
	m.err = nil

	m.visit(m.root)

	if m.err != nil {
		return m.err
	}

	m.logger.Debug("module processed", slog.Int("bindings", len(m.bindings)))

	return nil
}
