package lang

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/expr-lang/expr/ast"

	"github.com/ardnew/xprovide/pkg"
	"github.com/ardnew/xprovide/provide"
)

// site is a visited node handed to expression rules.
type site struct {
	m    *Module
	node ast.Node
	span provide.Range
}

func (m *Module) site(node ast.Node) *site {
	return &site{m: m, node: node, span: span(node)}
}

func (s *site) Range() provide.Range { return s.span }
func (s *site) Loc() provide.Loc     { return s.m.src.loc(s.span) }

// callSite is a visited call handed to call rules. args excludes a piped
// argument, which is visited before the call.
type callSite struct {
	site
	call *ast.CallNode
	args []ast.Node
}

func (c *callSite) Callee() provide.Node { return c.m.site(c.call.Callee) }

func (c *callSite) Args() []provide.Node {
	args := make([]provide.Node, 0, len(c.args))
	for _, a := range c.args {
		args = append(args, c.m.site(a))
	}

	return args
}

// visit walks node in pre-order. It stops at the first error.
func (m *Module) visit(node ast.Node) {
	if node == nil || m.err != nil {
		return
	}

	switch n := node.(type) {
	case *ast.IdentifierNode:
		m.matchExpression(n)

	case *ast.MemberNode:
		if m.matchExpression(n) {
			return
		}

		m.visit(n.Node)
		m.visit(n.Property)

	case *ast.CallNode:
		head, args := piped(n)
		m.visit(head)

		if m.matchCall(n, args) {
			return
		}

		m.visit(n.Callee)
		m.visitAll(args)

	case *ast.ChainNode:
		m.visit(n.Node)

	case *ast.UnaryNode:
		m.visit(n.Node)

	case *ast.BinaryNode:
		m.visit(n.Left)
		m.visit(n.Right)

	case *ast.SliceNode:
		m.visit(n.Node)
		m.visit(n.From)
		m.visit(n.To)

	case *ast.BuiltinNode:
		m.visitAll(n.Arguments)

	case *ast.PredicateNode:
		m.visit(n.Node)

	case *ast.ConditionalNode:
		m.visit(n.Cond)
		m.visit(n.Exp1)
		m.visit(n.Exp2)

	case *ast.VariableDeclaratorNode:
		if m.Reserved(n.Name) {
			m.err = newError(
				m.name,
				m.src.position(n.Location().From),
				pkg.ErrReservedName.Wrapf("let %s", n.Name),
			).With(slog.String("name", n.Name))

			return
		}

		m.visit(n.Value)
		m.visit(n.Expr)

	case *ast.SequenceNode:
		m.visitAll(n.Nodes)

	case *ast.ArrayNode:
		m.visitAll(n.Nodes)

	case *ast.MapNode:
		m.visitAll(n.Pairs)

	case *ast.PairNode:
		m.visit(n.Key)
		m.visit(n.Value)
	}
}

func (m *Module) visitAll(nodes []ast.Node) {
	for _, n := range nodes {
		m.visit(n)
	}
}

// matchExpression offers a name to its expression rules.
func (m *Module) matchExpression(node ast.Node) bool {
	name, ok := nameOf(node)
	if !ok {
		return false
	}

	rules := m.exprs[name]
	if len(rules) == 0 {
		return false
	}

	s := m.site(node)
	for _, fn := range rules {
		if fn(s) {
			return true
		}
	}

	return false
}

// piped splits the arguments of call into the one written before the callee
// (the left side of "x | f(y)"), if any, and the rest.
func piped(call *ast.CallNode) (ast.Node, []ast.Node) {
	args := call.Arguments
	if len(args) > 0 && span(args[0]).Start < span(call.Callee).Start {
		return args[0], args[1:]
	}

	return nil, args
}

// matchCall offers a call to the call rules of its callee's name. args are
// the arguments written after the callee.
func (m *Module) matchCall(call *ast.CallNode, args []ast.Node) bool {
	name, ok := nameOf(call.Callee)
	if !ok {
		return false
	}

	rules := m.calls[name]
	if len(rules) == 0 {
		return false
	}

	c := &callSite{
		site: site{m: m, node: call, span: span(call)},
		call: call,
		args: args,
	}
	for _, fn := range rules {
		if fn(c) {
			return true
		}
	}

	return false
}

// nameOf returns the dotted name of an identifier or of a property chain
// rooted at an identifier.
func nameOf(node ast.Node) (string, bool) {
	var path []string

	for {
		switch n := node.(type) {
		case *ast.IdentifierNode:
			path = append(path, n.Value)
			slices.Reverse(path)

			return strings.Join(path, "."), true

		case *ast.MemberNode:
			prop, ok := property(n)
			if !ok {
				return "", false
			}

			path = append(path, prop)
			node = n.Node

		default:
			return "", false
		}
	}
}

// property returns the name of a dotted property access. The parser gives a
// dotted member node the location of its property token; a subscript member
// node has the location of its opening bracket.
func property(n *ast.MemberNode) (string, bool) {
	if n.Optional {
		return "", false
	}

	prop, ok := n.Property.(*ast.StringNode)
	if !ok || n.Location() != prop.Location() {
		return "", false
	}

	return prop.Value, true
}

// span returns the source range of node. The range of a property chain runs
// from its root identifier through its last property; other nodes report
// the location of their own token.
func span(node ast.Node) provide.Range {
	loc := node.Location()
	r := provide.Range{Start: loc.From, End: loc.To}

	if n, ok := node.(*ast.MemberNode); ok {
		if _, ok := property(n); ok {
			r.Start = span(n.Node).Start
		}
	}

	return r
}
