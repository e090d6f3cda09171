// Package lang is a reference host for the substitution engine in package
// provide. Source modules are written in the expr-lang expression language.
//
// [Parse] turns source text into a [Module], which serves as both the parse
// session and the dependency sink of that source:
//
//	m, err := lang.Parse("main.expr", src)
//	if err != nil { ... }
//	plugin.Attach(m, m, "production")
//	if err := m.Run(); err != nil { ... }
//	fmt.Print(m.Render())
//
// # Names
//
// An identifier (FLAG) or a chain of dotted property accesses rooted at an
// identifier (ns.sub.value) is a name. [Module.Run] visits the tree once, in
// document order, and offers each name to the rules registered for it,
// longest chain first: ns.sub.value, then ns.sub, then ns. Optional chains
// (a?.b) and computed subscripts (a[b]) end a name.
//
// A call whose callee is a name (helper(x), ns.make(x)) is offered to the
// call rules of that name. If none consumes it, the callee is visited as an
// ordinary expression, followed by the arguments.
//
// # Reserved Names
//
// Binding a reserved namespace root or a defined name with let is an error:
//
//	let ns = 1; ns.sub   // ErrReservedName
//
// # Rendering
//
// [Module.Render] replaces every bound span with the provided identifier and
// its member accesses, and prepends one import comment per dependency:
//
//	// import FLAG from "/defs/flag.js"
//	FLAG && true
package lang
