package provide

import "github.com/ardnew/xprovide/define"

// Attach registers the rules of table on s. Matched references are emitted
// to deps in the order the host visits them.
//
// The strict prefixes of every dotted key are reserved once, before any
// rule is registered. Each key then gets an expression rule, which binds the
// whole expression span, and a call rule, which binds only the callee span
// and walks the arguments so references nested inside them are still found.
func Attach(s Session, deps Sink, table define.Table) {
	keys := table.Keys()

	roots := Roots{}
	for _, key := range keys {
		roots.Add(define.Prefixes(key)...)
	}

	s.Reserve(roots)

	for _, key := range keys {
		target := table[key]

		s.Expression(key, func(n Node) bool {
			deps.AddDependency(bind(key, target, n))

			return true
		})

		s.Call(key, func(c Call) bool {
			deps.AddDependency(bind(key, target, c.Callee()))
			s.Walk(c.Args())

			return true
		})
	}
}
