// Package provide attaches definition tables to a host parser.
//
// The engine never parses anything itself. A host exposes one [Session] per
// source module and a [Sink] that collects dependencies; [Attach] registers
// match rules for every key of a [define.Table] and, as the host visits
// expression and call sites, emits one [Binding] per matched reference.
//
// A binding tells the host's code generator to replace a source span with an
// import of Module, accessed through Path, under a synthesized identifier.
// With NS.SUB defined as member "sub" of ns.json:
//
//	NS.SUB + 1
//
// is rendered by the reference host as
//
//	// import __xprovide_provided_NS_dot_SUB from "/defs/ns.json"
//	__xprovide_provided_NS_dot_SUB.sub + 1
//
// Namespace roots of dotted keys ("ns" for "ns.sub") are reserved for the
// whole module: the host must refuse to rebind them locally.
//
// [Plugin] ties loading and attaching together: it loads a definitions
// directory once, applies overrides, and attaches the table selected by a
// build mode to each module the host parses.
package provide
