// Package define loads environment-scoped definitions from a directory.
//
// A definition makes a module (or a member of a module's default export)
// available under a canonical, dotted, upper-snake-case key such as
// FEATURE.FLAG_X. [Load] scans one directory, classifies each file by its
// extension and name suffixes, and returns one [Table] per build
// environment, each pre-merged with the shared definitions.
//
// # File Classification
//
// The environment is chosen by a suffix on the file name, before the
// extension:
//
//	thing-dev.js    development only
//	thing-prod.js   production only
//	thing.js        shared by both
//
// The extension and a second suffix select how the file is provisioned:
//
//	flag.js          one definition FLAG, whole module
//	helper-fn.js     one definition "helper" (key used verbatim), whole module
//	consts-static.js one definition per key of the script's exported object
//	flags.json       one definition per top-level key of the document
//	flags.yaml       same as .json (also .yml)
//
// Any other extension aborts the load with [pkg.ErrUnsupportedExtension].
// Two files of the same classification producing the same key abort the
// load with [pkg.ErrDuplicateDefinition]. A missing directory is not an
// error; it yields empty tables.
//
// # Keys
//
// [Key] splits a declared name on ".", converts each segment to snake_case
// and upper-cases the result:
//
//	Key("feature.flagX") == "FEATURE.FLAG_X"
//
// # Overrides
//
// [Tables.Override] writes literal targets into both tables, replacing any
// loaded definition without a conflict check.
package define
