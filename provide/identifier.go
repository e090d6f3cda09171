package provide

import "strings"

// Markers used to encode a dotted key as a single identifier.
const (
	IdentifierPrefix = "__xprovide_provided_"
	IdentifierDot    = "_dot_"
)

// Identifier returns the provided identifier of key. Flat keys are returned
// unchanged; dotted keys are prefixed with [IdentifierPrefix] and each "."
// is replaced by [IdentifierDot].
//
//	Identifier("FLAG")           == "FLAG"
//	Identifier("FEATURE.FLAG_X") == "__xprovide_provided_FEATURE_dot_FLAG_X"
//
// Normalized keys are upper-case, so they never contain [IdentifierDot] and
// [ParseIdentifier] recovers them. Keys kept verbatim (callables, overrides)
// that contain it do not round-trip; [Binding.Key] records the key itself.
func Identifier(key string) string {
	if !strings.Contains(key, ".") {
		return key
	}

	return IdentifierPrefix + strings.ReplaceAll(key, ".", IdentifierDot)
}

// ParseIdentifier returns the key encoded by a provided identifier.
// Identifiers without [IdentifierPrefix] are returned unchanged.
func ParseIdentifier(ident string) string {
	rest, ok := strings.CutPrefix(ident, IdentifierPrefix)
	if !ok {
		return ident
	}

	return strings.ReplaceAll(rest, IdentifierDot, ".")
}
