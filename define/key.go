package define

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// KeySeparator separates the namespace segments of a definition key.
const KeySeparator = "."

// Key returns the canonical definition key of a declared name: each
// dot-separated segment is converted to snake_case without leading or
// trailing underscores, the segments are joined with "." and the result is
// upper-cased.
//
//	Key("flag")            == "FLAG"
//	Key("feature.flagX")   == "FEATURE.FLAG_X"
//	Key("api-url")         == "API_URL"
//	Key("__private__")     == "PRIVATE"
func Key(name string) string {
	seg := strings.Split(name, KeySeparator)
	for i, s := range seg {
		seg[i] = strings.Trim(strcase.ToSnake(s), "_")
	}

	return strings.ToUpper(strings.Join(seg, KeySeparator))
}

// Prefixes returns every strict namespace prefix of key, shortest first.
//
//	Prefixes("A.B.C") == []string{"A", "A.B"}
//	Prefixes("A")     == nil
func Prefixes(key string) []string {
	var out []string

	for i := range len(key) {
		if key[i] == KeySeparator[0] {
			out = append(out, key[:i])
		}
	}

	return out
}
