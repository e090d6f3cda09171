package provide

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/xprovide/define"
)

// Binding is one matched reference: the host replaces Range with an import
// of Module named Identifier, followed by the member accesses in Path.
type Binding struct {
	Key        string   `json:"key"            yaml:"key"`
	Module     string   `json:"module"         yaml:"module"`
	Identifier string   `json:"identifier"     yaml:"identifier"`
	Path       []string `json:"path,omitempty" yaml:"path,omitempty"`
	Range      Range    `json:"range"          yaml:"range"`
	Loc        Loc      `json:"loc"            yaml:"loc"`
}

func bind(key string, target define.Target, n Node) Binding {
	return Binding{
		Key:        key,
		Module:     target.Module,
		Identifier: Identifier(key),
		Path:       slices.Clone(target.Path),
		Range:      n.Range(),
		Loc:        n.Loc(),
	}
}

// Expression returns the identifier followed by its member accesses, as the
// replacement text of the bound span.
func (b Binding) Expression() string {
	var sb strings.Builder

	sb.WriteString(b.Identifier)

	for _, member := range b.Path {
		if isIdentifier(member) {
			sb.WriteByte('.')
			sb.WriteString(member)
		} else {
			sb.WriteByte('[')
			sb.WriteString(strconv.Quote(member))
			sb.WriteByte(']')
		}
	}

	return sb.String()
}

// LogValue implements slog.LogValuer.
func (b Binding) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("key", b.Key),
		slog.String("identifier", b.Identifier),
		slog.String("module", b.Module),
		slog.Any("path", b.Path),
		slog.Int("start", b.Range.Start),
		slog.Int("end", b.Range.End),
	)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
