package lang

import (
	"sort"

	"github.com/ardnew/xprovide/provide"
)

// source is the text of a module indexed by rune, which is the unit of the
// offsets reported by the expr lexer.
type source struct {
	runes []rune
	lines []int // rune offset of the first rune of each line
}

func newSource(text string) source {
	s := source{runes: []rune(text), lines: []int{0}}

	for i, r := range s.runes {
		if r == '\n' {
			s.lines = append(s.lines, i+1)
		}
	}

	return s
}

// position returns the line (1-based) and column (0-based, in runes) of a
// rune offset.
func (s source) position(offset int) provide.Position {
	line := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i] > offset
	}) - 1

	line = max(line, 0)

	return provide.Position{Line: line + 1, Column: offset - s.lines[line]}
}

func (s source) loc(r provide.Range) provide.Loc {
	return provide.Loc{Start: s.position(r.Start), End: s.position(r.End)}
}

func (s source) text(r provide.Range) string {
	start := min(max(r.Start, 0), len(s.runes))
	end := min(max(r.End, start), len(s.runes))

	return string(s.runes[start:end])
}
