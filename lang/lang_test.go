package lang

import (
	"errors"
	"testing"

	"github.com/expr-lang/expr/parser"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/xprovide/define"
	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
	"github.com/ardnew/xprovide/provide"
)

var testTable = define.Table{
	"FLAG":      {Module: "/defs/flag.js"},
	"NS.SUB":    {Module: "/defs/ns.json", Path: []string{"sub"}},
	"makeThing": {Module: "/defs/makeThing-fn.js"},
}

// process parses text, attaches testTable and runs the module.
func process(t *testing.T, text string) (*Module, error) {
	t.Helper()

	m, err := Parse("test.expr", text, WithLogger(log.Discard()))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}

	provide.Attach(m, m, testTable)

	return m, m.Run()
}

func spans(bindings []provide.Binding) []provide.Range {
	out := make([]provide.Range, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, b.Range)
	}

	return out
}

func TestRun_DocumentOrder(t *testing.T) {
	m, err := process(t, "FLAG + NS.SUB(FLAG)")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []provide.Range{{Start: 0, End: 4}, {Start: 7, End: 13}, {Start: 14, End: 18}}
	if diff := cmp.Diff(want, spans(m.Bindings())); diff != "" {
		t.Errorf("binding spans mismatch (-want +got):\n%s", diff)
	}

	ids := make([]string, 0, 3)
	for _, b := range m.Bindings() {
		ids = append(ids, b.Identifier)
	}

	wantIDs := []string{"FLAG", "__xprovide_provided_NS_dot_SUB", "FLAG"}
	if diff := cmp.Diff(wantIDs, ids); diff != "" {
		t.Errorf("identifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_NamespacedExpression(t *testing.T) {
	m, err := process(t, "NS.SUB")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []provide.Binding{{
		Key:        "NS.SUB",
		Module:     "/defs/ns.json",
		Identifier: "__xprovide_provided_NS_dot_SUB",
		Path:       []string{"sub"},
		Range:      provide.Range{Start: 0, End: 6},
		Loc: provide.Loc{
			Start: provide.Position{Line: 1, Column: 0},
			End:   provide.Position{Line: 1, Column: 6},
		},
	}}

	if diff := cmp.Diff(want, m.Bindings()); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}

	if !m.Reserved("NS") {
		t.Error("NS is not reserved")
	}
}

func TestRun_Matches(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []provide.Range
	}{
		{
			name: "longer chain falls back to defined prefix",
			text: "NS.SUB.deeper",
			want: []provide.Range{{Start: 0, End: 6}},
		},
		{
			name: "root alone is not a definition",
			text: "NS",
			want: []provide.Range{},
		},
		{
			name: "optional chain",
			text: "NS?.SUB",
			want: []provide.Range{},
		},
		{
			name: "subscript",
			text: `NS["SUB"]`,
			want: []provide.Range{},
		},
		{
			name: "callable",
			text: "makeThing(1, FLAG)",
			want: []provide.Range{{Start: 0, End: 9}, {Start: 13, End: 17}},
		},
		{
			name: "piped call",
			text: "FLAG | makeThing(NS.SUB)",
			want: []provide.Range{{Start: 0, End: 4}, {Start: 7, End: 16}, {Start: 17, End: 23}},
		},
		{
			name: "piped into undefined call",
			text: "FLAG | other(NS.SUB)",
			want: []provide.Range{{Start: 0, End: 4}, {Start: 13, End: 19}},
		},
		{
			name: "nested in builtin predicate",
			text: "all(items, {# > FLAG})",
			want: []provide.Range{{Start: 16, End: 20}},
		},
		{
			name: "let value",
			text: "let x = FLAG; x",
			want: []provide.Range{{Start: 8, End: 12}},
		},
		{
			name: "conditional and array",
			text: "FLAG ? [NS.SUB] : nil",
			want: []provide.Range{{Start: 0, End: 4}, {Start: 8, End: 14}},
		},
		{
			name: "map literal",
			text: "{a: FLAG}",
			want: []provide.Range{{Start: 4, End: 8}},
		},
		{
			name: "unicode offsets",
			text: "'é' + FLAG",
			want: []provide.Range{{Start: 6, End: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := process(t, tt.text)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			if diff := cmp.Diff(tt.want, spans(m.Bindings())); diff != "" {
				t.Errorf("binding spans mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun_ReservedName(t *testing.T) {
	for _, text := range []string{
		"let NS = 1; NS.SUB",
		"let FLAG = 2; FLAG",
		"1 + (let makeThing = 3; makeThing)",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := process(t, text)
			if !errors.Is(err, pkg.ErrReservedName) {
				t.Fatalf("Run() error = %v, want ErrReservedName", err)
			}

			var le *Error
			if !errors.As(err, &le) || le.Module != "test.expr" {
				t.Errorf("error %v does not name the module", err)
			}
		})
	}
}

func TestRun_Position(t *testing.T) {
	m, err := process(t, "1 +\n  FLAG")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := provide.Loc{
		Start: provide.Position{Line: 2, Column: 2},
		End:   provide.Position{Line: 2, Column: 6},
	}

	if diff := cmp.Diff(want, m.Bindings()[0].Loc); diff != "" {
		t.Errorf("loc mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_RulesRunInOrderUntilConsumed(t *testing.T) {
	m, err := Parse("order.expr", "X", WithLogger(log.Discard()))
	if err != nil {
		t.Fatal(err)
	}

	var calls []string

	m.Expression("X", func(provide.Node) bool {
		calls = append(calls, "first")

		return false
	})
	m.Expression("X", func(provide.Node) bool {
		calls = append(calls, "second")

		return true
	})
	m.Expression("X", func(provide.Node) bool {
		calls = append(calls, "third")

		return true
	})

	if err := m.Run(); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"first", "second"}, calls); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Repeatable(t *testing.T) {
	m, err := process(t, "FLAG")
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Run(); err != nil {
		t.Fatal(err)
	}

	if n := len(m.Bindings()); n != 1 {
		t.Errorf("second Run produced %d bindings, want 1", n)
	}
}

func TestParse_Error(t *testing.T) {
	_, err := Parse("bad.expr", "1 +\n(", WithLogger(log.Discard()))
	if !errors.Is(err, pkg.ErrParse) {
		t.Fatalf("Parse() error = %v, want ErrParse", err)
	}

	var le *Error
	if !errors.As(err, &le) {
		t.Fatalf("Parse() error %T is not *lang.Error", err)
	}

	if le.Pos.Line != 2 {
		t.Errorf("error line = %d, want 2", le.Pos.Line)
	}
}

func TestRender(t *testing.T) {
	m, err := process(t, "FLAG + NS.SUB(FLAG)")
	if err != nil {
		t.Fatal(err)
	}

	want := `// import FLAG from "/defs/flag.js"
// import __xprovide_provided_NS_dot_SUB from "/defs/ns.json"
FLAG + __xprovide_provided_NS_dot_SUB.sub(FLAG)`

	got := m.Render()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}

	if _, err := parser.Parse(got); err != nil {
		t.Errorf("rendered module does not parse: %v", err)
	}
}

func TestRender_Unchanged(t *testing.T) {
	m, err := process(t, "1 + other")
	if err != nil {
		t.Fatal(err)
	}

	if got := m.Render(); got != "1 + other" {
		t.Errorf("Render() = %q, want the source unchanged", got)
	}

	if imports := m.Imports(); len(imports) != 0 {
		t.Errorf("Imports() = %v, want none", imports)
	}
}

func TestRender_Unicode(t *testing.T) {
	m, err := process(t, "'é' + NS.SUB")
	if err != nil {
		t.Fatal(err)
	}

	want := `// import __xprovide_provided_NS_dot_SUB from "/defs/ns.json"
'é' + __xprovide_provided_NS_dot_SUB.sub`

	if diff := cmp.Diff(want, m.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}
