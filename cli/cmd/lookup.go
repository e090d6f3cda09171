package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/xprovide/define"
	"github.com/ardnew/xprovide/pkg"
	"github.com/ardnew/xprovide/provide"
)

// maxSuggestions is the number of similar keys offered for an unknown key.
const maxSuggestions = 3

// Lookup prints the target of one definition.
type Lookup struct {
	Format Format `default:"text" enum:"text,json,yaml" help:"Output format (${enum})." short:"f"`

	Key string `arg:"" help:"Definition key, verbatim or as a declared name (feature.flagX)."`
}

type lookupResult struct {
	Key        string        `json:"key"        yaml:"key"`
	Identifier string        `json:"identifier" yaml:"identifier"`
	Target     define.Target `json:"target"     yaml:"target"`
}

// Run executes the lookup command.
func (l *Lookup) Run(ctx context.Context) error {
	p, err := pluginFrom(ctx)
	if err != nil {
		return err
	}

	table := p.Table(modeFrom(ctx))

	key, target, ok := find(table, l.Key)
	if !ok {
		suggestions := suggest(table, l.Key)

		msg := fmt.Sprintf("%q", l.Key)
		if len(suggestions) > 0 {
			msg += " (did you mean " + strings.Join(suggestions, ", ") + "?)"
		}

		return NewError("lookup").
			With(slog.String("key", l.Key), slog.Any("suggestions", suggestions)).
			Wrap(pkg.ErrDefinitionNotFound.Wrapf("%s", msg))
	}

	res := lookupResult{Key: key, Identifier: provide.Identifier(key), Target: target}

	return write(outputFrom(ctx), l.Format, res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s  %s\n",
			keyStyle.Render(key),
			renderTarget(target.Module, target.Path),
		)

		return err
	})
}

// find looks up name verbatim, then as a declared name.
func find(table define.Table, name string) (string, define.Target, bool) {
	if t, ok := table.Lookup(name); ok {
		return name, t, true
	}

	key := define.Key(name)
	if t, ok := table.Lookup(key); ok {
		return key, t, true
	}

	return "", define.Target{}, false
}

// suggest returns the keys of table most similar to name.
func suggest(table define.Table, name string) []string {
	keys := table.Keys()

	matches := fuzzy.Find(name, keys)
	if len(matches) == 0 {
		matches = fuzzy.Find(define.Key(name), keys)
	}

	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}

		out = append(out, m.Str)
	}

	return out
}
