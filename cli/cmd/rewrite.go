package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
)

// Rewrite prints a source module with every bound reference replaced by its
// provided identifier, preceded by its imports.
type Rewrite struct {
	Output string `help:"Write to this file instead of stdout." short:"O" type:"path"`

	File string `arg:"" default:"-" help:"Source module, or '-' for stdin." name:"file"`
}

// Run executes the rewrite command.
func (r *Rewrite) Run(ctx context.Context) error {
	sources, err := readSources(ctx, []string{r.File})
	if err != nil {
		return err
	}

	m, err := process(ctx, sources[0])
	if err != nil {
		return err
	}

	out := m.Render()
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out += "\n"
	}

	if r.Output == "" {
		_, err = io.WriteString(outputFrom(ctx), out)

		return err
	}

	if err := os.WriteFile(r.Output, []byte(out), 0o644); err != nil { //nolint:gosec
		return pkg.MakeError(err)
	}

	log.DebugContext(ctx, "rewrote module",
		slog.String("source", m.Name()),
		slog.String("output", r.Output),
		slog.Int("imports", len(m.Imports())),
	)

	return nil
}
