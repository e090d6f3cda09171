package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/ardnew/xprovide/provide"
)

// Scan prints the dependencies bound in source modules.
type Scan struct {
	Format Format `default:"text" enum:"text,json,yaml" help:"Output format (${enum})." short:"f"`

	Files []string `arg:"" default:"-" help:"Source modules, or '-' for stdin." name:"file"`
}

type scanResult struct {
	Source   string            `json:"source"   yaml:"source"`
	Bindings []provide.Binding `json:"bindings" yaml:"bindings"`
}

// Run executes the scan command.
func (s *Scan) Run(ctx context.Context) error {
	sources, err := readSources(ctx, s.Files)
	if err != nil {
		return err
	}

	results := make([]scanResult, 0, len(sources))

	for _, src := range sources {
		m, err := process(ctx, src)
		if err != nil {
			return err
		}

		bindings := m.Bindings()
		if bindings == nil {
			bindings = []provide.Binding{}
		}

		results = append(results, scanResult{Source: src.name, Bindings: bindings})
	}

	err = write(outputFrom(ctx), s.Format, results, func(w io.Writer) error {
		for _, res := range results {
			for _, b := range res.Bindings {
				_, err := fmt.Fprintf(w, "%s:%d:%d  %s  %s\n",
					dimStyle.Render(res.Source),
					b.Loc.Start.Line, b.Loc.Start.Column,
					keyStyle.Render(b.Key),
					renderTarget(b.Module, b.Path),
				)
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return NewError("scan").With(formatAttr(s.Format)).Wrap(err)
	}

	return nil
}
