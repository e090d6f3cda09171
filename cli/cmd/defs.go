package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/ardnew/xprovide/define"
)

// Defs prints the definition table of the active build mode, or the tables
// of both environments.
type Defs struct {
	Format Format `default:"text" enum:"text,json,yaml" help:"Output format (${enum})." short:"f"`
	All    bool   `help:"Print the tables of both environments." short:"a"`
}

// Run executes the defs command.
func (d *Defs) Run(ctx context.Context) error {
	p, err := pluginFrom(ctx)
	if err != nil {
		return err
	}

	if d.All {
		err = writeTables(outputFrom(ctx), d.Format, p.Tables())
	} else {
		table := p.Table(modeFrom(ctx))

		err = write(outputFrom(ctx), d.Format, table, func(w io.Writer) error {
			return writeTable(w, table)
		})
	}

	if err != nil {
		return NewError("defs").With(formatAttr(d.Format)).Wrap(err)
	}

	return nil
}

// writeTables writes both environment tables; text output heads each table
// with its environment.
func writeTables(w io.Writer, format Format, tables define.Tables) error {
	return write(w, format, tables, func(w io.Writer) error {
		for i, env := range []define.Env{define.Development, define.Production} {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintf(w, "%s:\n", dimStyle.Render(env.String())); err != nil {
				return err
			}

			if err := writeTable(w, tables.For(env)); err != nil {
				return err
			}
		}

		return nil
	})
}

func writeTable(w io.Writer, table define.Table) error {
	keys := table.Keys()

	width := 0
	for _, key := range keys {
		width = max(width, len(key))
	}

	for _, key := range keys {
		target := table[key]

		_, err := fmt.Fprintf(w, "%s  %s\n",
			keyStyle.Width(width).Render(key),
			renderTarget(target.Module, target.Path),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
