package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/xprovide/pkg"
)

// Format is the output format of a command.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// indent is the indent width of JSON and YAML output.
const indent = 2

// Styles of text output. lipgloss renders them as plain text when the output
// is not a color terminal.
var (
	keyStyle    = lipgloss.NewStyle().Bold(true)
	moduleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	memberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// write encodes v to w in format. Text output is produced by text.
func write(w io.Writer, format Format, v any, text func(io.Writer) error) error {
	switch format {
	case FormatText, "":
		return text(w)

	case FormatJSON:
		data, err := json.MarshalIndent(v, "", strings.Repeat(" ", indent))
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = w.Write(append(data, '\n'))

		return err

	case FormatYAML:
		data, err := yaml.MarshalWithOptions(v, yaml.Indent(indent))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(data)

		return err

	default:
		return pkg.ErrInvalidFormat.Wrapf("%q", format)
	}
}

// renderTarget styles a module and its member path.
func renderTarget(module string, path []string) string {
	s := moduleStyle.Render(module)
	for _, member := range path {
		s += dimStyle.Render("#") + memberStyle.Render(member)
	}

	return s
}

func formatAttr(format Format) slog.Attr {
	return slog.String("format", string(format))
}
