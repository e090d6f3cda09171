package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles used by the pretty text handler. lipgloss degrades to plain text
// when the output is not a color terminal.
var (
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	trueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	falseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	levelStyle  = map[Level]lipgloss.Style{
		LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// prettyHandler implements a colorized text handler for log messages.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	prefix string // pre-rendered attributes from WithAttrs
	groups []string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, nil, h.replace(nil, slog.Time(slog.TimeKey, r.Time)))
	}

	h.writeLevel(buf, Level(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, nil, slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeAttr(buf, nil, slog.String(slog.MessageKey, r.Message))

	if h.prefix != "" {
		buf.WriteByte(' ')
		buf.WriteString(h.prefix)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.groups, h.replace(h.groups, a))

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := new(bytes.Buffer)
	buf.WriteString(h.prefix)

	for _, a := range attrs {
		h.writeAttr(buf, h.groups, h.replace(h.groups, a))
	}

	clone := *h
	clone.prefix = buf.String()

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &clone
}

func (h *prettyHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(groups, a)
}

func (h *prettyHandler) writeLevel(buf *bytes.Buffer, level Level) {
	style, ok := levelStyle[level]
	if !ok {
		style = stringStyle
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(keyStyle.Render(slog.LevelKey))
	buf.WriteByte('=')
	buf.WriteString(style.Render(strings.ToUpper(level.String())))
}

func (h *prettyHandler) writeAttr(
	buf *bytes.Buffer,
	groups []string,
	a slog.Attr,
) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := a.Value.Group()
		if a.Key != "" {
			groups = append(groups[:len(groups):len(groups)], a.Key)
		}

		for _, ga := range sub {
			h.writeAttr(buf, groups, ga)
		}

		return
	}

	if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != ' ' {
		buf.WriteByte(' ')
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	buf.WriteString(keyStyle.Render(key))
	buf.WriteByte('=')
	buf.WriteString(renderValue(a.Value))
}

func renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64:
		return numberStyle.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return numberStyle.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return numberStyle.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return trueStyle.Render("true")
		}

		return falseStyle.Render("false")

	case slog.KindDuration:
		return numberStyle.Render(v.Duration().String())

	case slog.KindTime:
		return timeStyle.Render(v.Time().String())

	default:
		return stringStyle.Render(v.String())
	}
}
