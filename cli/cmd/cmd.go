package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/xprovide/pkg"
	"github.com/ardnew/xprovide/provide"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	pluginKey struct{}
	modeKey   struct{}
	outputKey struct{}
	inputKey  struct{}
)

// PluginLoader constructs the plugin on first use. Commands that never need
// definitions never load them.
type PluginLoader func() (*provide.Plugin, error)

// WithPlugin returns a new context.Context containing the plugin loader.
func WithPlugin(ctx context.Context, load PluginLoader) context.Context {
	return context.WithValue(ctx, pluginKey{}, load)
}

func pluginFrom(ctx context.Context) (*provide.Plugin, error) {
	load, ok := ctx.Value(pluginKey{}).(PluginLoader)
	if !ok || load == nil {
		return nil, ErrNoPlugin
	}

	return load()
}

// WithMode returns a new context.Context containing the host build mode.
func WithMode(ctx context.Context, mode string) context.Context {
	return context.WithValue(ctx, modeKey{}, mode)
}

func modeFrom(ctx context.Context) string {
	mode, _ := ctx.Value(modeKey{}).(string)

	return mode
}

// WithOutput returns a new context.Context whose commands write to w instead
// of os.Stdout.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// WithInput returns a new context.Context whose commands read "-" from r
// instead of os.Stdin.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// Version prints the program version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	_, err := io.WriteString(outputFrom(ctx), pkg.Name+" "+pkg.Version()+"\n")

	return err
}
