package provide

import (
	"log/slog"

	"github.com/ardnew/xprovide/define"
	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
)

// Options is the construction-time configuration of a [Plugin].
type Options struct {
	// Path is the definitions directory. A missing directory is not an error.
	Path string `json:"path" yaml:"path"`
	// Override maps keys to targets written into both environments after
	// loading. Keys are used verbatim.
	Override map[string]define.Target `json:"override,omitempty" yaml:"override,omitempty"`
}

type config struct {
	logger log.Logger
}

// Option configures [New].
type Option = pkg.Option[config]

// WithLogger sets the logger of the plugin and its loader.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// Plugin holds the definition tables of one build. It is immutable after
// [New] and safe for concurrent use by any number of modules.
type Plugin struct {
	tables define.Tables
	logger log.Logger
}

// New loads the definitions directory of opts and applies its overrides.
// Load errors are returned unchanged.
func New(opts Options, with ...Option) (*Plugin, error) {
	cfg := pkg.Apply(config{logger: log.Default()}, with...)

	tables, err := define.Load(opts.Path, define.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	if len(opts.Override) > 0 {
		tables = tables.Override(opts.Override)
	}

	cfg.logger.Debug("plugin ready",
		slog.String("path", opts.Path),
		slog.Int("overrides", len(opts.Override)),
		slog.Int(define.Development.String(), len(tables.Development)),
		slog.Int(define.Production.String(), len(tables.Production)),
	)

	return &Plugin{tables: tables, logger: cfg.logger}, nil
}

// Tables returns both environment tables.
func (p *Plugin) Tables() define.Tables { return p.tables }

// Table returns the table selected by a host build mode.
func (p *Plugin) Table(mode string) define.Table {
	return p.tables.For(define.ModeEnv(mode))
}

// Attach attaches the table selected by mode to one module's session.
func (p *Plugin) Attach(s Session, deps Sink, mode string) {
	env := define.ModeEnv(mode)

	p.logger.Trace("attach", slog.String("mode", mode), slog.String("env", env.String()))

	Attach(s, deps, p.tables.For(env))
}
