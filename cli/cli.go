package cli

import (
	"context"
	"log/slog"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/ardnew/xprovide/cli/cmd"
	"github.com/ardnew/xprovide/define"
	"github.com/ardnew/xprovide/log"
	"github.com/ardnew/xprovide/pkg"
	"github.com/ardnew/xprovide/provide"
)

// CLI is the top-level command-line interface for xprovide.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Path     string            `help:"Definitions directory." placeholder:"DIR" short:"p" type:"path"`
	Mode     string            `default:"production" help:"Host build mode (development or production)." short:"m"`
	Override map[string]string `help:"Replace a definition with a target (KEY=module[#member])." placeholder:"KEY=TARGET" short:"o"`

	Defs    cmd.Defs    `cmd:"" help:"List the definitions of the active mode"`
	Lookup  cmd.Lookup  `cmd:"" help:"Show the target of a definition"`
	Scan    cmd.Scan    `cmd:"" help:"Report provided references in source modules"`
	Rewrite cmd.Rewrite `cmd:"" help:"Substitute provided references in a source module"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
	Version cmd.Version `cmd:"" help:"Print version"`
}

// Run executes the xprovide CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath + extYAML,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong parses so that parse errors are logged
	// with the requested settings.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+extJSON),
		kong.Configuration(loadYAML, configFilePath+extYAML, configFilePath+extYML),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithMode(ctx, cli.Mode)
	ctx = cmd.WithPlugin(ctx, sync.OnceValues(cli.plugin))

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// plugin loads the definitions named by the parsed flags.
func (c *CLI) plugin() (*provide.Plugin, error) {
	override := make(map[string]define.Target, len(c.Override))

	for key, ref := range c.Override {
		target, err := define.ParseTarget(ref)
		if err != nil {
			return nil, err
		}

		override[key] = target
	}

	log.Debug("load definitions",
		slog.String("path", c.Path),
		slog.String("mode", c.Mode),
		slog.Int("overrides", len(override)),
	)

	return provide.New(
		provide.Options{Path: c.Path, Override: override},
		provide.WithLogger(log.Default()),
	)
}
