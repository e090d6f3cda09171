package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	"github.com/ardnew/xprovide/pkg"
)

// Stopper stops a running profiler and flushes its output.
type Stopper interface{ Stop() }

// Modes returns the sorted names of all supported profiling modes.
//
//nolint:gochecknoglobals
var Modes = sync.OnceValue(
	func() []string { return slices.Sorted(maps.Keys(mode)) },
)

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Config describes a profiling session.
type Config struct {
	Mode  string // one of [Modes]; empty disables profiling
	Path  string // output directory; empty uses the current directory
	Quiet bool   // suppress pkg/profile's own log output
}

// Option configures a profiling session.
type Option = pkg.Option[Config]

// WithMode selects the profiling mode.
func WithMode(m string) Option {
	return func(c Config) Config { c.Mode = m; return c }
}

// WithPath sets the output directory.
func WithPath(p string) Option {
	return func(c Config) Config { c.Path = p; return c }
}

// WithQuiet suppresses pkg/profile's log output.
func WithQuiet(v bool) Option {
	return func(c Config) Config { c.Quiet = v; return c }
}

// Start starts profiling according to opts. An empty or unknown mode starts
// nothing and returns a no-op [Stopper].
func Start(opts ...Option) Stopper {
	cfg := pkg.Apply(Config{}, opts...)

	fn, ok := mode[cfg.Mode]
	if !ok {
		return ignore{}
	}

	settings := []func(*profile.Profile){fn, profile.NoShutdownHook}

	if cfg.Path != "" {
		settings = append(settings, profile.ProfilePath(cfg.Path))
	}

	if cfg.Quiet {
		settings = append(settings, profile.Quiet)
	}

	return profile.Start(settings...)
}

type ignore struct{}

func (ignore) Stop() {}
