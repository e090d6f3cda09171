// Package profile provides optional runtime profiling for xprovide using
// [github.com/pkg/profile].
//
// Profiling is driven from the command line only when the binary is built
// with the "pprof" build tag; without it the flags are absent and nothing is
// started.
//
//	go build -tags pprof .
//	./xprovide --pprof-mode cpu scan module.expr
//	go tool pprof ./xprovide "$XDG_CACHE_HOME/xprovide/pprof/cpu.pprof"
//
// Supported modes are listed by [Modes]: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread and trace. The profile is written to
// the configured directory under the name of the mode (for example
// cpu.pprof).
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
