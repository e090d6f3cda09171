// Package log provides a simplified, structured logging interface based on
// [log/slog].
//
// A [Logger] is an immutable value. Configuration is applied when the
// logger is made, using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a logger with additional options and [Logger.With]
// derives a logger that adds attributes to every record:
//
//	loader := logger.With(slog.String("component", "define"))
//	loader.Trace("registered", slog.String("key", "FEATURE.FLAG"))
//
// Attributes are always typed [slog.Attr] values; there is no key/value
// variadic form.
//
// # Levels
//
// In addition to the [slog] levels, [LevelTrace] sits below [LevelDebug]
// and is used for per-item diagnostics such as each definition registered
// while loading a directory.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty] enabled, text
// output is colorized with lipgloss styles and values are written unquoted.
//
// # Default Logger
//
// The package-level functions ([Trace], [Debug], [Info], [Warn], [Error] and
// their Context variants) write through a process-wide default logger that
// is reconfigured with [Config].
package log
