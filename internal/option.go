package internal

import (
	"io"
	"log/slog"
)

// Option is a functional option for configuring a checker run.
type Option func(*application)

type application struct {
	config  *Config
	stdout  io.Writer
	logger  *slog.Logger
	verbose bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithStdout redirects report output, mainly for tests.
func WithStdout(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *application) {
		a.logger = l
	}
}

// WithVerbose enables the per-skill listing of the dual-approach check.
func WithVerbose(v bool) Option {
	return func(a *application) {
		a.verbose = v
	}
}
