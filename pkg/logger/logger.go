package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "walletguard"

// New builds the process logger on stdout. Unknown levels fall back to
// info. pretty switches to the console writer for local development.
func New(level string, pretty bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	return build(out, level).With().Caller().Logger()
}

// NewTo builds a JSON logger on w without caller info.
func NewTo(w io.Writer, level string) zerolog.Logger {
	return build(w, level)
}

func build(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// ParseLevel is zerolog.ParseLevel with "warning" accepted and an info
// fallback instead of an error.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Component tags a child logger with the subsystem name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Security starts a warn event marked for the security audit stream.
// Rejected webhook signatures and replays go through here.
func Security(log zerolog.Logger) *zerolog.Event {
	return log.Warn().Str("audit", "security")
}
