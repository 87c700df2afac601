package monitoring

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// NewLogger returns a JSON logger writing to w. Every entry carries a timestamp
// and the component that produced it.
func NewLogger(w io.Writer, component string) zerolog.Logger {
	return zerolog.New(w).With().
		Timestamp().
		Str("component", component).
		Logger()
}

// ParseLevel parses a level name such as "debug" or "warn". The empty string is
// the info level.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "monitoring: invalid log level %q", s)
	}
	return level, nil
}
