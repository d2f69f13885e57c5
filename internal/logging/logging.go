// Package logging configures the slog logger used for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn or error
	Format string // auto, text or json
	Output io.Writer
}

// New builds a logger from cfg. With Format "auto" the output gets a text
// handler when it is a terminal and a JSON handler otherwise.
func New(cfg Config) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	switch format := strings.ToLower(cfg.Format); format {
	case "", "auto":
		if isTerminal(output) {
			return slog.New(slog.NewTextHandler(output, opts)), nil
		}
		return slog.New(slog.NewJSONHandler(output, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(output, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(output, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

type fder interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}
