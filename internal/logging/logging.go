// Package logging builds the slog loggers used across cochrono.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the handler and level of a logger.
type Options struct {
	Level   string // debug, info, warn, error
	Format  string // text, json
	Verbose bool   // forces debug
	Output  io.Writer
}

// New creates a logger writing to Output (stderr when nil). Records logged
// with a context carrying a command name get a "command" attribute.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = slog.LevelDebug
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "text":
		h = slog.NewTextHandler(out, ho)
	case "json":
		h = slog.NewJSONHandler(out, ho)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", opts.Format)
	}
	return slog.New(&commandHandler{next: h}), nil
}

// NewNope creates a no-op logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to a slog.Level. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

type commandKey struct{}

// WithCommand returns a context whose log records carry the command name.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

// commandHandler injects the command name from the record's context.
type commandHandler struct {
	next slog.Handler
}

func (h *commandHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *commandHandler) Handle(ctx context.Context, rec slog.Record) error {
	if name, ok := ctx.Value(commandKey{}).(string); ok && name != "" {
		rec.AddAttrs(slog.String("command", name))
	}
	return h.next.Handle(ctx, rec)
}

func (h *commandHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &commandHandler{next: h.next.WithAttrs(attrs)}
}

func (h *commandHandler) WithGroup(name string) slog.Handler {
	return &commandHandler{next: h.next.WithGroup(name)}
}
