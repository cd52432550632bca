// Package logger configures log/slog for the module and hands out loggers tagged
// with the subsystem that produced them.
//
// Containers never log on their hot paths. They log when a consistency check finds
// a broken invariant, which always indicates a defect.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// DefaultSubsystem tags log lines when no subsystem was configured.
const DefaultSubsystem = "sortedcollections"

type contextKey string

const (
	subsystemKey contextKey = "subsystem"
	mutedKey     contextKey = "muted"
)

// configured holds the subsystem set by the last ConfigureLogging call.
var configured atomic.Pointer[string] //nolint:gochecknoglobals

var configMu sync.Mutex //nolint:gochecknoglobals

var discard = slog.New(slog.DiscardHandler) //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	// Subsystem tags every line logged through Get.
	Subsystem string

	// JSON switches from text to JSON output.
	JSON bool

	MinLevel slog.Level

	// Output defaults to stdout.
	Output io.Writer
}

// Option adjusts the Options built by ConfigureLogging.
type Option func(*Options)

// WithJSON switches the output to JSON.
func WithJSON(json bool) Option {
	return func(o *Options) {
		o.JSON = json
	}
}

// WithLevel sets the minimum level that is written.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithOutput redirects the output.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLogging installs a text logger at info level writing to stdout, tagged
// with app and adjusted by opts. It returns the new default logger.
func ConfigureLogging(app string, opts ...Option) *slog.Logger {
	options := Options{Subsystem: app, MinLevel: slog.LevelInfo}

	for _, opt := range opts {
		opt(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// ConfigureLoggingWithOptions installs a logger built from opts as the slog default,
// which also routes the log package through it. It returns the new default logger.
// Calls are serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMu.Lock()
	defer configMu.Unlock()

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler = slog.NewTextHandler(out, handlerOpts)
	if opts.JSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	l := slog.New(handler)
	slog.SetDefault(l)

	subsystem := opts.Subsystem
	configured.Store(&subsystem)

	return l
}

// WithMuted marks ctx so that loggers obtained from it discard everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return context.WithValue(orBackground(ctx), mutedKey, muted)
}

// WithSubsystem overrides the subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	return context.WithValue(orBackground(ctx), subsystemKey, subsystem)
}

// GetSubsystem returns the subsystem set on ctx, else the configured one, else
// DefaultSubsystem.
func GetSubsystem(ctx context.Context) string {
	if val, ok := orBackground(ctx).Value(subsystemKey).(string); ok {
		return val
	}

	if val := configured.Load(); val != nil && *val != "" {
		return *val
	}

	return DefaultSubsystem
}

// Get returns the default logger tagged with the subsystem. Only the first non-nil
// context is consulted.
func Get(ctx ...context.Context) *slog.Logger {
	var c context.Context

	for _, candidate := range ctx {
		if candidate != nil {
			c = candidate

			break
		}
	}

	c = orBackground(c)

	if muted, _ := c.Value(mutedKey).(bool); muted {
		return discard
	}

	return slog.Default().With("subsystem", GetSubsystem(c))
}

// OrDefault returns l when set, or the subsystem-tagged default logger otherwise.
// Containers that accept an injected logger resolve it through here.
func OrDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}

	return Get()
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
