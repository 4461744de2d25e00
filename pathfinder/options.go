package pathfinder

import (
	"errors"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mrtguide/weights"
)

// ErrBadCacheSize indicates a negative cache size.
var ErrBadCacheSize = errors.New("pathfinder: cache size must be non-negative")

// Options configures a PathFinder.
type Options struct {
	// Lines overrides the line sets of the time-dependent policies.
	// Empty fields fall back to weights.DefaultLines.
	Lines weights.Lines

	// OpenedBy, when non-zero, drops stations that open after it.
	OpenedBy time.Time

	// CacheSize is the LRU capacity for query results; 0 disables caching.
	CacheSize int

	// Logger receives Debug events. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option represents a functional option for New and Open.
type Option func(*Options)

// WithLines overrides the line sets used by peak, night and normal policies.
func WithLines(lines weights.Lines) Option {
	return func(o *Options) { o.Lines = lines }
}

// WithOpenedBy models the network as it stood on t.
func WithOpenedBy(t time.Time) Option {
	return func(o *Options) { o.OpenedBy = t }
}

// WithCacheSize memoizes up to n query results. Panics if n < 0.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCacheSize.Error())
		}
		o.CacheSize = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with the default line sets, no cache and
// the default logger.
func DefaultOptions() Options {
	return Options{
		Lines:  weights.DefaultLines(),
		Logger: slog.Default(),
	}
}

// query holds per-call settings.
type query struct {
	at      string
	timed   bool
	limit   int
	limited bool
}

// QueryOption configures a single FindRoutes call.
type QueryOption func(*query)

// At sets the departure time, formatted YYYY-MM-DDTHH:MM.
func At(timestamp string) QueryOption {
	return func(q *query) {
		q.at = timestamp
		q.timed = true
	}
}

// Limit caps the number of routes returned. Negative values panic inside
// FindRoutes with mrtmap.ErrBadLimit.
func Limit(n int) QueryOption {
	return func(q *query) {
		q.limit = n
		q.limited = true
	}
}
