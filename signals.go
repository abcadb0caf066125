package signals

import (
	"log/slog"

	"github.com/NicholasBoll/signals/internal"
	"github.com/prometheus/client_golang/prometheus"
)

// PanicError carries a value recovered from a panicking continuation.
type PanicError = internal.PanicError

var (
	// ErrBlockingInTask is panicked when a scheduled task would block on its own runtime.
	ErrBlockingInTask = internal.ErrBlockingInTask

	// ErrSettleInBatch is panicked when Settle is called inside Batch.
	ErrSettleInBatch = internal.ErrSettleInBatch
)

// Option configures the runtime defaults, see Configure.
type Option = internal.Option

// WithLogHandler sets where unhandled rejections are logged when no OnUnhandled handler is registered.
// Default: slog.Default()
func WithLogHandler(h slog.Handler) Option { return internal.WithLogHandler(h) }

// WithRegisterer registers runtime metrics on r. Default: not registered.
func WithRegisterer(r prometheus.Registerer) Option { return internal.WithRegisterer(r) }

// WithNamespace sets the metrics namespace (default: "signals").
func WithNamespace(namespace string) Option { return internal.WithNamespace(namespace) }

// Configure changes the process-wide runtime defaults.
// Runtimes already in use by a goroutine keep the settings they were created with.
// A goroutine's runtime is created on its first call into the package and is kept for the life of
// the process, so short-lived goroutines that build chains each leave one behind.
func Configure(opts ...Option) {
	internal.Configure(opts...)
}

// Batch runs fn and holds back every continuation it schedules until the outermost batch returns.
func Batch(fn func()) {
	internal.GetRuntime().Batch(fn)
}

// Settle blocks until every continuation queued on the calling goroutine's runtime has run.
// Chains waiting on an external producer do not count as busy.
// Calling it creates the goroutine's runtime if there is none yet, see Configure.
func Settle() {
	internal.GetRuntime().Settle()
}

// OnUnhandled registers fn to receive rejections and panics that reached the end of a chain
// on the calling goroutine's runtime. Without any handler they are logged.
func OnUnhandled(fn func(error)) {
	internal.GetRuntime().OnError(fn)
}
