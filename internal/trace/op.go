package trace

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Op represents a running operation with automatic start/end logging.
//
// Op provides consistent operation boundary logging with automatic
// duration measurement. It enforces the operation naming convention and
// prevents "forgot to log end" bugs.
//
// Create via [Begin]. It is safe to call methods on a nil *Op.
type Op struct {
	logger    *slog.Logger
	name      string
	startTime time.Time
	ended     atomic.Bool
}

// Begin starts a new operation and logs at Debug level.
//
// Returns *Op (pointer) so nil checks are cheap. When logging is disabled
// (logger is nil or level below Debug), Begin returns nil to achieve
// near-zero overhead. It is safe to call methods on a nil *Op.
//
// Operation names should follow the format subiso.<package>.<operation>:
//   - subiso.subsumption.put
//   - subiso.subsumption.lookup
func Begin(logger *slog.Logger, name string, attrs ...slog.Attr) *Op {
	if logger == nil || !Enabled(logger, slog.LevelDebug) {
		return nil
	}

	op := &Op{
		logger:    logger,
		name:      name,
		startTime: time.Now(),
	}

	logAttrs := make([]slog.Attr, 0, len(attrs)+1)
	logAttrs = append(logAttrs, slog.String("op", name))
	logAttrs = append(logAttrs, attrs...)
	Debug(logger, "operation started", logAttrs...)

	return op
}

// End logs the operation completion. Safe to call multiple times.
//
// The first call logs at Debug level; subsequent calls are silently
// ignored. This prevents double-logging if End is called explicitly and
// also via defer.
func (o *Op) End(err error, attrs ...slog.Attr) {
	if o == nil {
		return
	}
	if o.ended.Swap(true) {
		return
	}
	if o.logger == nil || !Enabled(o.logger, slog.LevelDebug) {
		return
	}

	elapsed := time.Since(o.startTime)

	logAttrs := make([]slog.Attr, 0, len(attrs)+4)
	logAttrs = append(logAttrs,
		slog.String("op", o.name),
		slog.Int64("elapsed_ms", elapsed.Milliseconds()),
		slog.Duration("duration", elapsed),
	)
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}
	logAttrs = append(logAttrs, attrs...)

	Debug(o.logger, "operation ended", logAttrs...)
}
