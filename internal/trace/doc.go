// Package trace provides optional debug logging helpers for the subiso library.
//
// This package is an internal utility for developer observability. It is
// distinct from error returns (fatal invariant breaches) and from the
// silent-skip path recoverable conditions take.
//
// # Internal Package
//
// This package is internal to the subiso module and is not importable by
// external consumers per Go's internal/ package semantics.
//
// # Design Principles
//
//   - Near-zero cost when disabled: when the logger is nil, overhead is a
//     single nil check (~2ns). The Lazy variants guarantee no allocation
//     from attribute construction when disabled.
//   - Stdlib only: uses [log/slog], preserving dependency hygiene.
//   - Logger injection: loggers are passed via functional options at API
//     boundaries, not stored in globals.
//   - No context.Context. The core index's operations never suspend,
//     cancel, or do I/O (spec's concurrency model rules this out), so this
//     package carries none of the teacher's context-scoped logging or
//     request-ID plumbing — only the nil-logger fast path and the [Op]
//     span survive the adaptation.
//
// # Usage Patterns
//
//   - [Begin]/[Op.End]: operation boundaries (start/end of a Put/Lookup/
//     Remove call), with automatic duration measurement.
//   - [Debug], [Info], [Warn], [Error]: simple, pre-computed attributes.
//   - [DebugLazy], [InfoLazy], [WarnLazy], [ErrorLazy]: computed
//     attributes; the function argument is not called when logging is
//     disabled.
//
// # Operation Names
//
// Operation names follow the format subiso.<package>.<operation>:
//   - subiso.subsumption.put
//   - subiso.subsumption.lookup
//   - subiso.subsumption.remove
//
// Operation names are implementation details and may change without notice.
package trace
