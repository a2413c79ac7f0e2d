// doc.go — package documentation for xgx-errctx
//
// Package xgxerrctx provides a generic error-context wrapper: a value that
// pairs a human-facing message with an underlying failure, without requiring
// the failure's concrete type to be known at the point where context is
// attached. It is designed for API boundaries, where a low-level error
// (I/O, parsing, ...) must be re-surfaced with a higher-level explanation
// while the original cause chain and capture-site backtrace remain reachable
// for diagnostics.
//
// # Display vs. verbose output
//
// The two audiences get two renderings:
//
//   - `%v`, `%s`, Error()  → the message only. End users never see the
//     underlying failure through the concise form.
//   - `%+v`                → the full cause detail (backtrace, or the prior
//     error rendered verbosely, recursing through nested contexts), a blank
//     line, then the message. Developer-facing only.
//
// Typical pattern:
//
//	cfg, err := loadFile(path)
//	if err != nil {
//	    return xgxerrctx.Wrap(err, "failed to load config")
//	}
//
// The returned value prints as "failed to load config" via %v, while %+v
// shows the original error and its capture site.
//
// # When are backtraces captured?
//
// Exactly once per chain, eagerly, at the point of failure:
//
//	+------------------+-------------------+----------------------------------+
//	| Constructor      | Captures trace?   | Rationale                        |
//	+------------------+-------------------+----------------------------------+
//	| New(msg)         | YES               | No prior failure; this is the    |
//	|                  |                   | most useful place to record one. |
//	| Wrap(err, msg)   | NO                | Reuses err's own trace; a second |
//	|                  |                   | capture here would be misleading.|
//	| Wrap(nil, msg)   | YES               | Degenerates to New(msg).         |
//	+------------------+-------------------+----------------------------------+
//
// Wrapping never loses information: the prior error and its whole chain stay
// reachable via Cause, Unwrap, Backtrace, and %+v.
//
// # Reduced builds
//
// Building with the `nobacktrace` tag selects a reduced Context that stores
// only the message: no backtrace capture, no prior-error retention, and no
// Cause surface. Wrap discards the error value in that configuration — a
// documented, intentional information loss for constrained environments.
// The concise output contract is identical in both configurations; only the
// richness of developer diagnostics changes.
//
// # The Fail capability
//
// Context plugs into a minimal "root error" capability set, Fail, requiring
// only Cause and Backtrace alongside the standard error interface. From
// adapts arbitrary errors into it, recovering backtraces recorded by
// github.com/pkg/errors where present. Context itself satisfies Fail, so
// contexts nest and compose transitively.
//
// # Interop
//
//   - errors.Is/As traverse wrapped chains via Unwrap().
//   - Cause() follows the one-hop convention (each step walks one link
//     further down the chain); Unwrap() returns the prior error itself.
//     The two conventions coexist; pick per call site.
//   - Message types are unconstrained: string, error, fmt.Stringer, or any
//     fmt-renderable value. Messages must not be mutated after construction
//     so contexts can cross goroutine boundaries without synchronization.
//
// # Minimal surface
//
// The core is policy-free: no logging, HTTP, or serialization opinions.
// Structured-log adapters live in subpackages (see zlog for zerolog).
package xgxerrctx
