//go:build !nobacktrace

// fail.go — the root error capability and chain helpers for xgx-errctx.
//
// Scope (tiny core):
//   - Fail: the minimal capability set anything in an error chain must offer.
//   - From: the conversion from an arbitrary error into Fail, recovering
//     pkg/errors captures where present.
//   - Causes / RootCause: bounded, nil-safe traversal over cause chains.
//
// Interop notes (Go ≥1.20):
//   - errors.Is/As traverse Unwrap() error; the foreign-error adapter keeps
//     that chain intact so wrapping never hides an error from Is/As.
//   - Legacy pkg/errors chains expose Cause() error instead of Unwrap();
//     traversal here accepts both shapes.
package xgxerrctx

import (
	"errors"
	"fmt"
	"io"
)

// Fail is the root capability set for errors in this model. Anything placed
// in a cause chain satisfies it, either directly or through From.
//
// Conventions:
//   - Cause returns the next link down the chain, or nil at the root.
//   - Backtrace may return nil when the error never captured one; From
//     adapters and Context never do (they substitute an empty trace).
type Fail interface {
	error

	// Cause returns the underlying cause of this error, if any.
	Cause() error

	// Backtrace returns the trace captured at this error's point of
	// failure, or nil if none was recorded.
	Backtrace() *Backtrace
}

// From converts any error into a Fail.
//   - nil → nil
//   - Fail → returned as-is (identity preserved)
//   - other error → adapted; a pkg/errors capture anywhere in its chain
//     becomes the Backtrace, otherwise an empty (never nil) trace.
func From(err error) Fail {
	if err == nil {
		return nil
	}
	if f, ok := err.(Fail); ok {
		return f
	}
	trace := emptyBacktrace
	if st, ok := stackOf(err); ok {
		trace = st
	}
	return &foreignFail{err: err, trace: trace}
}

// foreignFail adapts an error that does not itself satisfy Fail. It is a
// view, not a copy: Error, Cause, and verbose formatting all delegate to
// the adapted value, and Unwrap exposes it to errors.Is/As.
type foreignFail struct {
	err   error
	trace *Backtrace
}

var _ Fail = (*foreignFail)(nil)

func (f *foreignFail) Error() string         { return f.err.Error() }
func (f *foreignFail) Unwrap() error         { return f.err }
func (f *foreignFail) Cause() error          { return nextCause(f.err) }
func (f *foreignFail) Backtrace() *Backtrace { return f.trace }

// Format forwards to the adapted error so %+v renders whatever verbose form
// it defines for itself.
func (f *foreignFail) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%+v", f.err)
			return
		}
		_, _ = fmt.Fprintf(s, "%v", f.err)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.err.Error())
	default:
		_, _ = io.WriteString(s, f.err.Error())
	}
}

// maxChainDepth caps chain traversal against pathological or cyclic chains.
const maxChainDepth = 1 << 8

// nextCause returns the next link down err's chain, preferring the stdlib
// Unwrap shape and falling back to the legacy Cause shape (pkg/errors).
func nextCause(err error) error {
	if u := errors.Unwrap(err); u != nil {
		return u
	}
	if c, ok := err.(interface{ Cause() error }); ok {
		return c.Cause()
	}
	return nil
}

// Causes returns the chain of errors underneath err, outermost first,
// excluding err itself. Nil-safe; bounded against cycles.
func Causes(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	for c := nextCause(err); c != nil && len(out) < maxChainDepth; c = nextCause(c) {
		out = append(out, c)
	}
	return out
}

// RootCause returns the deepest error in err's chain, or err itself when it
// has no cause. Nil-safe.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	chain := Causes(err)
	if len(chain) == 0 {
		return err
	}
	return chain[len(chain)-1]
}
