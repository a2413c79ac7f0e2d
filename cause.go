//go:build !nobacktrace

// cause.go — the two-armed "what caused this" union behind Context.
//
// Exactly two arms, nothing else is reachable:
//   - freshTrace: no prior failure; holds the trace captured by New.
//   - priorError: a fully-formed prior error, which carries its own chain
//     and its own trace.
//
// The union exists so Context never captures a redundant trace when one is
// already available from the wrapped error. It is internal: external callers
// only ever observe it through Context's accessors.
package xgxerrctx

import (
	"fmt"
	"io"
)

// cause is the internal sum type. Implementations are value objects: one
// initial state, no transitions.
type cause interface {
	// backtrace never returns nil: either the fresh capture or the prior
	// error's own trace, substituting the empty trace when the prior error
	// reports none.
	backtrace() *Backtrace

	// cause returns nil for the fresh-trace arm, and the prior error's own
	// cause (one link further down, not the prior error itself) otherwise.
	cause() error

	// writeDebug renders the arm's verbose form: the trace itself, or the
	// prior error rendered with %+v (recursing through nested contexts).
	writeDebug(w io.Writer)
}

// freshTrace is the no-prior-cause arm.
type freshTrace struct {
	trace *Backtrace
}

func (t freshTrace) backtrace() *Backtrace { return t.trace }
func (t freshTrace) cause() error          { return nil }

func (t freshTrace) writeDebug(w io.Writer) {
	t.trace.writeTo(w)
}

// priorError is the wrapped-failure arm.
type priorError struct {
	fail Fail
}

func (p priorError) backtrace() *Backtrace {
	if bt := p.fail.Backtrace(); bt != nil {
		return bt
	}
	return emptyBacktrace
}

func (p priorError) cause() error { return p.fail.Cause() }

func (p priorError) writeDebug(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%+v", p.fail)
}

var (
	_ cause = freshTrace{}
	_ cause = priorError{}
)
