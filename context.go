//go:build !nobacktrace

// context.go — the Context wrapper, full-featured configuration.
//
// Semantics:
//   - New captures a backtrace eagerly; the point of failure is the most
//     useful place to record one.
//   - Wrap retains the prior error and reuses its trace; a second capture
//     at the wrap site would be redundant and misleading.
//   - Concise output (%v, %s, Error) is the message only; verbose output
//     (%+v) is "<cause detail>\n\n<message>".
//
// Reduced builds (tag nobacktrace) get the message-only Context from
// context_minimal.go instead; the exported surface is identical.
package xgxerrctx

import (
	"fmt"
	"io"
)

// Context pairs a human-facing message of type D with the failure it
// explains. The message is intended for end users; the underlying error is
// not assumed to be end-user-relevant and is exposed only through the
// verbose and introspection surfaces.
//
// D is rendered as text (see package doc for the rendering order). A
// Context is immutable after construction and may move across goroutine
// boundaries without synchronization, provided its message is not mutated
// either.
type Context[D any] struct {
	context D
	failure cause
}

// Context satisfies the root Fail capability, so contexts nest and can be
// placed anywhere a generic error is expected.
var _ Fail = (*Context[string])(nil)

// New creates a Context with no prior failure, capturing a backtrace at the
// call site. Capture is best-effort and bounded; it cannot fail.
func New[D any](context D) *Context[D] {
	return &Context[D]{
		context: context,
		failure: freshTrace{trace: captureSkip(1)},
	}
}

// Wrap attaches a human-facing message to an existing error. The prior
// error's identity, chain, and trace all remain reachable via Cause,
// Unwrap, Backtrace, and %+v; only the concise output hides them.
//
// Wrap(nil, context) degenerates to New(context).
func Wrap[D any](err error, context D) *Context[D] {
	if err == nil {
		return &Context[D]{
			context: context,
			failure: freshTrace{trace: captureSkip(1)},
		}
	}
	return withErr(context, err)
}

// withErr builds the prior-error arm. No trace is captured here: the one
// carried by err is reused.
func withErr[D any](context D, err error) *Context[D] {
	return &Context[D]{
		context: context,
		failure: priorError{fail: From(err)},
	}
}

// Context returns the human-facing message value.
func (c *Context[D]) Context() D {
	return c.context
}

// Error returns exactly the message text, with no decoration. This is the
// end-user-facing form; the underlying failure never leaks through it.
func (c *Context[D]) Error() string {
	return displayString(c.context)
}

// Cause returns the prior error's own cause — one link further down the
// chain, not the prior error itself — or nil when this Context was built
// without a prior failure. Use Unwrap for the prior error itself.
func (c *Context[D]) Cause() error {
	return c.failure.cause()
}

// Backtrace returns the trace for this Context: the one captured by New,
// or the prior error's own. It is never nil, even when the prior error
// recorded nothing (an empty trace stands in).
func (c *Context[D]) Backtrace() *Backtrace {
	return c.failure.backtrace()
}

// Unwrap exposes the prior error to errors.Is / errors.As traversal.
// Returns nil when there is no prior failure.
func (c *Context[D]) Unwrap() error {
	p, ok := c.failure.(priorError)
	if !ok {
		return nil
	}
	// Unwrap to the original value, not the adapter view, so Is/As compare
	// against what the caller actually wrapped.
	if ff, ok := p.fail.(*foreignFail); ok {
		return ff.err
	}
	return p.fail
}

// Format implements fmt.Formatter.
//
//	%v, %s  → message only (same as Error).
//	%q      → quoted message.
//	%+v     → cause detail, a blank line, then the message. The cause
//	          detail is the captured trace, or the prior error rendered
//	          with %+v — which recurses through nested contexts, making
//	          the entire causal chain inspectable.
func (c *Context[D]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			c.failure.writeDebug(s)
			_, _ = io.WriteString(s, "\n\n")
			_, _ = io.WriteString(s, c.Error())
			return
		}
		_, _ = io.WriteString(s, c.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.Error())
	default:
		_, _ = io.WriteString(s, c.Error())
	}
}
