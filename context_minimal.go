//go:build nobacktrace

// context_minimal.go — the Context wrapper, reduced configuration.
//
// Selected by the nobacktrace build tag for environments without backtrace
// support. This is a genuinely smaller data model, not a feature flag on
// the full one: only the message is stored. Wrap discards the prior error
// entirely — a documented, intentional information loss — and there is no
// Cause, Unwrap, or Backtrace surface.
//
// The concise output contract is identical to the full configuration, and
// here the verbose form equals it because there is nothing else to show.
package xgxerrctx

import (
	"fmt"
	"io"
)

// Context pairs a human-facing message of type D with the failure it
// explains. In this configuration only the message is retained.
type Context[D any] struct {
	context D
}

var _ error = (*Context[string])(nil)

// New creates a Context holding the message. No capture step exists in
// this configuration.
func New[D any](context D) *Context[D] {
	return &Context[D]{context: context}
}

// Wrap attaches a human-facing message to an existing error. The error
// value is discarded: this configuration has no storage for a
// heterogeneous prior error.
func Wrap[D any](_ error, context D) *Context[D] {
	return &Context[D]{context: context}
}

// Context returns the human-facing message value.
func (c *Context[D]) Context() D {
	return c.context
}

// Error returns exactly the message text, with no decoration.
func (c *Context[D]) Error() string {
	return displayString(c.context)
}

// Format implements fmt.Formatter. Every verb, %+v included, renders the
// message only.
func (c *Context[D]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.Error())
	default:
		_, _ = io.WriteString(s, c.Error())
	}
}
