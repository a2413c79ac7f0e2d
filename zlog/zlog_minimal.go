//go:build nobacktrace

// zlog_minimal.go — zerolog adapter, reduced configuration.
//
// Mirrors the core's compile-time split: without backtrace support there is
// no chain or trace to marshal, so only the message field is emitted.
package zlog

import (
	"github.com/rs/zerolog"
)

type chain struct {
	err error
}

var _ zerolog.LogObjectMarshaler = chain{}

// Object returns a marshaler for err. A nil err marshals to an empty object.
func Object(err error) zerolog.LogObjectMarshaler {
	return chain{err: err}
}

// Log attaches err's message to evt under the "error" key and returns evt
// for chaining.
func Log(evt *zerolog.Event, err error) *zerolog.Event {
	if evt == nil {
		return nil
	}
	return evt.Object("error", Object(err))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (c chain) MarshalZerologObject(e *zerolog.Event) {
	if c.err == nil {
		return
	}
	e.Str("message", c.err.Error())
}
