//go:build !nobacktrace

// zlog.go — zerolog adapter for xgx-errctx chains.
//
// The core stays policy-free; this subpackage is where structured logging
// lives. It exposes the verbose-form information (message, cause chain,
// capture site) as zerolog fields so services can log a wrapped error once
// and get the whole chain in one event.
package zlog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/xgx-io/xgx-errctx"
)

// backtracer is the capture surface of xgxerrctx.Fail, restated locally so
// Object accepts any error and probes for it.
type backtracer interface {
	Backtrace() *xgxerrctx.Backtrace
}

// chain marshals an error and everything underneath it into a zerolog
// object.
type chain struct {
	err error
}

var _ zerolog.LogObjectMarshaler = chain{}

// Object returns a marshaler for err suitable for zerolog's Object/EmbedObject.
// A nil err marshals to an empty object.
func Object(err error) zerolog.LogObjectMarshaler {
	return chain{err: err}
}

// Log attaches err's chain to evt under the "error" key and returns evt for
// chaining.
func Log(evt *zerolog.Event, err error) *zerolog.Event {
	if evt == nil {
		return nil
	}
	return evt.Object("error", Object(err))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
//
// Fields:
//   - message: err's concise form (end-user text for contexts)
//   - causes:  concise forms of the chain underneath, outermost first
//   - trace:   "function file:line" frames from the error's backtrace
func (c chain) MarshalZerologObject(e *zerolog.Event) {
	if c.err == nil {
		return
	}
	e.Str("message", c.err.Error())

	if causes := xgxerrctx.Causes(c.err); len(causes) > 0 {
		arr := zerolog.Arr()
		for _, cause := range causes {
			arr.Str(cause.Error())
		}
		e.Array("causes", arr)
	}

	if bt, ok := c.err.(backtracer); ok {
		if trace := bt.Backtrace(); !trace.IsEmpty() {
			arr := zerolog.Arr()
			for _, fr := range trace.Frames() {
				arr.Str(fmt.Sprintf("%s %s:%d", fr.Function, fr.File, fr.Line))
			}
			e.Array("trace", arr)
		}
	}
}
