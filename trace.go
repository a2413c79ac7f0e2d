//go:build !nobacktrace

// trace.go — backtrace capture and rendering for xgx-errctx.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Opaque diagnostics: a Backtrace is captured once, never mutated, and
//     rendered only through String/%+v; no symbolization policy lives here.
//   - Pragmatic performance: bounded depth, allocation only when a capture
//     is actually requested.
//
// References:
//   - runtime.Callers / CallersFrames docs and example
//   - Prefer CallersFrames over FuncForPC for inlined frames
//   - Callers skip semantics (0 = Callers, 1 = its caller)
package xgxerrctx

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Frame represents a single call site in a captured backtrace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Backtrace is an opaque snapshot of the call stack at a point of failure,
// most recent call first. It is immutable after capture; the zero value is a
// valid empty trace.
type Backtrace struct {
	frames []Frame
}

// defaultMaxDepth is a conservative bound that records meaningful context
// without excessive work on exceptional paths.
const defaultMaxDepth = 64

// emptyBacktrace is the canonical "no trace available" value. It is what
// callers receive instead of nil when a wrapped error carries no capture,
// so Backtrace accessors can guarantee a non-nil result.
var emptyBacktrace = &Backtrace{}

// Capture records the current call stack, starting at Capture's caller.
func Capture() *Backtrace {
	return captureSkip(1)
}

// captureSkip records the current call stack, skipping 'skip' frames beyond
// captureSkip itself.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureSkip
//
// so skip=0 places the first recorded frame at captureSkip's caller, and
// each exported entry point passes the extra frames it adds.
func captureSkip(skip int) *Backtrace {
	pc := make([]uintptr, defaultMaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return emptyBacktrace
	}
	return resolveFrames(pc[:n])
}

// resolveFrames expands program counters into resolved Frames via
// CallersFrames, which handles inlined calls correctly.
func resolveFrames(pc []uintptr) *Backtrace {
	frames := runtime.CallersFrames(pc)
	out := make([]Frame, 0, len(pc))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return &Backtrace{frames: out}
}

// Frames returns a defensive copy of the captured frames, most recent first.
func (b *Backtrace) Frames() []Frame {
	if b == nil || len(b.frames) == 0 {
		return nil
	}
	out := make([]Frame, len(b.frames))
	copy(out, b.frames)
	return out
}

// IsEmpty reports whether the trace carries no frames. Empty traces exist:
// they stand in for errors that never captured one.
func (b *Backtrace) IsEmpty() bool {
	return b == nil || len(b.frames) == 0
}

// String renders one "function file:line" line per frame, most recent first.
// An empty trace renders as the empty string.
func (b *Backtrace) String() string {
	if b.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	b.writeTo(&sb)
	return sb.String()
}

func (b *Backtrace) writeTo(w io.Writer) {
	for i, fr := range b.frames {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = fmt.Fprintf(w, "%s %s:%d", fr.Function, fr.File, fr.Line)
	}
}

// Format implements fmt.Formatter. All verbs render the String form; a
// Backtrace has no concise/verbose split of its own.
func (b *Backtrace) Format(s fmt.State, verb rune) {
	switch verb {
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", b.String())
	default:
		b.writeTo(s)
	}
}

// stackTracer is the capture shape recorded by github.com/pkg/errors.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// stackOf recovers a backtrace recorded by pkg/errors anywhere in err's
// unwrap chain. The pkg/errors frames are raw runtime.Callers values, so
// they resolve through the same CallersFrames path as our own captures.
func stackOf(err error) (*Backtrace, bool) {
	var st stackTracer
	if !pkgerrors.As(err, &st) {
		return nil, false
	}
	trace := st.StackTrace()
	if len(trace) == 0 {
		return nil, false
	}
	pc := make([]uintptr, len(trace))
	for i, f := range trace {
		pc[i] = uintptr(f)
	}
	return resolveFrames(pc), true
}
