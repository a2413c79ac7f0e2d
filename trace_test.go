//go:build !nobacktrace

// trace_test.go — verification of backtrace capture and rendering.
package xgxerrctx

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestCaptureRecordsCallSite(t *testing.T) {
	t.Parallel()

	bt := Capture()
	if bt.IsEmpty() {
		t.Fatalf("expected a non-empty capture")
	}

	frames := bt.Frames()
	if !strings.Contains(frames[0].Function, "TestCaptureRecordsCallSite") {
		t.Fatalf("first frame should be the caller of Capture; got %q", frames[0].Function)
	}
	if !strings.Contains(frames[0].File, "trace_test.go") {
		t.Fatalf("first frame file mismatch: %q", frames[0].File)
	}
	if frames[0].Line <= 0 {
		t.Fatalf("frame line must be resolved; got %d", frames[0].Line)
	}
}

func TestEmptyBacktrace(t *testing.T) {
	t.Parallel()

	for _, bt := range []*Backtrace{nil, emptyBacktrace, {}} {
		if !bt.IsEmpty() {
			t.Fatalf("expected empty trace")
		}
		if got := bt.String(); got != "" {
			t.Fatalf("empty trace must render as empty string; got %q", got)
		}
		if bt.Frames() != nil {
			t.Fatalf("empty trace must expose no frames")
		}
	}
}

func TestFramesDefensiveCopy(t *testing.T) {
	t.Parallel()

	bt := Capture()
	frames := bt.Frames()
	frames[0].Function = "mutated"

	if bt.Frames()[0].Function == "mutated" {
		t.Fatalf("Frames must return a copy; internal state was mutated")
	}
}

func TestStringLayout(t *testing.T) {
	t.Parallel()

	bt := &Backtrace{frames: []Frame{
		{Function: "pkg.inner", File: "/src/pkg/inner.go", Line: 12},
		{Function: "pkg.outer", File: "/src/pkg/outer.go", Line: 40},
	}}
	want := "pkg.inner /src/pkg/inner.go:12\npkg.outer /src/pkg/outer.go:40"
	if got := bt.String(); got != want {
		t.Fatalf("layout mismatch.\nwant: %q\ngot:  %q", want, got)
	}
	if got := fmt.Sprintf("%+v", bt); got != want {
		t.Fatalf("%%+v must equal String; got %q", got)
	}
	if got := fmt.Sprintf("%q", bt); got != fmt.Sprintf("%q", want) {
		t.Fatalf("%%q mismatch: %s", got)
	}
}

func TestStackOfRecoversPkgErrorsCapture(t *testing.T) {
	t.Parallel()

	err := pkgerrors.New("io failure")
	bt, ok := stackOf(err)
	if !ok || bt.IsEmpty() {
		t.Fatalf("expected a trace recovered from pkg/errors")
	}
	if !strings.Contains(bt.String(), "TestStackOfRecoversPkgErrorsCapture") {
		t.Fatalf("recovered trace should include the capture site; got:\n%s", bt)
	}
}

func TestStackOfPlainErrorHasNoCapture(t *testing.T) {
	t.Parallel()

	if _, ok := stackOf(errors.New("boom")); ok {
		t.Fatalf("plain errors carry no capture")
	}
}

func TestStackOfFindsCaptureDownTheChain(t *testing.T) {
	t.Parallel()

	inner := pkgerrors.New("io failure")
	outer := fmt.Errorf("reading index: %w", inner)

	bt, ok := stackOf(outer)
	if !ok || bt.IsEmpty() {
		t.Fatalf("capture below a %%w wrapper should still be recovered")
	}
}
