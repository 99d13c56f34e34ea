package trace

import (
	"bytes"
	"strings"
	"testing"

	"gold/span"
)

func TestMatchesFilterEmptyMatchesAll(t *testing.T) {
	tr := &Tracer{enabled: true}
	if !tr.matchesFilter("Let") {
		t.Error("empty filter set should match any node kind")
	}
}

func TestMatchesFilterGlob(t *testing.T) {
	tr := &Tracer{enabled: true, filters: []string{"Eval*"}}
	if !tr.matchesFilter("EvalCall") {
		t.Error("EvalCall should match Eval*")
	}
	if tr.matchesFilter("Let") {
		t.Error("Let should not match Eval*")
	}
}

func TestEnterExitDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	tr := &Tracer{enabled: false, writer: &buf}
	tr.Enter("Let", span.Span{})
	tr.Exit("Let", span.Span{}, "1", nil)
	if buf.Len() != 0 {
		t.Errorf("disabled tracer wrote output: %q", buf.String())
	}
}

func TestEnterExitEnabledWritesLines(t *testing.T) {
	var buf bytes.Buffer
	tr := &Tracer{enabled: true, writer: &buf}
	tr.Enter("Let", span.Span{})
	tr.Exit("Let", span.Span{}, "7", nil)
	out := buf.String()
	if !strings.Contains(out, "ENTER Let") {
		t.Errorf("missing ENTER line: %q", out)
	}
	if !strings.Contains(out, "EXIT  Let") || !strings.Contains(out, "=> 7") {
		t.Errorf("missing EXIT line: %q", out)
	}
}

func TestExitReportsError(t *testing.T) {
	var buf bytes.Buffer
	tr := &Tracer{enabled: true, writer: &buf}
	tr.Exit("Call", span.Span{}, "", errNameError{})
	if !strings.Contains(buf.String(), "ERROR Call") {
		t.Errorf("expected ERROR line, got %q", buf.String())
	}
}

type errNameError struct{}

func (errNameError) Error() string { return "unbound name" }

func TestFilteredOutNodeProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	tr := &Tracer{enabled: true, filters: []string{"Let"}, writer: &buf}
	tr.Enter("Call", span.Span{})
	if buf.Len() != 0 {
		t.Errorf("filtered-out node kind should produce no output, got %q", buf.String())
	}
}

func TestGlobalIsEnabled(t *testing.T) {
	globalTracer = nil
	if IsEnabled() {
		t.Error("IsEnabled should be false before Init")
	}
	Init(true, nil, &bytes.Buffer{})
	if !IsEnabled() {
		t.Error("IsEnabled should be true after Init(true, ...)")
	}
	Init(false, nil, &bytes.Buffer{})
	if IsEnabled() {
		t.Error("IsEnabled should be false after Init(false, ...)")
	}
}
