// Package trace implements optional step tracing over evaluator
// dispatch, gated behind an enabled flag and a glob filter, for use by
// cmd/gold's -trace flag.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gold/span"
)

// Tracer logs one line per traced AST node dispatch.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

var globalTracer *Tracer

// Init installs the global tracer used by the package-level convenience
// functions below.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{enabled: enabled, filters: filters, writer: writer}
}

// IsEnabled reports whether the global tracer is active.
func IsEnabled() bool {
	return globalTracer != nil && globalTracer.enabled
}

// matchesFilter checks a node-kind name against the glob filters; an
// empty filter set matches everything.
func (t *Tracer) matchesFilter(nodeKind string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, nodeKind); matched {
			return true
		}
	}
	return false
}

// Enter logs the start of evaluating a node of the given kind at sp.
func (t *Tracer) Enter(nodeKind string, sp span.Span) {
	if !t.enabled || !t.matchesFilter(nodeKind) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] ENTER %s at %s\n", nodeKind, sp)
}

// Exit logs the result of evaluating a node, or the error that aborted it.
func (t *Tracer) Exit(nodeKind string, sp span.Span, result string, err error) {
	if !t.enabled || !t.matchesFilter(nodeKind) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		fmt.Fprintf(t.writer, "[TRACE] ERROR %s at %s: %s\n", nodeKind, sp, err)
		return
	}
	fmt.Fprintf(t.writer, "[TRACE] EXIT  %s at %s => %s\n", nodeKind, sp, result)
}

// Enter traces via the global tracer, a no-op when tracing is disabled.
func Enter(nodeKind string, sp span.Span) {
	if globalTracer != nil {
		globalTracer.Enter(nodeKind, sp)
	}
}

// Exit traces via the global tracer, a no-op when tracing is disabled.
func Exit(nodeKind string, sp span.Span, result string, err error) {
	if globalTracer != nil {
		globalTracer.Exit(nodeKind, sp, result, err)
	}
}
