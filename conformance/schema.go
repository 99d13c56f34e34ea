// Package conformance runs the language's golden input/expected-value
// scenarios end to end (source text → lexer → parser → validator →
// evaluator), the way the host's conformance suite ran golden MOO
// fixtures against the VM.
package conformance

import "gold/gerr"

// Scenario is one golden input/expected-output pair. Exactly one of
// Expect or ExpectErrorKind is set.
type Scenario struct {
	Name            string
	Source          string
	Expect          string // the expected value's ToString() form
	ExpectErrorKind gerr.Kind
	ExpectsError    bool
}
