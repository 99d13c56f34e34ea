// Package ast defines Gold's abstract syntax tree. Every node carries a
// source span for diagnostics; nodes are built once by the parser and
// never mutated afterward.
package ast

import (
	"math/big"

	"gold/span"
)

// Node is implemented by every AST node.
type Node interface {
	Span() span.Span
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Pos embeds the span common to all nodes.
type Pos struct {
	Sp span.Span
}

func (p Pos) Span() span.Span { return p.Sp }

// LiteralKind distinguishes the handful of self-evaluating literal forms.
// Strings are never represented this way; they are always a String node,
// even when they contain no interpolation.
type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitBool
	LitInt
	LitFloat
)

// Literal is a self-evaluating constant: null, a boolean, an integer (held
// as arbitrary precision, normalized by the evaluator) or a float.
type Literal struct {
	Pos
	Kind  LiteralKind
	Bool  bool
	Int   *big.Int
	Float float64
}

func (*Literal) exprNode() {}

// Identifier is a bare name reference.
type Identifier struct {
	Pos
	Name string
}

func (*Identifier) exprNode() {}

// StringPart is either a raw run of text or an interpolated expression,
// one element of a String node.
type StringPart struct {
	Raw    string
	Interp Expr // nil when this part is raw text
}

// String is a sequence of raw and interpolated parts joined at eval time.
type String struct {
	Pos
	Parts []StringPart
}

func (*String) exprNode() {}

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryNeg
	UnaryNot
)

// Unary is a prefix operation.
type Unary struct {
	Pos
	Op      UnaryOp
	Operand Expr
}

func (*Unary) exprNode() {}

// BinaryOp identifies an infix operator.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	FloorDiv
	Pow
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	LogicAnd
	LogicOr
)

// Binary is an infix operation.
type Binary struct {
	Pos
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (*Binary) exprNode() {}

// Index is subscript/field access: Target[Index] or Target.name (desugared
// into a string-literal Index by the parser).
type Index struct {
	Pos
	Target Expr
	Index  Expr
}

func (*Index) exprNode() {}

// CallArgKind distinguishes the three forms a function-call argument can
// take.
type CallArgKind int

const (
	ArgPositional CallArgKind = iota
	ArgSplat
	ArgKeyword
)

// CallArg is one argument in a FunCall's argument list.
type CallArg struct {
	Kind  CallArgKind
	Name  string // set when Kind == ArgKeyword
	Value Expr
}

// FunCall applies Callee to Args.
type FunCall struct {
	Pos
	Callee Expr
	Args   []CallArg
}

func (*FunCall) exprNode() {}

// Function is a function literal: positional parameters, optional keyword
// parameters, and a single expression body.
type Function struct {
	Pos
	Positional  *ListBinding
	Keywords    *MapBinding // nil when absent
	KeywordOnly bool        // {patterns} => expr form
	Body        Expr
}

func (*Function) exprNode() {}

// LetBinding is one `name = expr` (destructuring) entry of a let block.
type LetBinding struct {
	Pattern Binding
	Value   Expr
}

// Let evaluates Bindings in order, each in scope of the previous, then
// evaluates Body in the resulting environment.
type Let struct {
	Pos
	Bindings []LetBinding
	Body     Expr
}

func (*Let) exprNode() {}

// Branch is `if Condition then True else False`.
type Branch struct {
	Pos
	Condition Expr
	True      Expr
	False     Expr
}

func (*Branch) exprNode() {}

// ListElemKind distinguishes the four forms a list (or map) literal
// element can take.
type ListElemKind int

const (
	ElemSingle ListElemKind = iota
	ElemSplat
	ElemForLoop
	ElemIf
)

// ListElem is one element of a List literal.
type ListElem struct {
	Kind ListElemKind
	// ElemSingle, ElemSplat:
	Value Expr
	// ElemForLoop:
	Binder   Binding
	Iterable Expr
	// ElemIf:
	Condition Expr
	// ElemForLoop, ElemIf carry a nested element describing what to
	// produce per iteration/when true.
	Body *ListElem
}

// List is a list literal: `[elem, elem, ...]`.
type List struct {
	Pos
	Elements []ListElem
}

func (*List) exprNode() {}

// MapElemKind distinguishes map-literal element forms. It mirrors
// ListElemKind but adds dynamic ($expr: value) and static (name: value)
// singleton keys.
type MapElemKind int

const (
	MapSingle MapElemKind = iota
	MapSplat
	MapForLoop
	MapIf
)

// MapKey is the key half of a MapSingle element: either a literal
// identifier-style key or a `$expr` dynamic key.
type MapKey struct {
	Name    string // set when Dynamic is nil
	Dynamic Expr   // non-nil for a `$expr` key
}

// MapElem is one element of a Map literal.
type MapElem struct {
	Kind MapElemKind
	Key  MapKey
	// MapSingle:
	Value Expr
	// MapSplat:
	Splat Expr
	// MapForLoop:
	Binder   Binding
	Iterable Expr
	// MapIf:
	Condition Expr
	Body      *MapElem
}

// Map is a map literal: `{key: value, ...}`.
type Map struct {
	Pos
	Elements []MapElem
}

func (*Map) exprNode() {}

// Import is one `import "path" as binding` clause at the top of a File.
type Import struct {
	Sp      span.Span
	Path    string
	Binding Binding
}

// File is the top-level unit: zero or more imports followed by a single
// body expression.
type File struct {
	Imports []Import
	Body    Expr
}

// NewBase is a constructor helper used by the parser to attach a span to
// a freshly built node.
func NewBase(sp span.Span) Pos { return Pos{Sp: sp} }
