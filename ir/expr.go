package ir

import "kotc/report"

// Expr represents an expression, simple or complex.  All expression nodes
// implement the `Expr` interface.
type Expr interface {
	// Span returns the source span of the expression, if known.
	Span() *report.TextSpan

	exprNode()
}

// ExprBase is the base struct for all expressions.  Lowering concerns itself
// with structure, not typing: expression types were checked upstream and are
// reconstructed by the serializer, so expression nodes carry spans only.
type ExprBase struct {
	span *report.TextSpan
}

// NewExprBaseOn creates a new expression base with the given span.
func NewExprBaseOn(span *report.TextSpan) ExprBase {
	return ExprBase{span: span}
}

func (eb ExprBase) Span() *report.TextSpan { return eb.span }
func (ExprBase) exprNode()                 {}

// -----------------------------------------------------------------------------

// IntLit represents an integer literal.
type IntLit struct {
	ExprBase

	Value int64
}

// StrLit represents a string literal.
type StrLit struct {
	ExprBase

	Value string
}

// NullLit represents the null literal.  Lowerings use it as the sentinel value
// of materialized lateinit backing fields.
type NullLit struct {
	ExprBase
}

// VarRef references a local value definition: a parameter or let-bound
// variable.
type VarRef struct {
	ExprBase

	Def *VarDef
}

// Binary represents a binary operator application.
type Binary struct {
	ExprBase

	Op       string
	Lhs, Rhs Expr
}

// -----------------------------------------------------------------------------

// Call represents a direct call to a declared function.  Instance methods take
// their receiver as an explicit leading argument.
type Call struct {
	ExprBase

	Callee *Symbol
	Args   []Expr
}

// FuncRef represents a first-class reference to a declared function: a value
// denoting the callable without invoking it.
type FuncRef struct {
	ExprBase

	Target *Symbol
}

// FieldGet reads a property's backing field.  Receiver is nil for top-level
// properties.
type FieldGet struct {
	ExprBase

	Target   *Symbol
	Receiver Expr
}

// FieldSet writes a property's backing field.  Receiver is nil for top-level
// properties.
type FieldSet struct {
	ExprBase

	Target   *Symbol
	Receiver Expr
	Value    Expr
}

// New constructs an instance of a class.
type New struct {
	ExprBase

	Class *Symbol
	Args  []Expr
}

// OuterRef references the enclosing instance of an inner class: the implicit
// outer receiver.  Receiver is the inner instance the outer instance is read
// from; nil means the implicit `this` of the enclosing inner class body.
type OuterRef struct {
	ExprBase

	Inner    *Symbol
	Receiver Expr
}

// Lambda represents an anonymous function value.
type Lambda struct {
	ExprBase

	Params []*VarDef
	Body   *Block
}

// BlockExpr is a block in expression position: a sequence of statements
// followed by a result expression.  Inlining introduces block expressions when
// a callee body cannot be reduced to a single expression.
type BlockExpr struct {
	ExprBase

	Stmts  []Stmt
	Result Expr
}

// NewArray is the array-constructor intrinsic: it allocates an array of the
// given size and, if Init is non-nil, invokes the init lambda for every index.
// The array-constructor lowering rewrites initialized forms into a call to the
// array-fill runtime helper.
type NewArray struct {
	ExprBase

	Size Expr
	Init Expr
}
