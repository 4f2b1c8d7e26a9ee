package ir

import "kotc/report"

// Stmt represents a statement.  All statement nodes implement the `Stmt`
// interface.
type Stmt interface {
	// Span returns the source span of the statement, if known.
	Span() *report.TextSpan

	stmtNode()
}

// StmtBase is the base struct for all statements.
type StmtBase struct {
	span *report.TextSpan
}

// NewStmtBaseOn creates a new statement base with the given span.
func NewStmtBaseOn(span *report.TextSpan) StmtBase {
	return StmtBase{span: span}
}

func (sb StmtBase) Span() *report.TextSpan { return sb.span }
func (StmtBase) stmtNode()                 {}

// -----------------------------------------------------------------------------

// Block is an ordered sequence of statements.
type Block struct {
	StmtBase

	Stmts []Stmt
}

// NewBlock creates a block over the given statements.
func NewBlock(stmts ...Stmt) *Block {
	return &Block{Stmts: stmts}
}

// Let binds a new local variable.
type Let struct {
	StmtBase

	Def  *VarDef
	Init Expr
}

// Assign reassigns a mutable local variable.
type Assign struct {
	StmtBase

	Def   *VarDef
	Value Expr
}

// ExprStmt evaluates an expression for its effects.
type ExprStmt struct {
	StmtBase

	X Expr
}

// Return returns from the enclosing function.  Value may be nil.
type Return struct {
	StmtBase

	Value Expr
}

// If branches on a condition.  Else may be nil.
type If struct {
	StmtBase

	Cond Expr
	Then *Block
	Else *Block
}

// LocalClass declares a class local to a function or lambda body.  The
// local-class hoisting pass relocates these to module scope before inlining
// copies any body containing them.
type LocalClass struct {
	StmtBase

	Class *ClassDecl
}
