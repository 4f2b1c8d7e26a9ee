package ir

import "kotc/report"

// Enumeration of declaration visibilities.  Private declarations are private
// to their declaring scope; internal declarations are visible throughout the
// declaring module but not beyond it; public declarations are visible to other
// modules once the module is serialized.
type Visibility int

const (
	Public Visibility = iota
	Internal
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Internal:
		return "internal"
	default:
		return "private"
	}
}

// Scope is a lexical container for declarations: either the module itself or a
// class declaration.
type Scope interface {
	// EnclosingScope returns the scope containing this one.  The module
	// returns nil.
	EnclosingScope() Scope
}

// Decl is the abstract interface for all top-level and member declarations.
// The set of declaration kinds is closed: FuncDecl, PropDecl, and ClassDecl.
// Code dispatching on declaration kind must switch exhaustively over these
// three types.
type Decl interface {
	// Name returns the declared name.
	Name() string

	// Visibility returns the declared visibility.
	Visibility() Visibility

	// Sym returns the symbol identifying this declaration.
	Sym() *Symbol

	// Parent returns the scope this declaration belongs to.
	Parent() Scope

	// SetParent rebinds the declaration to a new scope.  Used when lowering
	// relocates declarations (eg. hoisting local classes to module scope).
	SetParent(Scope)

	// Span returns the source span of the declaration, if known.
	Span() *report.TextSpan
}

// DeclBase is the base struct for all declarations.
type DeclBase struct {
	name   string
	vis    Visibility
	sym    *Symbol
	parent Scope
	span   *report.TextSpan
}

func (db *DeclBase) Name() string           { return db.name }
func (db *DeclBase) Visibility() Visibility { return db.vis }
func (db *DeclBase) Sym() *Symbol           { return db.sym }
func (db *DeclBase) Parent() Scope          { return db.parent }
func (db *DeclBase) SetParent(s Scope)      { db.parent = s }
func (db *DeclBase) Span() *report.TextSpan { return db.span }

// Rename changes the declared name.  Used by lowerings that relocate
// declarations under mangled names.
func (db *DeclBase) Rename(name string) { db.name = name }

// SetSpan attaches a source span to the declaration.
func (db *DeclBase) SetSpan(span *report.TextSpan) { db.span = span }

// -----------------------------------------------------------------------------

// VarDef is a local value definition: a function parameter or a let-bound
// variable.  Variable references identify their definition by pointer, so a
// VarDef must be freshly allocated whenever a body containing it is cloned.
type VarDef struct {
	// The declared name of the variable.
	Name string

	// Whether the variable can be reassigned.
	Mutable bool

	// Whether the variable is captured by a nested lambda.  Set by the
	// upstream front end.
	Captured bool
}

// -----------------------------------------------------------------------------

// FuncDecl represents a function declaration.
type FuncDecl struct {
	DeclBase

	// The parameters of the function.  Instance methods receive their
	// receiver as an explicit leading parameter.
	Params []*VarDef

	// The body of the function.  This is nil for external or abstract
	// functions.
	Body *Block

	// Whether call sites of this function may be replaced by a copy of its
	// body.
	IsInline bool

	// Whether the function has a type parameter that is substituted at each
	// call site, requiring specialization rather than one compiled body.
	IsReified bool

	// Whether this function was synthesized by the lowering pipeline (eg. a
	// generated accessor).
	Synthetic bool
}

// NewFuncDecl creates a new function declaration and binds its symbol.
func NewFuncDecl(name string, vis Visibility, params ...*VarDef) *FuncDecl {
	fd := &FuncDecl{DeclBase: DeclBase{name: name, vis: vis}, Params: params}
	fd.sym = &Symbol{def: fd}
	return fd
}

// -----------------------------------------------------------------------------

// PropDecl represents a property declaration with a backing field.
type PropDecl struct {
	DeclBase

	// Whether the property can be reassigned.
	Mutable bool

	// Whether the property is late-initialized: declared without an
	// initializer and assigned before first use, with a runtime guard on
	// reads.  Cleared by the lateinit materialization pass.
	Lateinit bool

	// The initializer expression.  Nil for lateinit properties until
	// materialization installs the null sentinel.
	Init Expr
}

// NewPropDecl creates a new property declaration and binds its symbol.
func NewPropDecl(name string, vis Visibility) *PropDecl {
	pd := &PropDecl{DeclBase: DeclBase{name: name, vis: vis}}
	pd.sym = &Symbol{def: pd}
	return pd
}

// -----------------------------------------------------------------------------

// ClassDecl represents a class declaration.  A class is also a scope: its
// members may be private to it.
type ClassDecl struct {
	DeclBase

	// The ordered member declarations of the class.
	Members []Decl

	// Whether the class is an inner class carrying an implicit reference to
	// an instance of its enclosing class.
	IsInner bool

	// The visibility of the class's constructor.  A class may be publicly
	// visible while only being constructible from its declaring scope.
	CtorVis Visibility

	// The parameters of the class's constructor.
	CtorParams []*VarDef
}

// NewClassDecl creates a new class declaration and binds its symbol.
func NewClassDecl(name string, vis Visibility) *ClassDecl {
	cd := &ClassDecl{DeclBase: DeclBase{name: name, vis: vis}, CtorVis: vis}
	cd.sym = &Symbol{def: cd}
	return cd
}

// AddMember appends a member declaration and binds its parent scope.
func (cd *ClassDecl) AddMember(d Decl) {
	d.SetParent(cd)
	cd.Members = append(cd.Members, d)
}

// EnclosingScope returns the scope the class is declared in.
func (cd *ClassDecl) EnclosingScope() Scope {
	return cd.parent
}
