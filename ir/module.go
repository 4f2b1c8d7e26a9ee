package ir

// Module represents a single compilation unit once converted into the lowering
// IR.  It owns an ordered sequence of top-level declarations and is mutated in
// place by every lowering pass.  A module exists for the lifetime of one
// pipeline run: re-running the pipeline over an already-lowered module is not
// supported.
type Module struct {
	// The name of the module.
	Name string

	// The ordered top-level declarations of the module.
	Decls []Decl

	// builtins caches the module's declared runtime helper symbols.
	builtins map[string]*Symbol
}

// NewModule creates a new, empty module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// AddDecl appends a top-level declaration and binds its parent scope.
func (m *Module) AddDecl(d Decl) {
	d.SetParent(m)
	m.Decls = append(m.Decls, d)
}

// EnclosingScope returns nil: the module is the outermost scope.
func (m *Module) EnclosingScope() Scope {
	return nil
}

// EachDecl calls f for every declaration in the module, including class
// members, in declaration order.
func (m *Module) EachDecl(f func(Decl)) {
	// Class members may be appended while lowering passes iterate, so index
	// explicitly rather than ranging over a snapshot.
	for i := 0; i < len(m.Decls); i++ {
		eachDecl(m.Decls[i], f)
	}
}

func eachDecl(d Decl, f func(Decl)) {
	f(d)

	if cd, ok := d.(*ClassDecl); ok {
		for i := 0; i < len(cd.Members); i++ {
			eachDecl(cd.Members[i], f)
		}
	}
}
