package ir

// Symbol identifies a declaration from a use site.  A symbol never owns its
// declaration: it is a back-reference from a call, field access, or other
// reference to exactly one declaring Decl.  Two references denote the same
// declaration exactly when they hold the same symbol pointer.
type Symbol struct {
	def Decl
}

// Def returns the declaration this symbol identifies.
func (s *Symbol) Def() Decl {
	return s.def
}

// Name returns the name of the declaration this symbol identifies.
func (s *Symbol) Name() string {
	return s.def.Name()
}
