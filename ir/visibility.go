package ir

// Enumeration of access kinds: the ways relocated code can reach a
// declaration.  Accessors generated for a declaration are deduplicated by
// (symbol, access kind), so at most one accessor exists per distinct need.
type AccessKind int

const (
	AccessGet   AccessKind = iota // Read a property's backing field.
	AccessSet                     // Write a property's backing field.
	AccessCall                    // Call a function.
	AccessInit                    // Invoke a constructor.
	AccessOuter                   // Read an inner class's outer instance.
)

// Tag returns the short tag used when deriving accessor names from an access
// kind.  Tags are stable: generated accessor names must be reproducible across
// repeated runs on identical input.
func (k AccessKind) Tag() string {
	switch k {
	case AccessGet:
		return "get"
	case AccessSet:
		return "set"
	case AccessCall:
		return "call"
	case AccessInit:
		return "init"
	default:
		return "outer"
	}
}

// -----------------------------------------------------------------------------

// VisibleFrom reports whether the target declaration can be referenced from
// the given scope without crossing a visibility boundary.  Public and internal
// declarations are visible throughout the module.  A private declaration is
// visible only from its declaring scope and the scopes nested within it.
func VisibleFrom(target Decl, from Scope) bool {
	if target.Visibility() != Private {
		return true
	}

	owner := target.Parent()
	for s := from; s != nil; s = s.EnclosingScope() {
		if s == owner {
			return true
		}
	}

	// Declarations not yet bound to a scope are treated as local to the code
	// being built and always reachable.
	return owner == nil
}

// CtorVisibleFrom reports whether the class's constructor can be invoked from
// the given scope.
func CtorVisibleFrom(cd *ClassDecl, from Scope) bool {
	if cd.CtorVis != Private {
		return true
	}

	for s := from; s != nil; s = s.EnclosingScope() {
		if s == cd || s == cd.Parent() {
			return true
		}
	}

	return false
}
