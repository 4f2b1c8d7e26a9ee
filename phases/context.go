package phases

import (
	"kotc/ir"
	"kotc/mangle"
	"kotc/report"
)

// CallSitePolicy decides whether a reference to a private inline declaration
// may survive the pipeline.  It is injected so that validator exceptions are
// policy, not hard-coded behavior.
type CallSitePolicy func(site ir.Expr, target ir.Decl) bool

// DefaultCallSitePolicy admits the single documented exception: a first-class
// function reference (not a direct call) to an inline target with a reified
// type parameter.  Such references cannot be inlined at this stage because the
// reified parameter is only resolvable through a direct call, and they are
// handled by a later stage after serialization.
func DefaultCallSitePolicy(site ir.Expr, target ir.Decl) bool {
	if _, ok := site.(*ir.FuncRef); !ok {
		return false
	}

	fd, ok := target.(*ir.FuncDecl)
	return ok && fd.IsReified
}

// Options is the read-only configuration of a pipeline run.
type Options struct {
	// Whether lowering may materialize fields holding outer instances.  When
	// false (the default for pre-serialization lowering), implicit outer
	// references in relocated code are routed through generated accessors
	// instead.
	ProduceOuterThisFields bool

	// The call-site exception policy consulted by the validator.  Nil means
	// DefaultCallSitePolicy.
	CheckCallSite CallSitePolicy
}

// -----------------------------------------------------------------------------

// AccessorKey identifies one distinct accessor need: a target declaration and
// the kind of access requested.
type AccessorKey struct {
	Target *ir.Symbol
	Kind   ir.AccessKind
}

// AccessorCache deduplicates generated accessors.  The cache is owned by the
// accessor-generating passes: no other phase reads or writes it, and it is
// never accessed concurrently.
type AccessorCache struct {
	accessors map[AccessorKey]*ir.Symbol
}

// Lookup returns the accessor symbol generated for the key, if any.
func (ac *AccessorCache) Lookup(key AccessorKey) (*ir.Symbol, bool) {
	sym, ok := ac.accessors[key]
	return sym, ok
}

// Insert records the accessor symbol generated for the key.
func (ac *AccessorCache) Insert(key AccessorKey, sym *ir.Symbol) {
	if ac.accessors == nil {
		ac.accessors = make(map[AccessorKey]*ir.Symbol)
	}

	ac.accessors[key] = sym
}

// Len returns the number of distinct accessors generated so far.
func (ac *AccessorCache) Len() int {
	return len(ac.accessors)
}

// -----------------------------------------------------------------------------

// Context is the state threaded through one pipeline run.  It partitions the
// read-only configuration from the phase-owned mutable caches.  A context is
// created at pipeline start and discarded at pipeline end; contexts are never
// shared between concurrent runs.
type Context struct {
	// The read-only run configuration.
	Opts Options

	// The accessor cache, owned by the accessor-generating passes.
	Accessors AccessorCache

	// The reporter diagnostics are delivered through.
	Reporter *report.Reporter

	// The stable-name provider used when identifying non-private inline
	// declarations in reports.
	Names mangle.Provider
}

// NewContext creates a context for one pipeline run, filling in defaults for
// any collaborator left nil.
func NewContext(opts Options, rep *report.Reporter, names mangle.Provider) *Context {
	if opts.CheckCallSite == nil {
		opts.CheckCallSite = DefaultCallSitePolicy
	}

	if rep == nil {
		rep = report.NewReporter(nil)
	}

	if names == nil {
		names = mangle.PathProvider{}
	}

	return &Context{Opts: opts, Reporter: rep, Names: names}
}
