package report

import "fmt"

// Enumeration of diagnostic severities.
const (
	SeverityWarning = iota // A condition the user should know about.
	SeverityError          // A condition that fails the current module's run.
)

// Enumeration of diagnostic kinds.  The kind identifies which invariant or
// subsystem produced the diagnostic.
const (
	KindGeneral    = iota // A general lowering diagnostic.
	KindCallSite          // A disallowed surviving inline call site.
	KindInlineDecl        // A malformed inline declaration.
	KindPhase             // A pipeline construction or execution problem.
)

// Diagnostic is a structured report produced by the lowering pipeline.  The
// pipeline never formats user-facing text itself: diagnostics are handed to a
// Sink which decides how (and whether) to render them.
type Diagnostic struct {
	// The severity of the diagnostic.  This must be one of the enumerated
	// severities.
	Severity int

	// The kind of the diagnostic.  This must be one of the enumerated kinds.
	Kind int

	// The diagnostic message.
	Message string

	// The source span the diagnostic refers to.  This may be nil if no
	// position information is available.
	Span *TextSpan

	// The stable name of the symbol the diagnostic refers to, if any.
	Target string
}

// Error allows a diagnostic to travel as a Go error where convenient.
func (d *Diagnostic) Error() string {
	if d.Span != nil {
		return fmt.Sprintf("%s: %s", d.Span, d.Message)
	}

	return d.Message
}

// Sink receives structured diagnostics.  It is an external collaborator
// injected into the pipeline at construction: different drivers may render to
// a console, collect for tests, or forward to a build server.
type Sink interface {
	// Report handles a single diagnostic.
	Report(d *Diagnostic)
}

// DiscardSink is a sink that drops every diagnostic.  It is primarily useful
// in tests that only inspect returned errors.
type DiscardSink struct{}

func (DiscardSink) Report(*Diagnostic) {}
