package validate

import (
	"fmt"

	"kotc/report"
)

// StructuralViolationError reports that disallowed references to private
// inline declarations survived lowering.  Violations are collected across the
// whole module and surfaced together, never fail-fast one at a time.
type StructuralViolationError struct {
	// One diagnostic per offending call site or reference.
	Violations []*report.Diagnostic
}

func (sve *StructuralViolationError) Error() string {
	return fmt.Sprintf(
		"%d disallowed private-inline call site(s) survived lowering",
		len(sve.Violations),
	)
}

// MalformedDeclarationError reports inline declarations whose shape cannot be
// safely inlined.  Problems are collected per declaration and surfaced as one
// batch.
type MalformedDeclarationError struct {
	// One diagnostic per malformed declaration.
	Problems []*report.Diagnostic
}

func (mde *MalformedDeclarationError) Error() string {
	return fmt.Sprintf("%d malformed inline declaration(s)", len(mde.Problems))
}
