// Package mangle provides stable, platform-independent names for
// declarations.  The lowering pipeline consumes the provider as an injected
// capability: different serialization targets compute names differently, so
// nothing in the pipeline may hard-wire a particular scheme.
package mangle

import (
	"strings"

	"kotc/ir"
)

// Provider computes a stable name for a declaration.  Stable names identify
// non-private inline declarations across separately-compiled modules and are
// attached to validator reports so violations can be matched to declarations
// after serialization.
type Provider interface {
	// StableName returns the stable name of the declaration.  The result
	// must be identical across repeated runs on identical input.
	StableName(d ir.Decl) string
}

// PathProvider is the default provider: it names a declaration by its dotted
// declaration path from the module root.
type PathProvider struct {
	// ModuleName is prefixed to every name.  May be empty for single-module
	// runs.
	ModuleName string
}

func (pp PathProvider) StableName(d ir.Decl) string {
	var parts []string

	parts = append(parts, d.Name())
	for s := d.Parent(); s != nil; s = s.EnclosingScope() {
		if cd, ok := s.(*ir.ClassDecl); ok {
			parts = append(parts, cd.Name())
		}
	}

	if pp.ModuleName != "" {
		parts = append(parts, pp.ModuleName)
	}

	// parts were collected innermost-first
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, ".")
}
