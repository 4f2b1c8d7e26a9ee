// Package serial defines the boundary to the serializer collaborator that
// consumes fully-lowered modules.  The serialization format itself lives
// outside this repository.
package serial

import "kotc/ir"

// Serializer writes a lowered module to its portable, platform-independent
// form.  Implementations must only ever be handed modules whose pipeline run
// reported success: a partially-lowered module never reaches serialization.
type Serializer interface {
	Serialize(mod *ir.Module) error
}
