// Package errors provides coded errors for the skill planner.
//
// Every error carries a Code that maps onto a gRPC status code, a user-facing
// message, an optional cause and optional metadata. The allocation engine
// itself never returns errors: illegal allocations are silent no-ops. Errors
// come from the layers around it (catalog loading, build persistence and
// request validation).
//
// # Basic Usage
//
//	err := errors.NotFound("build not found")
//	err := errors.InvalidArgumentf("character level %d out of range", level)
//
// Adding metadata:
//
//	err := errors.NotFound("build not found").
//	    WithMeta("build_id", buildID)
//
// Wrapping keeps the code of a wrapped *Error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load build")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("archetype_id", input.ArchetypeID, vb)
//	errors.ValidateRange("character_level", input.CharacterLevel, base, 300, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer returns NotFound/AlreadyExists and wraps storage failures.
// Orchestrator layer validates inputs (InvalidArgument) and wraps repository
// and catalog errors with context. Handler layer converts with ToGRPCError.
package errors
