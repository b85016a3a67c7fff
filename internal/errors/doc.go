// Package errors provides structured error handling for the spellcast engine.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("spell not found")
//	err := errors.InvalidArgumentf("invalid mana cost: %d", cost)
//
// Adding metadata:
//
//	err := errors.NotFound("spell not found").
//	    WithMeta("spell", spellName).
//	    WithMeta("caster_id", casterID)
//
// Wrapping errors:
//
//	if err := repo.GetSpell(ctx, name); err != nil {
//	    return errors.Wrap(err, "failed to load spell definition")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.ConfigRepo == nil {
//	    vb.RequiredField("ConfigRepo")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant identifiers in metadata
//   - Wrap storage errors with context
//
// Rules/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
package errors
