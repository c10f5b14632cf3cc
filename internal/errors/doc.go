// Package errors provides structured errors for the dungeon core.
//
// Every error carries a Code, a message, an optional cause and optional
// metadata. Codes are chosen by the component that detects the failure:
// malformed level data and unknown archetypes are InvalidArgument, missing
// levels and saves are NotFound, undecodable saves are DataLoss and store
// failures are Internal or Unavailable.
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("unknown enemy type %q", name)
//
// Wrapping keeps the original code:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load save")
//	}
//
// Level validation accumulates problems per field:
//
//	vb := errors.NewValidationBuilder()
//	if data.Number < 1 {
//	    vb.InvalidField("number", "must be at least 1")
//	}
//	return vb.Build()
//
// Callers that can continue from default state check IsRecoverable, which is
// true for NotFound and DataLoss.
package errors
