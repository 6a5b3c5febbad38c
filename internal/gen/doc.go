// Package gen provides deterministic code projections of a characteristics
// schema.
//
// Each named Operation selects one Projection and the source file it is
// spliced into. Projections are rendered with text/template and are
// byte-identical for the same schema and options.
//
// Projections:
//   - Enum constants, one comment line per group
//   - Accessor declarations
//   - Accessor definitions that fetch through the generic process() lookup
//   - Forwarding accessors on the cached characteristic
//   - getType() and getName() switch arms
//   - XML loading statements, one guarded block per group
package gen
