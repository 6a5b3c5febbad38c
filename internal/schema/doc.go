// Package schema provides the characteristics schema model, its text
// grammar parser, validation and serialized dumps.
//
// The schema is the single source that every generated artifact is derived
// from. Changing it requires no code changes, only regeneration.
//
// # Grammar
//
// One group per line; blank lines and lines starting with "#" are ignored:
//
//	Suspension: stiffness, rest, expSpringResponse(bool)
//	Gear: switchRatio(std::vector<float>/floatVector)
//	Turn: radius(InterpolationArray)
//	Mass
//
// A member may carry a type annotation "(storage)" or
// "(storage/external)". Without one, both types are "float". A group line
// without a colon gets a single implicit member named "value", which
// contributes no words to the derived identifiers (Mass -> MASS).
//
// # Order
//
// Group and member order is significant: it fixes enum values and the
// order of every generated block.
//
// # Leniency
//
// Malformed annotations never abort parsing. An unmatched "(" means no
// annotation was given; the problem is reported as a warning. Identifier
// collisions are reported as errors by Validate.
package schema
