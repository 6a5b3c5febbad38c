// Package naming derives the identifiers used by generated code from the
// raw group and member names written in a characteristics schema.
//
// Names are decomposed into words at case boundaries and recomposed into
// one of several forms:
//
//   - Camel:      "Engine" + "maxSpeed"  -> "EngineMaxSpeed"
//   - Underscore: "Engine" + "maxSpeed"  -> "engine_max_speed"
//   - Constant:   "Engine" + "maxSpeed"  -> "ENGINE_MAX_SPEED"
//   - Hyphen:     "maxSpeed"             -> "max-speed"
//
// Acronym runs stay together, so "travelCM" splits into "travel" and "CM".
package naming
