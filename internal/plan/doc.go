// Package plan turns a list of operations into the set of target files a
// batch update has to touch.
//
// Pipeline:
//  1. Resolve operation names (the canonical list when none are given)
//  2. Resolve each operation's target, applying configured overrides
//  3. Group operations by target file, keeping first-appearance order
//  4. Emit diagnostics for unknown or repeated names
package plan
