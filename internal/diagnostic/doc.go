// Package diagnostic provides structured warnings and errors reported while
// parsing and validating a characteristics schema.
//
// Key capabilities:
//   - Recoverable syntax warnings (ignored type annotations, empty members)
//   - Identifier collision errors
//   - "Did you mean" suggestions
package diagnostic
