// Package update runs a plan: it renders every operation of each target
// file, splices the results into the file and writes it back once.
//
// Files are processed sequentially. A failure in one file is recorded in its
// Result and does not stop the remaining files. In check mode nothing is
// written and stale files carry a unified diff instead.
package update
