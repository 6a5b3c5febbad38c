// Package splice replaces marker-delimited regions of source files with
// freshly generated text.
//
// A region is delimited by a start and an end marker embedded in source
// comments, keyed by the operation name:
//
//	/* <characteristics-start enum> */
//	... generated text ...
//	/* <characteristics-end enum> */
//
// Everything between the line holding the start marker and the line holding
// the end marker is replaced; the marker lines themselves are kept. The
// region may be empty. Splicing the same text twice gives the same file.
//
// A missing, duplicated or misplaced marker is an error, and no file is
// written when any region of it cannot be spliced.
package splice
