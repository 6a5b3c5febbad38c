package splice

import (
	"errors"
	"fmt"
	"strings"

	"kartgen/internal/gen"
)

var (
	// ErrMarkerNotFound is returned when a start or end marker is missing.
	ErrMarkerNotFound = errors.New("marker not found")
	// ErrDuplicateMarker is returned when a marker occurs more than once.
	ErrDuplicateMarker = errors.New("duplicate marker")
	// ErrMarkerOrder is returned when the end marker is not on a line after
	// the start marker.
	ErrMarkerOrder = errors.New("end marker must be on a line after the start marker")
)

// MarkerError describes a marker problem for one operation.
type MarkerError struct {
	Op     gen.Operation
	Marker string
	// Path is the file being spliced, if known.
	Path string
	Err  error
}

func (e *MarkerError) Error() string {
	msg := fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Marker)
	if e.Path != "" {
		return e.Path + ": " + msg
	}

	return msg
}

func (e *MarkerError) Unwrap() error {
	return e.Err
}

// Markers returns the start and end markers of op.
func Markers(op gen.Operation) (start, end string) {
	return "<characteristics-start " + op.String() + ">", "<characteristics-end " + op.String() + ">"
}

// Edit is the generated text for one operation's region.
type Edit struct {
	Op   gen.Operation
	Text string
}

// Splice replaces the region of op in text with replacement.
func Splice(text string, op gen.Operation, replacement string) (string, error) {
	start, end := Markers(op)

	si, err := find(text, op, start)
	if err != nil {
		return "", err
	}

	ei, err := find(text, op, end)
	if err != nil {
		return "", err
	}

	// The region starts after the start marker's line and stops at the
	// beginning of the end marker's line.
	nl := strings.IndexByte(text[si:], '\n')
	if nl == -1 || ei < si {
		return "", &MarkerError{Op: op, Marker: end, Err: ErrMarkerOrder}
	}

	regionStart := si + nl + 1
	regionEnd := strings.LastIndexByte(text[:ei], '\n') + 1

	if regionEnd < regionStart {
		return "", &MarkerError{Op: op, Marker: end, Err: ErrMarkerOrder}
	}

	newline := "\n"
	if strings.HasSuffix(text[:regionStart], "\r\n") {
		newline = "\r\n"
	}

	var b strings.Builder

	b.Grow(len(text) + len(replacement))
	b.WriteString(text[:regionStart])

	if body := strings.TrimRight(replacement, "\r\n"); body != "" {
		b.WriteString(strings.ReplaceAll(body, "\n", newline))
		b.WriteString(newline)
	}

	b.WriteString(text[regionEnd:])

	return b.String(), nil
}

// find returns the offset of the only occurrence of marker in text.
func find(text string, op gen.Operation, marker string) (int, error) {
	i := strings.Index(text, marker)
	if i == -1 {
		return -1, &MarkerError{Op: op, Marker: marker, Err: ErrMarkerNotFound}
	}

	if strings.Contains(text[i+len(marker):], marker) {
		return -1, &MarkerError{Op: op, Marker: marker, Err: ErrDuplicateMarker}
	}

	return i, nil
}

// Apply splices every edit into text in order. It stops at the first
// marker problem.
func Apply(text string, edits []Edit) (string, error) {
	out := text

	for _, e := range edits {
		var err error

		out, err = Splice(out, e.Op, e.Text)
		if err != nil {
			return "", err
		}
	}

	return out, nil
}
