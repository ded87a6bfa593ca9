package clippings

import (
	"fmt"
	"os"
)

// MalformedRecordError indicates the scanner lost synchronization with
// record boundaries (e.g. a record whose title line is the delimiter
// itself, or a highlight with no quoted text). It aborts the whole run;
// a corrupted mid-scan state cannot be trusted to resume correctly.
type MalformedRecordError struct {
	Offset int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed clipping record at offset %d: %s", e.Offset, e.Reason)
}

// MissingSourceError indicates the configured clippings file does not
// exist or cannot be read.
type MissingSourceError struct {
	Path string
	Err  error
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("clippings file %s: %v", e.Path, e.Err)
}

func (e *MissingSourceError) Unwrap() error {
	return e.Err
}

// Open opens a clippings file, wrapping any failure in a
// MissingSourceError so callers can tell a missing source apart from a
// parse failure. The check happens before any parsing begins.
func Open(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &MissingSourceError{Path: path, Err: err}
	}
	return file, nil
}
