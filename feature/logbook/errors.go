package logbook

import "fmt"

// NotFoundError indicates the requested log file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// UnsupportedFormatError indicates the file extension is not one of the
// recognized contest log formats.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// ValidationError indicates a Record could not be constructed from its input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// FormatError indicates a file-level structural problem, e.g. a Minos file
// without a stream element. The whole load is aborted.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// ParseError indicates the file content could not be parsed as well-formed
// input (e.g. malformed XML in a Minos file).
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse file: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyResultError indicates a file yielded zero qualifying records.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "no QSO records found in file"
}

// WriteError indicates an export failed due to an I/O error.
// The in-memory record store is left untouched.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
