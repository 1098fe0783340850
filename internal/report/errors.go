package report

import "fmt"

// WriteError reports a report file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

// NewWriteError wraps cause for the report at path.
func NewWriteError(path string, cause error) *WriteError {
	return &WriteError{Path: path, Err: cause}
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
