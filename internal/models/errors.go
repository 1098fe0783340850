package models

import "fmt"

// ParseError reports input that could not be read as its expected format.
type ParseError struct {
	File    string `json:"file"`
	Line    int    `json:"line"` // 1-based; 0 when the error is not tied to a line
	Content string `json:"content,omitempty"`
	Reason  string `json:"reason"`
	Err     error  `json:"-"`
}

// NewParseError creates a ParseError for a line of file.
func NewParseError(file string, line int, reason string, cause error) *ParseError {
	return &ParseError{
		File:   file,
		Line:   line,
		Reason: reason,
		Err:    cause,
	}
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Line > 0 {
		msg = fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
	} else if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
