package medreport

import (
	"errors"
	"fmt"
)

// Sentinel errors for report generation failure conditions.
var (
	// ErrNoCase is returned when a render is requested with a nil Case.
	// This is the only fatal input condition: with no case data there is
	// nothing to lay out. Every other missing or malformed field resolves
	// to a placeholder inside the formatting and narrative layers.
	ErrNoCase = errors.New("medreport: no case data")

	// ErrOutput is returned when the finished document cannot be encoded.
	ErrOutput = errors.New("medreport: writing document output")
)

// RenderError reports a failure during a specific rendering operation.
// It wraps an underlying error and includes the operation name for context.
type RenderError struct {
	Op  string // operation name, e.g. "Generate", "Output"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("medreport.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("medreport.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a RenderError wrapping err with operation context.
func NewRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
