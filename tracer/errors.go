package tracer

import (
	"errors"
	"fmt"
)

var (
	ErrNotSetup       = errors.New("tracer: Setup must be called before Trace")
	ErrInvalidRequest = errors.New("tracer: frame dimensions and sample count must be positive")
)

// TraceError carries the tracer and the scanline that was being rendered
// when a failure occurred.
type TraceError struct {
	TracerID string
	Row      uint32
	Err      error
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("tracer %s: row %d: %s", e.TracerID, e.Row, e.Err)
}

func (e *TraceError) Unwrap() error {
	return e.Err
}
