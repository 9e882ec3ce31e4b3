package renderer

import "errors"

var (
	ErrNoTracers        = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
	ErrMissingResult    = errors.New("renderer: tracer exited without delivering its samples")
	ErrFrameSize        = errors.New("renderer: accumulation buffer does not match frame size")
	ErrDuplicateTracer  = errors.New("renderer: tracer ids must be unique")
)
