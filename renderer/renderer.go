package renderer

import "context"

type Renderer interface {
	// Render frame. Render blocks until all tracers have delivered their
	// samples, the context is cancelled or a tracer fails.
	Render(ctx context.Context) error

	// Get the last rendered frame.
	Frame() *Frame

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
