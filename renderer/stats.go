package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The samples per pixel assigned to the tracer and the percentage of
	// the frame samples they represent.
	SamplesPerPixel uint32
	SamplePercent   float32

	// Render time for assigned samples
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Total samples per pixel accumulated into the frame.
	SamplesPerPixel uint32

	// Total render time for entire frame.
	RenderTime time.Duration
}
