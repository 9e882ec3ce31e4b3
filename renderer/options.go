package renderer

import "github.com/lseper/raytracer/tracer/cpu"

// A callback for reporting render progress as the number of fully
// completed scanlines out of the frame height.
type ProgressFunc func(done, total int)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples per pixel, split between all tracers.
	SamplesPerPixel uint32

	// Maximum number of hit tests along a single path.
	MaxDepth uint32

	// Number of cpu tracers. Defaults to the number of cpus.
	NumTracers int

	// Base seed; tracer i uses Seed+i.
	Seed int64

	// Acceleration structure used by the tracers.
	Accel cpu.Accel

	// Optional progress callback. It is invoked from the goroutine that
	// called Render.
	Progress ProgressFunc
}
