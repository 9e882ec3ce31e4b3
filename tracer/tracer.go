package tracer

import (
	"context"
	"time"

	"github.com/lseper/raytracer/scene"
	"github.com/lseper/raytracer/types"
)

// A unit of work that is processed by a tracer. Every tracer renders all
// pixels of the frame using its own share of the sample budget.
type SampleRequest struct {
	// Frame dimensions.
	FrameW uint32
	FrameH uint32

	// The number of rays traced per pixel by this tracer.
	SamplesPerPixel uint32

	// The maximum number of hit tests along a single path.
	MaxDepth uint32

	// A seed value for the tracer's random number generator.
	Seed int64

	// A channel for reporting completed scanlines.
	ProgressChan chan<- Progress

	// A channel for delivering the tracer accumulation buffer once all
	// samples have been traced.
	ResultChan chan<- Result
}

// A scanline completion event.
type Progress struct {
	TracerID string
	Row      uint32
}

// The output of a tracer: the sum of all radiance samples per pixel. Row 0
// of Accum is the bottom row of the image.
type Result struct {
	TracerID string
	Accum    []types.Vec3
	Samples  uint32
}

// Tracer statistics.
type Stats struct {
	// The number of samples per pixel traced for the last frame.
	SamplesPerPixel uint32

	// The time for rendering the last frame.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracers computation speed estimate compared to a
	// baseline (single cpu core) implementation.
	SpeedEstimate() float32

	// Setup the tracer with a private copy of the scene objects.
	Setup(sc *scene.Scene) error

	// Trace the requested samples. Trace blocks until the result has been
	// delivered on the request ResultChan, the context is cancelled or an
	// error occurs.
	Trace(ctx context.Context, req SampleRequest) error

	// Shutdown and cleanup tracer.
	Close()

	// Retrieve last frame statistics.
	Stats() *Stats
}
