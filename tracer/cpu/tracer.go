package cpu

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lseper/raytracer/log"
	"github.com/lseper/raytracer/scene"
	"github.com/lseper/raytracer/scene/compiler"
	"github.com/lseper/raytracer/tracer"
	"github.com/lseper/raytracer/types"
)

// The acceleration structure used by a cpu tracer for hit tests.
type Accel uint8

const (
	AccelBVH Accel = iota
	AccelList
)

func (a Accel) String() string {
	switch a {
	case AccelList:
		return "list"
	default:
		return "bvh"
	}
}

// Parse an acceleration structure name.
func ParseAccel(name string) (Accel, error) {
	switch name {
	case "bvh", "":
		return AccelBVH, nil
	case "list":
		return AccelList, nil
	}
	return AccelBVH, fmt.Errorf("cpu: unknown acceleration structure %q", name)
}

type cpuTracer struct {
	logger log.Logger

	sync.Mutex

	// The tracer id.
	id string

	// The acceleration structure to build in Setup.
	accel Accel

	// Seed for the random source used by the BVH builder.
	bvhSeed int64

	// A private copy of the scene camera.
	camera scene.Camera

	// The tracer's private copy of the scene objects and the structure
	// used for hit tests.
	objects *scene.ObjectList
	world   Hitter

	// Statistics for last rendered frame.
	stats *tracer.Stats
}

// Create a new cpu tracer. Each tracer is single-threaded; parallelism is
// achieved by running several tracers side by side.
func NewTracer(id string, accel Accel, bvhSeed int64) tracer.Tracer {
	return &cpuTracer{
		logger:  log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:      id,
		accel:   accel,
		bvhSeed: bvhSeed,
		stats:   &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Estimate the tracer speed from the host clock speed in GHz. All cpu
// tracers on a host share the same estimate; if the host cannot be queried
// the baseline speed of 1 is reported.
func (tr *cpuTracer) SpeedEstimate() float32 {
	info, err := GetHostInfo()
	if err != nil || info.ClockGHz <= 0 {
		return 1.0
	}
	return float32(info.ClockGHz)
}

// Copy the scene camera and objects and build the acceleration structure.
// The copies are never shared with other tracers.
func (tr *cpuTracer) Setup(sc *scene.Scene) error {
	if sc.Camera == nil {
		return scene.ErrNoCamera
	}

	tr.Lock()
	defer tr.Unlock()

	tr.camera = *sc.Camera
	tr.objects = sc.ObjectList().Clone()

	switch tr.accel {
	case AccelList:
		tr.world = tr.objects
	default:
		tr.world = compiler.BuildBVH(tr.objects.Objects, rand.New(rand.NewSource(tr.bvhSeed)))
	}

	tr.logger.Debugf("setup complete; %d objects, accel: %s", len(tr.objects.Objects), tr.accel)
	return nil
}

// Trace all pixels of the frame with the requested number of samples.
//
// Rows are traced from the top of the image down. A progress event is
// emitted after each row and the context is checked between rows. A panic
// while tracing a row is converted into a *tracer.TraceError.
func (tr *cpuTracer) Trace(ctx context.Context, req tracer.SampleRequest) error {
	tr.Lock()
	defer tr.Unlock()

	if tr.world == nil {
		return tracer.ErrNotSetup
	}
	if req.FrameW == 0 || req.FrameH == 0 || req.SamplesPerPixel == 0 {
		return tracer.ErrInvalidRequest
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(req.Seed))
	camera := tr.camera
	camera.SetupProjection(float32(req.FrameW) / float32(req.FrameH))

	accum := make([]types.Vec3, int(req.FrameW)*int(req.FrameH))
	for row := int(req.FrameH) - 1; row >= 0; row-- {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := tr.traceRow(&camera, rng, req, uint32(row), accum); err != nil {
			return err
		}

		select {
		case req.ProgressChan <- tracer.Progress{TracerID: tr.id, Row: uint32(row)}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	tr.stats.SamplesPerPixel = req.SamplesPerPixel
	tr.stats.RenderTime = time.Since(start)
	tr.logger.Debugf("traced %d spp in %d ms", req.SamplesPerPixel, tr.stats.RenderTime.Nanoseconds()/1e6)

	select {
	case req.ResultChan <- tracer.Result{TracerID: tr.id, Accum: accum, Samples: req.SamplesPerPixel}:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// Accumulate all samples for a single row into accum.
func (tr *cpuTracer) traceRow(camera *scene.Camera, rng *rand.Rand, req tracer.SampleRequest, row uint32, accum []types.Vec3) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &tracer.TraceError{TracerID: tr.id, Row: row, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	for col := uint32(0); col < req.FrameW; col++ {
		var color types.Vec3
		for sample := uint32(0); sample < req.SamplesPerPixel; sample++ {
			s := viewportCoord(col, rng.Float32(), req.FrameW)
			t := viewportCoord(row, rng.Float32(), req.FrameH)
			color = color.Add(RayColor(camera.Ray(s, t, rng), tr.world, req.MaxDepth, rng))
		}
		accum[pixelIndex(col, row, req.FrameW)] = color
	}
	return nil
}

// Map a jittered pixel coordinate to the viewport. Samples of pixel x cover
// [x/size, (x+1)/size) so the frame spans the viewport [0, 1).
func viewportCoord(pixel uint32, jitter float32, size uint32) float32 {
	return (float32(pixel) + jitter) / float32(size)
}

// Get the accumulation buffer offset of a pixel. The offset is computed with
// int arithmetic so it matches the frame buffer for frames with more than
// 2^32 pixels.
func pixelIndex(col, row, width uint32) int {
	return int(row)*int(width) + int(col)
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	tr.world = nil
	tr.objects = nil
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}
