package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lseper/raytracer/log"
	"github.com/lseper/raytracer/scene"
	"github.com/lseper/raytracer/tracer"
	"github.com/lseper/raytracer/tracer/cpu"
)

// The default renderer splits the sample budget between a pool of tracers,
// waits for all of them and merges their accumulation buffers into a frame.
type defaultRenderer struct {
	logger log.Logger

	options   Options
	scheduler tracer.SampleScheduler
	tracers   []tracer.Tracer

	frame *Frame
	stats FrameStats
}

// Create a new renderer backed by Options.NumTracers cpu tracers.
func NewDefault(sc *scene.Scene, scheduler tracer.SampleScheduler, opts Options) (Renderer, error) {
	if opts.NumTracers <= 0 {
		opts.NumTracers = runtime.NumCPU()
	}

	tracers := make([]tracer.Tracer, opts.NumTracers)
	for idx := range tracers {
		tracers[idx] = cpu.NewTracer(fmt.Sprintf("cpu-%d", idx), opts.Accel, opts.Seed+int64(idx))
	}

	return NewDefaultWithTracers(sc, tracers, scheduler, opts)
}

// Create a new renderer using the supplied tracers. Each tracer is set up
// with its own copy of the scene.
func NewDefaultWithTracers(sc *scene.Scene, tracers []tracer.Tracer, scheduler tracer.SampleScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if len(tracers) == 0 {
		return nil, ErrNoTracers
	}

	// Results are matched to tracers by id.
	seenIds := make(map[string]struct{}, len(tracers))
	for _, tr := range tracers {
		if _, dup := seenIds[tr.Id()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTracer, tr.Id())
		}
		seenIds[tr.Id()] = struct{}{}
	}
	if opts.FrameW == 0 {
		opts.FrameW = uint32(sc.ImageWidth)
	}
	if opts.FrameH == 0 {
		opts.FrameH = uint32(sc.ImageHeight)
	}
	if opts.SamplesPerPixel == 0 {
		opts.SamplesPerPixel = uint32(sc.SamplesPerPixel)
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = uint32(sc.MaxDepth)
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = scene.DefaultMaxDepth
	}
	if opts.FrameW == 0 || opts.FrameH == 0 || opts.SamplesPerPixel == 0 {
		return nil, tracer.ErrInvalidRequest
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		options:   opts,
		scheduler: scheduler,
		tracers:   tracers,
	}

	for _, tr := range tracers {
		if err := tr.Setup(sc); err != nil {
			r.Close()
			return nil, fmt.Errorf("renderer: tracer %s setup failed: %w", tr.Id(), err)
		}
	}

	r.logger.Infof("using %d tracers for a %dx%d frame at %d spp", len(tracers), opts.FrameW, opts.FrameH, opts.SamplesPerPixel)
	return r, nil
}

// Render frame.
//
// Every tracer renders the complete frame with its share of the samples.
// The renderer consumes scanline progress events while the tracers run,
// collects one accumulation buffer per tracer and only merges them after all
// tracers have finished. The first tracer error cancels the remaining
// tracers and is returned.
func (r *defaultRenderer) Render(ctx context.Context) error {
	start := time.Now()

	numTracers := len(r.tracers)
	frameH := int(r.options.FrameH)
	assignment := r.scheduler.Schedule(r.tracers, r.options.SamplesPerPixel)

	// Both channels are large enough to hold every message the tracers can
	// send so a tracer never blocks on a renderer that stopped listening.
	progressChan := make(chan tracer.Progress, numTracers*frameH)
	resultChan := make(chan tracer.Result, numTracers)

	group, groupCtx := errgroup.WithContext(ctx)
	for idx, tr := range r.tracers {
		tr := tr
		req := tracer.SampleRequest{
			FrameW:          r.options.FrameW,
			FrameH:          r.options.FrameH,
			SamplesPerPixel: assignment[idx],
			MaxDepth:        r.options.MaxDepth,
			Seed:            r.options.Seed + int64(idx),
			ProgressChan:    progressChan,
			ResultChan:      resultChan,
		}
		group.Go(func() error {
			return tr.Trace(groupCtx, req)
		})
	}

	doneChan := make(chan error, 1)
	go func() {
		doneChan <- group.Wait()
	}()

	// Results are merged in tracer order so the frame does not depend on
	// the order in which tracers finish.
	tracerIndex := make(map[string]int, numTracers)
	for idx, tr := range r.tracers {
		tracerIndex[tr.Id()] = idx
	}
	results := make([]*tracer.Result, numTracers)
	onResult := func(res tracer.Result) {
		if idx, ok := tracerIndex[res.TracerID]; ok {
			results[idx] = &res
		}
	}

	rowReports := make([]int, frameH)
	completedRows := 0
	onProgress := func(p tracer.Progress) {
		rowReports[p.Row]++
		if rowReports[p.Row] != numTracers {
			return
		}
		completedRows++
		r.logger.Debugf("scanlines remaining: %d", frameH-completedRows)
		if r.options.Progress != nil {
			r.options.Progress(completedRows, frameH)
		}
	}

	var err error
waitLoop:
	for {
		select {
		case p := <-progressChan:
			onProgress(p)
		case res := <-resultChan:
			onResult(res)
		case err = <-doneChan:
			break waitLoop
		}
	}

	// All tracers have exited; drain any buffered messages.
drainLoop:
	for {
		select {
		case p := <-progressChan:
			onProgress(p)
		case res := <-resultChan:
			onResult(res)
		default:
			break drainLoop
		}
	}

	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return ErrInterrupted
		}
		r.logger.Errorf("render failed: %v", err)
		return err
	}
	frame := NewFrame(int(r.options.FrameW), int(r.options.FrameH))
	for _, res := range results {
		if res == nil {
			return ErrMissingResult
		}
		if err = frame.Add(res.Accum, res.Samples); err != nil {
			return fmt.Errorf("renderer: tracer %s: %w", res.TracerID, err)
		}
	}
	r.frame = frame
	r.updateStats(assignment, time.Since(start))
	return nil
}

func (r *defaultRenderer) updateStats(assignment []uint32, renderTime time.Duration) {
	var total uint32
	for _, spp := range assignment {
		total += spp
	}

	r.stats = FrameStats{
		Tracers:         make([]TracerStat, len(r.tracers)),
		SamplesPerPixel: total,
		RenderTime:      renderTime,
	}
	for idx, tr := range r.tracers {
		r.stats.Tracers[idx] = TracerStat{
			Id:              tr.Id(),
			SamplesPerPixel: assignment[idx],
			SamplePercent:   100.0 * float32(assignment[idx]) / float32(total),
			RenderTime:      tr.Stats().RenderTime,
		}
	}
}

// Get the last rendered frame.
func (r *defaultRenderer) Frame() *Frame {
	return r.frame
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}
