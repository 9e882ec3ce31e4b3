package renderer

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/lseper/raytracer/scene"
	"github.com/lseper/raytracer/tracer"
	"github.com/lseper/raytracer/tracer/cpu"
	"github.com/lseper/raytracer/types"
)

func testScene(t *testing.T) *scene.Scene {
	sc := scene.DefaultScene()
	sc.ImageWidth, sc.ImageHeight = 16, 12
	sc.SamplesPerPixel = 16
	sc.AddPrimitive(scene.NewSphere(types.Vec3{0, -100.5, -1}, 100, scene.NewLambertian(types.Vec3{0.8, 0.8, 0})))
	if err := sc.Validate(); err != nil {
		t.Fatal(err)
	}
	return sc
}

// Average radiance per channel over all pixels and samples.
func meanRadiance(accum []types.Vec3, samples uint32) types.Vec3 {
	var sum types.Vec3
	for _, c := range accum {
		sum = sum.Add(c)
	}
	return sum.Mul(1.0 / float32(len(accum)*int(samples)))
}

// Render the scene on the calling goroutine without any tracer machinery.
func renderBaseline(sc *scene.Scene, spp int, seed int64) []types.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	world := sc.ObjectList()
	camera := *sc.Camera
	camera.SetupProjection(float32(sc.ImageWidth) / float32(sc.ImageHeight))

	accum := make([]types.Vec3, sc.ImageWidth*sc.ImageHeight)
	for y := 0; y < sc.ImageHeight; y++ {
		for x := 0; x < sc.ImageWidth; x++ {
			for s := 0; s < spp; s++ {
				u := (float32(x) + rng.Float32()) / float32(sc.ImageWidth)
				v := (float32(y) + rng.Float32()) / float32(sc.ImageHeight)
				ray := camera.Ray(u, v, rng)
				accum[y*sc.ImageWidth+x] = accum[y*sc.ImageWidth+x].Add(cpu.RayColor(ray, world, uint32(sc.MaxDepth), rng))
			}
		}
	}
	return accum
}

func TestSingleTracerMatchesBaseline(t *testing.T) {
	sc := testScene(t)

	r, err := NewDefault(sc, tracer.NewEvenScheduler(), Options{NumTracers: 1, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}
	frame := r.Frame()
	if frame.Samples() != 16 {
		t.Fatalf("expected 16 samples; got %d", frame.Samples())
	}

	got := meanRadiance(frame.accum, frame.Samples())
	exp := meanRadiance(renderBaseline(sc, 16, 99), 16)
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-exp[i])) > 0.05 {
			t.Fatalf("expected mean radiance %v to match baseline %v", got, exp)
		}
	}
}

func TestMultipleTracers(t *testing.T) {
	sc := testScene(t)

	var progressCalls, lastDone int
	opts := Options{
		NumTracers:      3,
		SamplesPerPixel: 10,
		Seed:            5,
		Accel:           cpu.AccelList,
		Progress: func(done, total int) {
			progressCalls++
			lastDone = done
			if total != sc.ImageHeight {
				t.Errorf("expected progress total %d; got %d", sc.ImageHeight, total)
			}
		},
	}
	r, err := NewDefault(sc, tracer.NewEvenScheduler(), opts)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err = r.Render(context.Background()); err != nil {
		t.Fatal(err)
	}

	// round(10/3) = 3 samples per tracer
	if got := r.Frame().Samples(); got != 9 {
		t.Fatalf("expected frame to accumulate 9 samples; got %d", got)
	}
	if progressCalls != sc.ImageHeight || lastDone != sc.ImageHeight {
		t.Fatalf("expected %d progress calls ending at %d; got %d ending at %d", sc.ImageHeight, sc.ImageHeight, progressCalls, lastDone)
	}

	stats := r.Stats()
	if len(stats.Tracers) != 3 || stats.SamplesPerPixel != 9 {
		t.Fatalf("expected stats for 3 tracers and 9 spp; got %+v", stats)
	}
	for _, st := range stats.Tracers {
		if st.SamplesPerPixel != 3 {
			t.Fatalf("expected tracer %s to render 3 spp; got %d", st.Id, st.SamplesPerPixel)
		}
	}
}

func TestRenderIsReproducible(t *testing.T) {
	sc := testScene(t)

	var frames [2]*Frame
	for i := range frames {
		r, err := NewDefault(sc, tracer.NewEvenScheduler(), Options{NumTracers: 2, SamplesPerPixel: 4, Seed: 3})
		if err != nil {
			t.Fatal(err)
		}
		if err = r.Render(context.Background()); err != nil {
			t.Fatal(err)
		}
		frames[i] = r.Frame()
		r.Close()
	}

	for idx := range frames[0].accum {
		if frames[0].accum[idx] != frames[1].accum[idx] {
			t.Fatalf("expected identical frames for a fixed seed and tracer count; pixel %d differs", idx)
		}
	}
}

// A tracer that reports a single row and then misbehaves.
type faultyTracer struct {
	id      string
	err     error
	noSend  bool
	blockOn bool
	stats   tracer.Stats
}

func (ft *faultyTracer) Id() string {
	return ft.id
}

func (ft *faultyTracer) SpeedEstimate() float32 {
	return 1
}

func (ft *faultyTracer) Setup(_ *scene.Scene) error {
	return nil
}

func (ft *faultyTracer) Close() {
}

func (ft *faultyTracer) Stats() *tracer.Stats {
	return &ft.stats
}

func (ft *faultyTracer) Trace(ctx context.Context, req tracer.SampleRequest) error {
	req.ProgressChan <- tracer.Progress{TracerID: ft.id, Row: req.FrameH - 1}
	if ft.blockOn {
		<-ctx.Done()
		return ctx.Err()
	}
	if ft.err != nil {
		return ft.err
	}
	if ft.noSend {
		return nil
	}
	req.ResultChan <- tracer.Result{TracerID: ft.id, Accum: make([]types.Vec3, req.FrameW*req.FrameH), Samples: req.SamplesPerPixel}
	return nil
}

func TestRenderSurfacesFirstError(t *testing.T) {
	sc := testScene(t)
	expErr := &tracer.TraceError{TracerID: "bad", Row: 4, Err: errors.New("boom")}
	tracers := []tracer.Tracer{
		&faultyTracer{id: "blocked", blockOn: true},
		&faultyTracer{id: "bad", err: expErr},
		cpu.NewTracer("cpu-0", cpu.AccelBVH, 1),
	}

	r, err := NewDefaultWithTracers(sc, tracers, tracer.NewEvenScheduler(), Options{SamplesPerPixel: 3})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	err = r.Render(context.Background())
	var traceErr *tracer.TraceError
	if !errors.As(err, &traceErr) || traceErr.TracerID != "bad" {
		t.Fatalf("expected the error of tracer 'bad'; got %v", err)
	}
	if r.Frame() != nil {
		t.Fatal("expected no frame after a failed render")
	}
}

func TestRenderMissingResult(t *testing.T) {
	sc := testScene(t)
	tracers := []tracer.Tracer{
		&faultyTracer{id: "ok"},
		&faultyTracer{id: "lazy", noSend: true},
	}

	r, err := NewDefaultWithTracers(sc, tracers, tracer.NewEvenScheduler(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Render(context.Background()); err != ErrMissingResult {
		t.Fatalf("expected ErrMissingResult; got %v", err)
	}
}

func TestRenderInterrupted(t *testing.T) {
	sc := testScene(t)
	tracers := []tracer.Tracer{&faultyTracer{id: "blocked", blockOn: true}}

	r, err := NewDefaultWithTracers(sc, tracers, tracer.NewEvenScheduler(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err = r.Render(ctx); err != ErrInterrupted {
		t.Fatalf("expected ErrInterrupted; got %v", err)
	}
}

func TestNewDefaultErrors(t *testing.T) {
	sc := testScene(t)
	tracers := []tracer.Tracer{&faultyTracer{id: "ok"}}

	if _, err := NewDefaultWithTracers(nil, tracers, tracer.NewEvenScheduler(), Options{}); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}
	if _, err := NewDefaultWithTracers(sc, nil, tracer.NewEvenScheduler(), Options{}); err != ErrNoTracers {
		t.Fatalf("expected ErrNoTracers; got %v", err)
	}

	noCamera := *sc
	noCamera.Camera = nil
	if _, err := NewDefaultWithTracers(&noCamera, tracers, tracer.NewEvenScheduler(), Options{}); err != ErrCameraNotDefined {
		t.Fatalf("expected ErrCameraNotDefined; got %v", err)
	}

	dupTracers := []tracer.Tracer{&faultyTracer{id: "cpu-0"}, &faultyTracer{id: "cpu-1"}, &faultyTracer{id: "cpu-0"}}
	if _, err := NewDefaultWithTracers(sc, dupTracers, tracer.NewEvenScheduler(), Options{}); !errors.Is(err, ErrDuplicateTracer) {
		t.Fatalf("expected ErrDuplicateTracer; got %v", err)
	}
}
