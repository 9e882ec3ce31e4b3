package tracer

import "math"

// The SampleScheduler interface is implemented by all sample partitioning
// algorithms.
type SampleScheduler interface {
	// Split the per-pixel sample budget between the pool of tracers.
	//
	// This function returns the number of samples per pixel assigned to
	// each tracer in the input list. Every tracer receives at least one
	// sample.
	Schedule(tracers []Tracer, totalSpp uint32) []uint32
}

// The even scheduler assigns round(totalSpp / N) samples to each of the N
// tracers. The assigned samples may not add up to totalSpp exactly; callers
// should normalize the merged result by the sum of the assignment.
type evenScheduler struct{}

// Create a new even scheduler instance.
func NewEvenScheduler() SampleScheduler {
	return evenScheduler{}
}

func (evenScheduler) Schedule(tracers []Tracer, totalSpp uint32) []uint32 {
	assignment := make([]uint32, len(tracers))
	if len(tracers) == 0 {
		return assignment
	}

	perTracer := uint32(math.Max(1.0, math.Round(float64(totalSpp)/float64(len(tracers)))))
	for idx := range assignment {
		assignment[idx] = perTracer
	}
	return assignment
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent frames is approximately the same and distributes exactly
// totalSpp samples according to each tracer's measured throughput. Every
// tracer receives at least one sample so budgets smaller than the number of
// tracers are rounded up to one sample per tracer.
type perfectScheduler struct {
	assignment []uint32
}

// Create a new perfect scheduler instance.
func NewPerfectScheduler() SampleScheduler {
	return &perfectScheduler{}
}

// Split the sample budget using feedback collected from previous frames.
//
// When previous frame information is available the scheduler uses the
// following formula for estimating the workload for tracer w and frame i+1:
// w_i, f_i+1 = (spp,w_i / time,w_i) / Σ(spp_i / time_i)
//
// The first call (or a call with a different number of tracers) distributes
// the samples according to each tracer's speed estimate.
func (sch *perfectScheduler) Schedule(tracers []Tracer, totalSpp uint32) []uint32 {
	if len(tracers) == 0 {
		return nil
	}

	weights := make([]float64, len(tracers))
	if len(sch.assignment) != len(tracers) {
		sch.assignment = make([]uint32, len(tracers))
		for idx, tr := range tracers {
			weights[idx] = float64(tr.SpeedEstimate())
		}
	} else {
		for idx, tr := range tracers {
			stats := tr.Stats()
			if stats.RenderTime <= 0 {
				weights[idx] = float64(tr.SpeedEstimate())
				continue
			}
			weights[idx] = float64(stats.SamplesPerPixel) / float64(stats.RenderTime)
		}
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return NewEvenScheduler().Schedule(tracers, totalSpp)
	}

	scaler := float64(totalSpp) / total
	var scheduled uint32
	for idx, w := range weights {
		sch.assignment[idx] = uint32(math.Max(1.0, math.Floor(w*scaler)))
		scheduled += sch.assignment[idx]
	}

	// In case samples don't add up to the budget append the missing ones to the first tracer
	if scheduled < totalSpp {
		sch.assignment[0] += totalSpp - scheduled
	}

	// Raising small shares to one sample may overshoot the budget; take the
	// excess off the largest shares.
	for scheduled > totalSpp {
		largest := 0
		for idx, spp := range sch.assignment {
			if spp > sch.assignment[largest] {
				largest = idx
			}
		}
		if sch.assignment[largest] <= 1 {
			break
		}
		excess := scheduled - totalSpp
		if spare := sch.assignment[largest] - 1; excess > spare {
			excess = spare
		}
		sch.assignment[largest] -= excess
		scheduled -= excess
	}

	out := make([]uint32, len(sch.assignment))
	copy(out, sch.assignment)
	return out
}
