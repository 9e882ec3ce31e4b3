package types

import "math"

// Interval is a closed scalar range along the ray parameter or along a
// single spatial axis. An interval with Max <= Min is empty.
type Interval struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

// Create an interval that starts at min and extends to +Inf.
func IntervalFrom(min float32) Interval {
	return Interval{Min: min, Max: float32(math.Inf(1))}
}

// Returns true if the interval does not contain any value.
func (i Interval) Empty() bool {
	return i.Max <= i.Min
}

// Returns true if t lies inside the closed interval.
func (i Interval) Contains(t float32) bool {
	return i.Min <= t && t <= i.Max
}

// Narrow the interval to its intersection with [lo, hi].
func (i Interval) Narrow(lo, hi float32) Interval {
	if lo > i.Min {
		i.Min = lo
	}
	if hi < i.Max {
		i.Max = hi
	}
	return i
}

// Get the interval length.
func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// Create the smallest interval enclosing both a and b.
func UnionInterval(a, b Interval) Interval {
	out := a
	if b.Min < out.Min {
		out.Min = b.Min
	}
	if b.Max > out.Max {
		out.Max = b.Max
	}
	return out
}
