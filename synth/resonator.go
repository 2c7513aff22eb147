package synth

import "math"

// Resonator is a two-pole digital resonator implementing the difference
// equation y[n] = a*x[n] + b*y[n-1] + c*y[n-2].
type Resonator struct {
	a, b, c float64
	p1, p2  float64
}

// Step advances the resonator by one sample.
func (r *Resonator) Step(input float64) float64 {
	x := r.a*input + r.b*r.p1 + r.c*r.p2
	r.p2 = r.p1
	r.p1 = x
	return x
}

// SetABC converts a center frequency and bandwidth in Hz into difference
// equation coefficients for the given sample rate.
func (r *Resonator) SetABC(f, bw, minusPiT, twoPiT float64) {
	rr := math.Exp(minusPiT * bw)
	r.c = -(rr * rr)
	r.b = rr * math.Cos(twoPiT*f) * 2
	r.a = 1 - r.b - r.c
}

// SetABCG sets coefficients and folds a linear gain into the input
// coefficient, for parallel-branch resonators.
func (r *Resonator) SetABCG(f, bw, minusPiT, twoPiT, gain float64) {
	r.SetABC(f, bw, minusPiT, twoPiT)
	r.a *= gain
}
