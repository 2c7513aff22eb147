// Package dsp holds small spectral analysis helpers used to verify
// synthesized audio.
package dsp

import (
	"math"
	"math/cmplx"
)

// FFT computes the radix-2 Cooley-Tukey FFT.
// Input length must be a power of 2.
func FFT(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		out := make([]complex128, n)
		copy(out, x)
		return out
	}

	// Bit-reversal permutation
	bits := 0
	for v := n; v > 1; v >>= 1 {
		bits++
	}
	result := make([]complex128, n)
	for i := 0; i < n; i++ {
		result[bitReverse(i, bits)] = x[i]
	}

	// Butterfly operations
	for size := 2; size <= n; size *= 2 {
		halfSize := size / 2
		w := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			wn := complex(1, 0)
			for k := 0; k < halfSize; k++ {
				u := result[start+k]
				t := wn * result[start+k+halfSize]
				result[start+k] = u + t
				result[start+k+halfSize] = u - t
				wn *= w
			}
		}
	}
	return result
}

func bitReverse(x, bits int) int {
	var result int
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}
	return result
}

// PowerSpectrum computes |FFT(x)|^2 / N for a real-valued frame.
// The frame is zero-padded to fftSize.
// Returns the first fftSize/2+1 bins (positive frequencies).
func PowerSpectrum(frame []float64, fftSize int) []float64 {
	x := make([]complex128, fftSize)
	for i := 0; i < len(frame) && i < fftSize; i++ {
		x[i] = complex(frame[i], 0)
	}

	X := FFT(x)

	nBins := fftSize/2 + 1
	power := make([]float64, nBins)
	fn := float64(fftSize)
	for i := 0; i < nBins; i++ {
		r := real(X[i])
		im := imag(X[i])
		power[i] = (r*r + im*im) / fn
	}
	return power
}

// DominantFreq returns the frequency in Hz of the strongest bin of a
// real-valued frame, searching bins between lo and hi Hz.
func DominantFreq(frame []float64, fftSize, sampleRate int, lo, hi float64) float64 {
	power := PowerSpectrum(frame, fftSize)
	binHz := float64(sampleRate) / float64(fftSize)
	best := -1
	for i := 1; i < len(power); i++ {
		f := float64(i) * binHz
		if f < lo || f > hi {
			continue
		}
		if best < 0 || power[i] > power[best] {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return float64(best) * binHz
}
