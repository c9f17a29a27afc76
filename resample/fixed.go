// Package resample implements a streaming, memory-frugal separable Catmull-Rom
// image resampler.
//
// It decodes into two one-dimensional passes composed by a row-streaming
// coordinator: a horizontal scaler (xscale) that resamples one input row at a
// time, and a vertical coordinator (YScaler) that drives a small ring buffer
// of horizontally-scaled rows and emits one output row at a time. Only a
// sliding window of input rows is ever resident, so arbitrarily tall images
// can be resized with bounded memory.
//
// Arithmetic is fixed-point throughout, tuned against a floating-point
// reference implementation, so that output bytes are reproducible across
// platforms and compilers.
package resample

// Fix1_30 is a signed fixed-point type with 1 integer bit and 30 fractional
// bits, range [-2, 2). It is used to store kernel coefficients.
type Fix1_30 int32

// oneFix1_30 represents 1.0 in Fix1_30 format.
const oneFix1_30 Fix1_30 = 1 << 30

// fix33_30 is a signed 64-bit fixed-point type with 33 integer bits and 30
// fractional bits. It accumulates sums of (coefficient * byte) products
// without overflow.
type fix33_30 int64

// topoff is added to a fix33_30 value before truncation to bump up rounding
// errors. This value was chosen by comparing against a floating-point
// reference implementation and minimizing deviation; implementations must use
// exactly this constant to reproduce reference output bit-for-bit.
const topoff fix33_30 = 8192

// clamp rounds and clamps a fix33_30 accumulator to a byte in [0, 255].
func clamp(x fix33_30) uint8 {
	if x < 0 {
		return 0
	}

	// Add 0.5 and the rounding bias before truncating.
	x += (1 << 29) + topoff

	// Safe because of the < 0 check above; a sample can't end up over 512.
	if x&(1<<38) != 0 {
		return 255
	}

	return uint8(x >> 30)
}

// fToFix1_30 converts a floating-point weight to Fix1_30 format.
func fToFix1_30(x float32) Fix1_30 {
	return Fix1_30(x * float32(oneFix1_30))
}
