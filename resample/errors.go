package resample

import "errors"

var (
	// ErrInvalidParameter is returned when a zero width, height, or
	// components-per-sample value is supplied to an operation that requires a
	// positive one.
	ErrInvalidParameter = errors.New("resample: invalid parameter")

	// ErrAllocation is returned when a requested buffer would exceed
	// MaxBufferBytes or overflow the arithmetic used to size it. Go's
	// allocator does not hand back a recoverable error on exhaustion the way
	// the reference C implementation's malloc does, so this guards the same
	// failure mode pre-flight instead.
	ErrAllocation = errors.New("resample: buffer too large to allocate")
)

// MaxBufferBytes bounds the padded scanline allocated by XScale and
// NewEngine, the coefficient scratch of XScalePadded, and the ring buffer
// storage allocated by NewScanlineRingBuffer. Requests that would exceed it
// fail fast with ErrAllocation instead of risking an unrecoverable
// out-of-memory condition deep inside a resize. ScaleImage, PreallocScale
// and StripScale allocate without checking it.
const MaxBufferBytes = 1 << 34
