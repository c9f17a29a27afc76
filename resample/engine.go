package resample

// Engine is the full two-pass, row-streaming resizer: it composes the
// horizontal scaler and the vertical coordinator so a caller can feed one
// raw input row at a time and pull one fully resampled output row at a
// time, with only a small window of input rows ever resident.
//
// Engine is not safe for concurrent use; independent images should each get
// their own Engine.
type Engine struct {
	inWidth, outWidth uint32
	cmp               uint8
	ys                *YScaler
	padded            []byte
	offset            int
}

// NewEngine allocates an Engine for resizing an inWidth x inHeight image
// with cmp components per sample to outWidth x outHeight.
func NewEngine(inWidth, inHeight, outWidth, outHeight uint32, cmp uint8) (*Engine, error) {
	if inWidth == 0 || inHeight == 0 || outWidth == 0 || outHeight == 0 || cmp == 0 {
		return nil, ErrInvalidParameter
	}

	length, offset := PaddedScanlineSize(inWidth, outWidth, cmp)
	if length > MaxBufferBytes {
		return nil, ErrAllocation
	}

	ys, err := NewYScaler(inHeight, outHeight, int(outWidth)*int(cmp))
	if err != nil {
		return nil, err
	}

	return &Engine{
		inWidth:  inWidth,
		outWidth: outWidth,
		cmp:      cmp,
		ys:       ys,
		padded:   make([]byte, length),
		offset:   offset,
	}, nil
}

// NeedsInput reports whether PushRow must be called before ScaleOutput can
// produce the next output row.
func (e *Engine) NeedsInput() bool {
	return e.ys.NeedsInput()
}

// PushRow horizontally scales one raw input row (at least
// inWidth*cmp bytes, as passed to NewEngine) and feeds the result into the
// vertical ring buffer. Rows must be pushed in the same order they appear in
// the source image, and only while NeedsInput reports true; calling it
// otherwise indicates a protocol violation by the caller.
func (e *Engine) PushRow(row []byte) error {
	n := int(e.inWidth) * int(e.cmp)
	if len(row) < n {
		return ErrInvalidParameter
	}
	if !e.NeedsInput() {
		return ErrInvalidParameter
	}

	copy(e.padded[e.offset:e.offset+n], row[:n])
	PadExtendEdges(e.padded, e.inWidth, e.offset, e.cmp)

	slot := e.ys.PushSlot()
	return XScalePadded(e.padded, e.offset, e.inWidth, slot, e.outWidth, e.cmp)
}

// ScaleOutput writes one output row (outWidth*cmp bytes, as passed to
// NewEngine) to out for output row index pos. It must only be called once
// NeedsInput reports false for that row; pos must increase by exactly one
// between successive calls, starting at 0.
func (e *Engine) ScaleOutput(out []byte, pos uint32) error {
	return e.ys.Scale(out, pos)
}
