package resample

// YScaler drives vertical (row-direction) resampling in a streaming
// fashion: the caller feeds input rows through Next until it returns nil,
// then calls Scale to emit one output row, and repeats until OutHeight rows
// have been produced.
//
// A YScaler owns a ScanlineRingBuffer sized to the tap count required for
// this input/output height pair, so only that many input rows are ever
// resident. It is not safe for concurrent use.
type YScaler struct {
	rb        *ScanlineRingBuffer
	inHeight  uint32
	outHeight uint32
	target    uint32
	ty        float32
	coeffs    []Fix1_30 // reused across Scale calls
}

// NewYScaler creates a YScaler for resampling an image of inHeight rows to
// outHeight rows, where each row (input and output) is scanlineLen bytes.
func NewYScaler(inHeight, outHeight uint32, scanlineLen int) (*YScaler, error) {
	if inHeight == 0 || outHeight == 0 || scanlineLen == 0 {
		return nil, ErrInvalidParameter
	}

	taps := CalcTaps(inHeight, outHeight)
	rb, err := NewScanlineRingBuffer(uint32(taps), scanlineLen)
	if err != nil {
		return nil, err
	}

	ys := &YScaler{
		rb:        rb,
		inHeight:  inHeight,
		outHeight: outHeight,
		coeffs:    make([]Fix1_30, taps),
	}
	ys.mapPos(0)
	return ys, nil
}

// mapPos recomputes target and ty for output row pos.
func (ys *YScaler) mapPos(pos uint32) {
	smpI, ty := SplitMap(ys.inHeight, ys.outHeight, pos)
	ys.ty = ty
	ys.target = uint32(int64(smpI) + int64(ys.rb.height/2))
}

// NeedsInput reports whether another input row must be pushed before the
// next output row can be produced. It does not consume anything; callers
// that only want the check (e.g. to xscale a raw row before handing it over)
// should use this together with PushSlot.
func (ys *YScaler) NeedsInput() bool {
	return ys.rb.count != ys.inHeight && ys.rb.count <= ys.target
}

// PushSlot returns a writable row slice for the next input row. It must only
// be called when NeedsInput reports true. The returned slice is a borrow,
// valid for writing only until the next call to PushSlot.
func (ys *YScaler) PushSlot() []byte {
	return ys.rb.Next()
}

// Next returns a writable row slice if another input row is needed before
// the next output row can be produced, or nil if enough rows are already
// buffered and the caller should call Scale. Input rows must be written to
// the returned slice and pushed in strictly increasing order; the caller
// loops on Next between output rows.
//
// Next is for callers that push already vertically-comparable rows (no
// horizontal pass of their own to interleave); Engine uses NeedsInput and
// PushSlot directly instead, since it must run XScale in between.
func (ys *YScaler) Next() []byte {
	if !ys.NeedsInput() {
		return nil
	}
	return ys.PushSlot()
}

// Scale writes one output row to out using the rows currently buffered, then
// advances internal state for the row at pos+1. pos is the output row index
// being produced (0-based) and is used only to compute the next target.
//
// Scale must only be called once Next returns nil for the current output
// row; calling it earlier may integrate against a window of rows that has
// not converged on the wanted height. This contract is exactly the condition
// that Next itself enforces by returning nil, so a caller alternating
// Next/Scale correctly never violates it.
func (ys *YScaler) Scale(out []byte, pos uint32) error {
	window, ok := ys.rb.Window(ys.target)
	if !ok {
		return ErrInvalidParameter
	}
	if err := stripScale(window, out, ys.ty, ys.coeffs); err != nil {
		return err
	}
	ys.mapPos(pos + 1)
	return nil
}
