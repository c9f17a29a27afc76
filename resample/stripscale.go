package resample

// StripScale produces one output row by vertically convolving a window of
// rows. window must have the same length as the tap count for this
// resampling (the height of the strip, not of the whole image); every row in
// window must be len(out) bytes and already populated, including rows that
// stand in for positions above or below the real image (the caller is
// expected to have clamped those, as ScanlineRingBuffer.Window does).
//
// ty is the sub-pixel offset of the sampling position from the center of the
// strip, in [0, 1).
//
// The per-byte loop is channel-agnostic: it treats the row as a flat byte
// array, so it works uniformly for 1, 2, 3, or 4 components per sample.
func StripScale(window [][]byte, out []byte, ty float32) error {
	if len(window) == 0 || len(out) == 0 {
		return ErrInvalidParameter
	}
	return stripScale(window, out, ty, make([]Fix1_30, len(window)))
}

// stripScale is StripScale's implementation with a caller-supplied
// coefficient scratch buffer, letting YScaler reuse one allocation across
// every output row instead of paying for one per row.
func stripScale(window [][]byte, out []byte, ty float32, coeffs []Fix1_30) error {
	taps := uint32(len(window))
	calcCoeffs(coeffs, ty, taps)

	for i := range out {
		var total fix33_30
		for j, row := range window {
			total += fix33_30(coeffs[j]) * fix33_30(row[i])
		}
		out[i] = clamp(total)
	}
	return nil
}
