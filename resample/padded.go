package resample

// PaddedScanlineSize returns the total length in bytes a padded scanline
// buffer must have to horizontally resample inWidth samples to outWidth
// samples with cmp components per sample, along with the byte offset at
// which the logical row (the actual image samples) must be written.
//
// The padding on each side is sized so that the widest kernel footprint for
// this input/output pair never reads outside the buffer.
func PaddedScanlineSize(inWidth, outWidth uint32, cmp uint8) (length, offset int) {
	taps := CalcTaps(inWidth, outWidth)
	offset = int(taps/2+1) * int(cmp)
	length = int(inWidth)*int(cmp) + offset*2
	return length, offset
}

// PadExtendEdges fills the left and right padding of a padded scanline by
// replicating the first and last logical sample. buf must already hold the
// logical row of width samples, each of cmp components, starting at padLen.
func PadExtendEdges(buf []byte, width uint32, padLen int, cmp uint8) {
	c := int(cmp)
	firstSample := buf[padLen : padLen+c]
	rowEnd := padLen + int(width)*c
	lastSample := buf[rowEnd-c : rowEnd]

	for i := 0; i < padLen; i++ {
		buf[i] = firstSample[i%c]
		buf[rowEnd+i] = lastSample[i%c]
	}
}
