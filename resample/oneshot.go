package resample

// ScaleImage resamples a fully in-memory image of inHeight rows (each at
// least inWidth*cmp bytes) to outWidth x outHeight, using the same two
// passes as Engine but without a ring buffer. It exists as a correctness
// reference for Engine's streaming output and for callers that already hold
// the whole source image and have no reason to stream it.
func ScaleImage(in [][]byte, inWidth, inHeight, outWidth, outHeight uint32, cmp uint8) ([][]byte, error) {
	if inWidth == 0 || inHeight == 0 || outWidth == 0 || outHeight == 0 || cmp == 0 {
		return nil, ErrInvalidParameter
	}
	if uint32(len(in)) < inHeight {
		return nil, ErrInvalidParameter
	}

	length, offset := PaddedScanlineSize(inWidth, outWidth, cmp)
	padded := make([]byte, length)
	n := int(inWidth) * int(cmp)

	hScaled := make([][]byte, inHeight)
	for y := uint32(0); y < inHeight; y++ {
		copy(padded[offset:offset+n], in[y][:n])
		PadExtendEdges(padded, inWidth, offset, cmp)

		row := make([]byte, int(outWidth)*int(cmp))
		if err := XScalePadded(padded, offset, inWidth, row, outWidth, cmp); err != nil {
			return nil, err
		}
		hScaled[y] = row
	}

	out := make([][]byte, outHeight)
	for y := uint32(0); y < outHeight; y++ {
		row := make([]byte, int(outWidth)*int(cmp))
		if err := PreallocScale(inHeight, outHeight, hScaled, row, y, outWidth, cmp); err != nil {
			return nil, err
		}
		out[y] = row
	}
	return out, nil
}
