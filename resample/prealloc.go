package resample

// PreallocScale produces one vertically-scaled output row from a fully
// resident set of input rows, without a ring buffer. in must hold inHeight
// row slices, each at least width*cmp bytes (already horizontally scaled, if
// horizontal scaling is needed). out receives the scaled row for output
// position pos.
//
// This is useful as a correctness reference for the streaming YScaler, and
// for callers that already hold the whole source image in memory and would
// rather not pay for a ring buffer.
func PreallocScale(inHeight, outHeight uint32, in [][]byte, out []byte, pos uint32, width uint32, cmp uint8) error {
	if inHeight == 0 || outHeight == 0 || width == 0 || cmp == 0 {
		return ErrInvalidParameter
	}
	if uint32(len(in)) < inHeight {
		return ErrInvalidParameter
	}

	taps := CalcTaps(inHeight, outHeight)
	window := make([][]byte, taps)

	smpI, ty := SplitMap(inHeight, outHeight, pos)
	stripPos := smpI + 1 - int32(taps/2)

	for i := range window {
		switch {
		case stripPos < 0:
			window[i] = in[0]
		case stripPos > int32(inHeight)-1:
			window[i] = in[inHeight-1]
		default:
			window[i] = in[stripPos]
		}
		stripPos++
	}

	return StripScale(window, out[:int(width)*int(cmp)], ty)
}
