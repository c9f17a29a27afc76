package resample

import "encoding/binary"

// XScale horizontally resamples one input row of inWidth samples to an
// output row of outWidth samples, each with cmp components. out must be at
// least outWidth*cmp bytes. This is the simplest way to x-scale a row; it
// allocates and populates a padded scanline internally. Callers resampling
// many rows of the same dimensions should build their own padded scanline
// once with PaddedScanlineSize/PadExtendEdges and call XScalePadded instead.
func XScale(in []byte, inWidth uint32, out []byte, outWidth uint32, cmp uint8) error {
	if inWidth == 0 || outWidth == 0 || cmp == 0 {
		return ErrInvalidParameter
	}

	length, offset := PaddedScanlineSize(inWidth, outWidth, cmp)
	if length > MaxBufferBytes {
		return ErrAllocation
	}
	buf := make([]byte, length)
	copy(buf[offset:], in[:int(inWidth)*int(cmp)])
	PadExtendEdges(buf, inWidth, offset, cmp)
	return XScalePadded(buf, offset, inWidth, out, outWidth, cmp)
}

// XScalePadded horizontally resamples a padded scanline (as produced by
// PaddedScanlineSize + PadExtendEdges) to an output row. padded is the full
// padded buffer, including both edge pads; offset is the byte offset at
// which the logical row begins within it, exactly as returned by
// PaddedScanlineSize. The left-edge taps of the kernel read backward from
// offset into the pad, the same way the reference implementation walks
// pointer arithmetic backward from the logical row's start. It skips the
// internal allocation and edge extension that XScale performs, for callers
// that manage their own padded buffers across many rows.
func XScalePadded(padded []byte, offset int, inWidth uint32, out []byte, outWidth uint32, cmp uint8) error {
	if inWidth == 0 || outWidth == 0 || cmp == 0 {
		return ErrInvalidParameter
	}

	taps := CalcTaps(inWidth, outWidth)
	if taps*uint64(cmp)*4 > MaxBufferBytes {
		return ErrAllocation
	}
	coeffs := make([]Fix1_30, taps)

	scaleGCD := gcd(inWidth, outWidth)
	inChunk := inWidth / scaleGCD
	outChunk := outWidth / scaleGCD

	c := int(cmp)
	halfTaps := int32(taps / 2)

	for i := uint32(0); i < outChunk; i++ {
		smpI, tx := SplitMap(inWidth, outWidth, i)
		calcCoeffs(coeffs, tx, uint32(taps))

		smpI += 1 - halfTaps
		outPos := int(i) * c
		for j := uint32(0); j < scaleGCD; j++ {
			src := padded[offset+int(smpI)*c:]
			setSample(uint32(taps), coeffs, src, out[outPos:outPos+c], cmp)
			outPos += int(outChunk) * c
			smpI += int32(inChunk)
		}
	}

	return nil
}

// setSample writes one resampled sample to out, dispatching to the packed
// 4-channel fast path when possible and to the generic per-channel loop
// otherwise. Both paths compute the same result; the observable output does
// not depend on which is used.
func setSample(taps uint32, coeffs []Fix1_30, in []byte, out []byte, cmp uint8) {
	if cmp == 4 {
		sampleRGBA(taps, coeffs, in, out)
		return
	}
	sampleGeneric(cmp, taps, coeffs, in, out)
}

// sampleGeneric accumulates cmp channels independently, taps samples apart
// by cmp bytes, in fix33_30 format and clamps each to a byte.
func sampleGeneric(cmp uint8, taps uint32, coeffs []Fix1_30, in []byte, out []byte) {
	c := int(cmp)
	for i := 0; i < c; i++ {
		var total fix33_30
		for j := uint32(0); j < taps; j++ {
			total += fix33_30(coeffs[j]) * fix33_30(in[int(j)*c+i])
		}
		out[i] = clamp(total)
	}
}

// sampleRGBA is a packed fast path for 4-channel (interleaved RGBA) samples:
// it reads each tap as a single uint32 and accumulates all four channels in
// the same pass, rather than four independent strided loops.
func sampleRGBA(taps uint32, coeffs []Fix1_30, in []byte, out []byte) {
	var r, g, b, a fix33_30
	for i := uint32(0); i < taps; i++ {
		sample := binary.LittleEndian.Uint32(in[int(i)*4:])
		coeff := fix33_30(coeffs[i])
		r += coeff * fix33_30(sample&0xFF)
		g += coeff * fix33_30((sample>>8)&0xFF)
		b += coeff * fix33_30((sample>>16)&0xFF)
		a += coeff * fix33_30((sample>>24)&0xFF)
	}
	out[0] = clamp(r)
	out[1] = clamp(g)
	out[2] = clamp(b)
	out[3] = clamp(a)
}
