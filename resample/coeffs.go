package resample

// baseTaps is the tap count used for a 4-tap bicubic kernel: the standard,
// un-widened Catmull-Rom footprint used whenever the image is not being
// reduced.
const baseTaps = 4

// gcd returns the greatest common divisor of a and b.
func gcd(a, b uint32) uint32 {
	for a != 0 {
		a, b = b%a, a
	}
	return b
}

// mapCoord maps a discrete destination coordinate to a continuous source
// coordinate. The half-pixel offset on both sides of the division places the
// input and output sample grids on the same notional center.
func mapCoord(pos uint32, scale float64) float64 {
	return (float64(pos)+0.5)/scale - 0.5
}

// SplitMap maps an output position to the corresponding input position and
// its sub-pixel remainder. dimIn and dimOut are the input/output extents
// along the axis being mapped.
func SplitMap(dimIn, dimOut, pos uint32) (smpI int32, rest float32) {
	scale := float64(dimOut) / float64(dimIn)
	smp := mapCoord(pos, scale)
	i := int32(smp)
	if smp < 0 {
		i = -1
	}
	return i, float32(smp - float64(i))
}

// CalcTaps returns the number of taps needed to resample dimIn samples to
// dimOut samples without aliasing. Enlargement (or identity) uses the
// standard 4-tap bicubic kernel; reduction widens the kernel in proportion to
// the reduction ratio, rounded up to the nearest even tap count.
//
// dimIn*4 never overflows a uint64 for any uint32 dimIn, so this is safe for
// the full range of 32-bit image dimensions; the practical limit on
// supported input size is governed by available memory for the padded
// scanline and ring buffer, not by this arithmetic.
func CalcTaps(dimIn, dimOut uint32) uint64 {
	if dimOut >= dimIn {
		return baseTaps
	}
	t := (uint64(dimIn) * baseTaps) / uint64(dimOut)
	t += t & 1
	return t
}

// catrom evaluates the Catmull-Rom cubic at x, which must be non-negative.
func catrom(x float32) float32 {
	if x < 1 {
		return (3*x*x*x - 5*x*x + 2) / 2
	}
	return (-1*x*x*x + 5*x*x - 8*x + 4) / 2
}

// calcCoeffs fills coeffs (len(coeffs) == taps) with normalized Fix1_30
// kernel weights for sub-pixel offset tx and the given tap count.
func calcCoeffs(coeffs []Fix1_30, tx float32, taps uint32) {
	tapMult := float32(taps) / baseTaps
	x := 1 - tx - float32(taps)/2

	var total float32
	for i := uint32(0); i < taps; i++ {
		v := catrom(abs32(x) / tapMult)
		coeffs[i] = fToFix1_30(v)
		total += v
		x++
	}

	for i := range coeffs {
		coeffs[i] = Fix1_30(float32(coeffs[i]) / total)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
