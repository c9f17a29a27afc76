package resample

import (
	"math"
	"testing"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want uint32
	}{
		{12, 8, 4},
		{8, 12, 4},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := gcd(tt.a, tt.b); got != tt.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCalcTaps(t *testing.T) {
	tests := []struct {
		name           string
		dimIn, dimOut  uint32
		want           uint64
	}{
		{"identity", 100, 100, 4},
		{"upscale", 100, 200, 4},
		{"downscale by 2", 100, 50, 8},
		{"downscale by 4", 400, 100, 16},
		{"downscale by 3", 300, 100, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcTaps(tt.dimIn, tt.dimOut)
			if got != tt.want {
				t.Errorf("CalcTaps(%d, %d) = %d, want %d", tt.dimIn, tt.dimOut, got, tt.want)
			}
			if got%2 != 0 {
				t.Errorf("CalcTaps(%d, %d) = %d, want an even number", tt.dimIn, tt.dimOut, got)
			}
		})
	}
}

// TestCalcTapsAdaptivity verifies testable property 7: for an integer
// downscale factor k >= 2, the tap count is at least 2k.
func TestCalcTapsAdaptivity(t *testing.T) {
	for k := uint32(2); k <= 16; k++ {
		dimOut := uint32(64)
		dimIn := dimOut * k
		taps := CalcTaps(dimIn, dimOut)
		if taps < uint64(2*k) {
			t.Errorf("CalcTaps(%d, %d) = %d, want >= %d", dimIn, dimOut, taps, 2*k)
		}
	}
}

func TestSplitMap(t *testing.T) {
	tests := []struct {
		name          string
		dimIn, dimOut uint32
		pos           uint32
		wantI         int32
		wantRest      float32
	}{
		{"identity first", 10, 10, 0, 0, 0},
		{"identity last", 10, 10, 9, 9, 0},
		{"upscale first maps negative", 2, 4, 0, -1, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, rest := SplitMap(tt.dimIn, tt.dimOut, tt.pos)
			if i != tt.wantI {
				t.Errorf("SplitMap() i = %d, want %d", i, tt.wantI)
			}
			if math.Abs(float64(rest-tt.wantRest)) > 1e-5 {
				t.Errorf("SplitMap() rest = %v, want %v", rest, tt.wantRest)
			}
		})
	}
}

// TestCalcCoeffsIdentity verifies that at tx=0 with the base 4-tap kernel,
// coefficients reduce to {0, 1, 0, 0} (the sample itself, full weight).
func TestCalcCoeffsIdentity(t *testing.T) {
	coeffs := make([]Fix1_30, 4)
	calcCoeffs(coeffs, 0, 4)

	want := []Fix1_30{0, oneFix1_30, 0, 0}
	for i := range coeffs {
		if coeffs[i] != want[i] {
			t.Errorf("coeffs[%d] = %d, want %d", i, coeffs[i], want[i])
		}
	}
}

// TestCalcCoeffsSumToOne verifies normalization: coefficients at any tap
// count and offset sum to (approximately) one Fix1_30 unit.
func TestCalcCoeffsSumToOne(t *testing.T) {
	for _, taps := range []uint32{4, 6, 8, 12, 16} {
		for _, tx := range []float32{0, 0.25, 0.5, 0.75, 0.99} {
			coeffs := make([]Fix1_30, taps)
			calcCoeffs(coeffs, tx, taps)

			var sum int64
			for _, c := range coeffs {
				sum += int64(c)
			}
			diff := sum - int64(oneFix1_30)
			if diff < 0 {
				diff = -diff
			}
			// A handful of Fix1_30 units of slack: each coefficient is
			// independently truncated toward zero when normalized.
			if diff > int64(taps) {
				t.Errorf("taps=%d tx=%v: coefficients sum to %d, want close to %d", taps, tx, sum, oneFix1_30)
			}
		}
	}
}
