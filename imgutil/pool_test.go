package imgutil_test

import (
	"testing"

	"github.com/kanoe/resizeimg/imgutil"
)

func TestImagePoolGetDimensions(t *testing.T) {
	p := imgutil.NewImagePool()
	img := p.Get(16, 9)
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 9 {
		t.Fatalf("bounds = %v, want 16x9", img.Bounds())
	}
	if len(img.Pix) != 16*9*4 {
		t.Fatalf("len(Pix) = %d, want %d", len(img.Pix), 16*9*4)
	}
	if img.Stride != 16*4 {
		t.Fatalf("Stride = %d, want %d", img.Stride, 16*4)
	}
}

func TestImagePoolReusesBuffer(t *testing.T) {
	p := imgutil.NewImagePool()
	img := p.Get(32, 32)
	pix := img.Pix
	p.Put(img)

	again := p.Get(32, 32)
	if &again.Pix[0] != &pix[0] {
		t.Error("Get() after Put() did not reuse the pooled backing array")
	}
}

func TestImagePoolSeparatesBySize(t *testing.T) {
	p := imgutil.NewImagePool()
	small := p.Get(4, 4)
	big := p.Get(64, 64)
	if len(small.Pix) == len(big.Pix) {
		t.Fatal("expected distinct pool buckets for distinct pixel lengths")
	}
}
