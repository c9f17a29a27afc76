package pipeline_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"testing"

	"github.com/kanoe/resizeimg/pipeline"
)

type closeBuf struct {
	*bytes.Reader
}

func (closeBuf) Close() error { return nil }

func encodedPNG(t *testing.T, w, h int) io.ReadCloser {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return closeBuf{bytes.NewReader(buf.Bytes())}
}

func TestDecode(t *testing.T) {
	raws := make(chan pipeline.RawPage, 2)
	raws <- pipeline.RawPage{File: encodedPNG(t, 4, 4), Name: "a.png", Index: 0}
	raws <- pipeline.RawPage{File: encodedPNG(t, 6, 2), Name: "b.png", Index: 1}
	close(raws)

	pages := make(chan pipeline.Page, 2)
	if err := pipeline.Decode(context.Background(), pages, raws); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	close(pages)

	got := map[string]image.Image{}
	for p := range pages {
		got[p.Name] = p.Image
	}
	if len(got) != 2 {
		t.Fatalf("got %d pages, want 2", len(got))
	}
	if b := got["a.png"].Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("a.png bounds = %v, want 4x4", b)
	}
	if b := got["b.png"].Bounds(); b.Dx() != 6 || b.Dy() != 2 {
		t.Errorf("b.png bounds = %v, want 6x2", b)
	}
}

func TestDecodeInvalidImage(t *testing.T) {
	raws := make(chan pipeline.RawPage, 1)
	raws <- pipeline.RawPage{File: closeBuf{bytes.NewReader([]byte("not an image"))}, Name: "bad.png", Index: 0}
	close(raws)

	pages := make(chan pipeline.Page, 1)
	if err := pipeline.Decode(context.Background(), pages, raws); err == nil {
		t.Fatal("Decode() error = nil, want non-nil for an undecodable file")
	}
}
