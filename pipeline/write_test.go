package pipeline_test

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/kanoe/resizeimg/pipeline"
)

func TestWriteZipTo(t *testing.T) {
	pages := make(chan pipeline.Page, 2)
	pages <- pipeline.Page{Image: image.NewNRGBA(image.Rect(0, 0, 3, 3)), Name: "one.png", Index: 0}
	pages <- pipeline.Page{Image: image.NewNRGBA(image.Rect(0, 0, 3, 3)), Name: "two.png", Index: 1}
	close(pages)

	var buf bytes.Buffer
	if err := pipeline.WriteZipTo(&buf, pipeline.FormatPNG, 90, pages); err != nil {
		t.Fatalf("WriteZipTo() error = %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	names := map[string]bool{}
	for _, f := range r.File {
		names[f.Name] = true
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		if _, err := png.Decode(rc); err != nil {
			t.Errorf("%s did not decode as PNG: %v", f.Name, err)
		}
		rc.Close()
	}
	if !names["one.png"] || !names["two.png"] {
		t.Errorf("zip entries = %v, want one.png and two.png", names)
	}
}

func TestWriteZipToJPEG(t *testing.T) {
	pages := make(chan pipeline.Page, 1)
	pages <- pipeline.Page{Image: image.NewNRGBA(image.Rect(0, 0, 3, 3)), Name: "page.png", Index: 0}
	close(pages)

	var buf bytes.Buffer
	if err := pipeline.WriteZipTo(&buf, pipeline.FormatJPEG, 85, pages); err != nil {
		t.Fatalf("WriteZipTo() error = %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	if len(r.File) != 1 || r.File[0].Name != "page.jpg" {
		t.Fatalf("zip entries = %v, want single page.jpg", r.File)
	}
}
