package pipeline

import (
	"archive/zip"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format selects the image codec WriteZip uses to encode each output page.
type Format int

const (
	// FormatPNG encodes losslessly. It is the default: the engine's output
	// is already a faithful resample of the source, and PNG preserves it
	// exactly instead of adding generation loss on top.
	FormatPNG Format = iota
	// FormatJPEG encodes with JPEGQuality, trading fidelity for size.
	FormatJPEG
)

// WriteZip creates (or truncates) path and writes every page it receives
// into it as a single entry, named after the page and encoded with format.
func WriteZip(path string, format Format, jpegQuality int, pages <-chan Page) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteZipTo(f, format, jpegQuality, pages)
}

// WriteZipTo is WriteZip against an arbitrary io.Writer.
func WriteZipTo(w io.Writer, format Format, jpegQuality int, pages <-chan Page) error {
	zw := zip.NewWriter(w)
	defer zw.Close()
	for p := range pages {
		entry, err := zw.Create(entryName(p.Name, format))
		if err != nil {
			return err
		}
		if err := encode(entry, p.Image, format, jpegQuality); err != nil {
			return fmt.Errorf("cannot encode %s: %w", p.Name, err)
		}
	}
	return nil
}

func entryName(name string, format Format) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	switch format {
	case FormatJPEG:
		return base + ".jpg"
	default:
		return base + ".png"
	}
}

func encode(w io.Writer, img image.Image, format Format, jpegQuality int) error {
	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return png.Encode(w, img)
	}
}
