// Package resizeimg converts a directory or cbz-style zip archive of images
// into a zip archive of images resized to fit within a bounding box, using a
// streaming Catmull-Rom bicubic resampler.
package resizeimg

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/kanoe/resizeimg/imgutil"
	"github.com/kanoe/resizeimg/pipeline"
)

// Params adjusts how each page is resized and re-encoded. For sane
// defaults, see cmd/resizeimg.
//
// Width and Height describe a bounding box the output image is fit within,
// preserving aspect ratio; a non-positive value leaves that dimension
// unconstrained. Format and JPEGQuality control the output codec.
type Params struct {
	Width       int
	Height      int
	Format      pipeline.Format
	JPEGQuality int
}

// New creates a Converter with the provided Params.
func New(p Params) *Converter {
	return &Converter{
		params: p,
		scaler: imgutil.CatmullRom,
		pool:   imgutil.NewImagePool(),
	}
}

// Converter resizes images read from a container into images written to a
// zip archive. It is safe for concurrent use.
type Converter struct {
	params Params
	scaler imgutil.Scaler
	pool   *imgutil.ImagePool
}

// Convert reads the container at in, resizes every page it contains, and
// writes the result to a newly created zip archive at out.
func (c *Converter) Convert(in, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.ConvertToWriter(in, f)
}

// ConvertToWriter reads the container at in, resizes every page it
// contains, and writes the resulting zip archive to out.
func (c *Converter) ConvertToWriter(in string, out io.Writer) error {
	read, err := pipeline.SelectReader(in)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", in, err)
	}

	errg, ctx := errgroup.WithContext(context.Background())

	raws := make(chan pipeline.RawPage)
	errg.Go(func() error {
		defer close(raws)
		return read(ctx, raws, in)
	})

	decoded := make(chan pipeline.Page)
	errg.Go(func() error {
		defer close(decoded)
		return pipeline.Decode(ctx, decoded, raws)
	})

	resized := make(chan pipeline.Page)
	errg.Go(func() error {
		defer close(resized)
		return c.resizeAll(ctx, resized, decoded)
	})

	errg.Go(func() error {
		return pipeline.WriteZipTo(out, c.params.Format, c.params.JPEGQuality, resized)
	})

	return errg.Wait()
}

// resizeAll fits and resizes every page received from pages, emitting the
// results on resized. It stops early and returns ctx.Err() if ctx is
// cancelled by a failing pipeline stage.
func (c *Converter) resizeAll(ctx context.Context, resized chan<- pipeline.Page, pages <-chan pipeline.Page) error {
	for pg := range pages {
		src := imgutil.ToNRGBA(pg.Image)
		r := imgutil.FitRect(src.Bounds(), c.params.Width, c.params.Height)
		dst := c.pool.Get(r.Dx(), r.Dy())
		if err := c.scaler.Scale(dst, src); err != nil {
			return fmt.Errorf("cannot resize %s: %w", pg.Name, err)
		}

		select {
		case resized <- pipeline.Page{Image: (image.Image)(dst), Name: pg.Name, Index: pg.Index}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
