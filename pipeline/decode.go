package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"runtime"

	// Registers PNG, JPEG and WebP as decodable formats with image.Decode.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Decode reads raws and emits a decoded Page for each one, fanned out across
// runtime.NumCPU goroutines since image decoding is CPU-bound.
func Decode(ctx context.Context, pages chan<- Page, raws <-chan RawPage) error {
	errg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < runtime.NumCPU(); i++ {
		errg.Go(func() error {
			for raw := range raws {
				img, err := decodeImage(raw.File)
				if err != nil {
					return fmt.Errorf("cannot decode %s: %w", raw.Name, err)
				}
				select {
				case pages <- Page{Image: img, Name: raw.Name, Index: raw.Index}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	return errg.Wait()
}

func decodeImage(f io.ReadCloser) (image.Image, error) {
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
