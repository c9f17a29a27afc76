package imgutil

import (
	"image"
	"sync"
)

// NewImagePool creates an ImagePool.
func NewImagePool() *ImagePool {
	return &ImagePool{
		cache: make(map[int]*sync.Pool),
	}
}

// ImagePool maintains a sync.Pool of pixel arrays for each image resolution
// gotten from it, so repeatedly resizing many pages at a few fixed output
// sizes doesn't pay for a fresh allocation every time.
type ImagePool struct {
	cache map[int]*sync.Pool
	mu    sync.Mutex
}

func (p *ImagePool) getPool(pixLen int) *sync.Pool {
	p.mu.Lock()
	pool, ok := p.cache[pixLen]
	if !ok {
		pool = &sync.Pool{
			New: func() interface{} {
				tmp := make([]uint8, pixLen)
				return &tmp
			},
		}
		p.cache[pixLen] = pool
	}
	p.mu.Unlock()
	return pool
}

// Get gets an NRGBA image of the specified width and height with its pixel
// slice taken from the pool.
func (p *ImagePool) Get(width, height int) *image.NRGBA {
	tmp := p.getPool(width * height * 4).Get().(*[]uint8)
	return &image.NRGBA{
		Pix:    *tmp,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Put returns an image's pixel slice to the pool.
func (p *ImagePool) Put(img *image.NRGBA) {
	p.getPool(len(img.Pix)).Put(&img.Pix)
}
