// Package pipeline reads a directory or zip archive of images, decodes them,
// and writes decoded-and-processed pages back out as a zip archive. It is
// the container shell around the resample engine: the engine itself never
// touches a file or a format codec, only raw pixel rows.
package pipeline

import (
	"errors"
	"image"
	"io"
)

var (
	// ErrUnsupportedFormat is returned by SelectReader when path's extension
	// (or lack of one, for a non-directory) names a container this package
	// does not know how to read.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrCannotReadPath is returned by SelectReader when path cannot even be
	// stat'd.
	ErrCannotReadPath = errors.New("cannot read path")
)

// RawPage is an undecoded page read from a container, paired with the
// information needed to name and order it once processed.
type RawPage struct {
	File  io.ReadCloser
	Name  string
	Index int
}

// Page is a decoded (and, once processed, resized) image together with its
// position in the source container.
type Page struct {
	Image image.Image
	Name  string
	Index int
}
