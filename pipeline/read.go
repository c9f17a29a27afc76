package pipeline

import (
	"archive/zip"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Reader reads path's contents and emits a RawPage for each image it finds.
type Reader func(ctx context.Context, raws chan<- RawPage, path string) error

// SelectReader returns the Reader appropriate for path: ReadDir for a
// directory, ReadZip for a .zip or .cbz file. It fails if path cannot be
// stat'd or names a format neither reader handles.
func SelectReader(path string) (Reader, error) {
	f, err := os.Stat(path)
	if err != nil {
		return nil, ErrCannotReadPath
	}

	switch filepath.Ext(path) {
	case "":
		if f.IsDir() {
			return ReadDir, nil
		}
	case ".zip", ".cbz":
		return ReadZip, nil
	}

	return nil, ErrUnsupportedFormat
}

// ReadDir walks root and emits a RawPage for every image file it contains.
func ReadDir(ctx context.Context, raws chan<- RawPage, root string) error {
	i := 0
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("cannot walk %s: %w", root, err)
		}
		if d.IsDir() || !isImage(path) {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", path, err)
		}
		select {
		case raws <- RawPage{File: file, Name: filepath.Base(path), Index: i}:
		case <-ctx.Done():
			file.Close()
			return ctx.Err()
		}
		i++
		return nil
	})
}

// ReadZip reads a zip archive (a cbz-style comic book archive is the common
// case) and emits a RawPage for every image entry it contains.
func ReadZip(ctx context.Context, raws chan<- RawPage, path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer r.Close()

	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		return readZipFiles(ctx, raws, r)
	})
	return errg.Wait()
}

func readZipFiles(ctx context.Context, raws chan<- RawPage, r *zip.ReadCloser) error {
	i := 0
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isImage(f.Name) {
			continue
		}
		file, err := f.Open()
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", f.Name, err)
		}
		select {
		case raws <- RawPage{File: file, Name: filepath.Base(f.Name), Index: i}:
		case <-ctx.Done():
			file.Close()
			return ctx.Err()
		}
		i++
	}
	return nil
}

func isImage(fname string) bool {
	switch filepath.Ext(fname) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	default:
		return false
	}
}
