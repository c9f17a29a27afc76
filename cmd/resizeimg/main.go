package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	resizeimg "github.com/kanoe/resizeimg"
	"github.com/kanoe/resizeimg/pipeline"
)

var (
	version = "dev"
	date    = "unknown"
)

func main() {
	height := flag.Int("height", 1920, "Maximum height of the output image. 0 leaves it unconstrained.")
	width := flag.Int("width", 1920, "Maximum width of the output image. 0 leaves it unconstrained.")
	jpeg := flag.Bool("jpeg", false, `Encode output pages as JPEG instead of PNG.
PNG is lossless; JPEG trades fidelity for smaller files.`)
	quality := flag.Int("quality", 90, "JPEG quality, 1-100. Ignored unless -jpeg is set.")
	outdir := flag.String("outdir", "", `Path to output directory.
If the provided directory does not exist, resizeimg will attempt to create it. (default input dir)`)
	workers := flag.Int("workers", 2, "Number of input files converted concurrently.")
	ver := flag.Bool("version", false, "Print version information.")

	flag.Parse()

	if *ver {
		fmt.Printf("resizeimg version %s, built at %s\n", version, date)
	}

	if *outdir != "" {
		if err := os.MkdirAll(*outdir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Could not create outdir: %v\n", err)
			os.Exit(1)
		}
	}

	format := pipeline.FormatPNG
	if *jpeg {
		format = pipeline.FormatJPEG
	}
	conv := resizeimg.New(resizeimg.Params{
		Width:       *width,
		Height:      *height,
		Format:      format,
		JPEGQuality: *quality,
	})

	targets := make(chan target, len(flag.Args()))
	go func() {
		defer close(targets)
		for _, in := range flag.Args() {
			out := filepath.Dir(in)
			if *outdir != "" {
				out = *outdir
			}
			out = filepath.Join(out, outName(in))
			targets <- target{in, out}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range targets {
				if err := conv.Convert(t.in, t.out); err != nil {
					fmt.Println("Failed to convert", filepath.Base(t.in), err)
					continue
				}
				fmt.Println("Converted", filepath.Base(t.in))
			}
		}()
	}
	wg.Wait()
}

type target struct {
	in  string
	out string
}

func outName(in string) string {
	return strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".resized.zip"
}
