// Command mksprite converts a PNG or BMP image into the raw bytes a pixwin
// buffer of the chosen format holds, ready to copy into Surface.Pix.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"pixwin/pixel"
	"pixwin/sprite"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input image (.png or .bmp).")
		outPath = flag.String("out", "", "Output file for raw pixel bytes.")
		mode    = flag.String("mode", "info", "info|raw.")
		format  = flag.String("format", "", "Target format for raw mode: bw|grayscale|rgb|rgba (default: the image's own).")
	)
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: mksprite -in image.png [-mode info]\n       mksprite -mode raw -in image.png -out image.raw [-format bw|grayscale|rgb|rgba]")
	}

	sp, err := sprite.Load(*inPath)
	if err != nil {
		switch {
		case errors.Is(err, sprite.ErrNotFound):
			fatalf("missing: %v", err)
		case errors.Is(err, sprite.ErrUnsupportedFormat):
			fatalf("unsupported: %v", err)
		default:
			fatalf("corrupt: %v", err)
		}
	}

	switch strings.ToLower(*mode) {
	case "info":
		fmt.Printf("%s: %dx%d %s (%d bpp, %d bytes)\n", *inPath, sp.Width, sp.Height, sp.Format, sp.Depth(), len(sp.Pix))
	case "raw":
		if *outPath == "" {
			fatalf("raw mode needs -out")
		}
		target := sp.Format
		if *format != "" {
			if target, err = pixel.ParseFormat(*format); err != nil {
				fatalf("%v", err)
			}
		}
		n, err := writeRaw(*outPath, sp, target)
		if err != nil {
			fatalf("raw: %v", err)
		}
		fmt.Printf("%s: wrote %d bytes (%dx%d %s)\n", *outPath, n, sp.Width, sp.Height, target)
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func writeRaw(path string, sp *sprite.Sprite, target pixel.Format) (int, error) {
	buf, err := pixel.New(sp.Width, sp.Height, target)
	if err != nil {
		return 0, err
	}
	sp.Blit(buf, 0, 0)
	if err := os.WriteFile(path, buf.Pix, 0o644); err != nil {
		return 0, err
	}
	return len(buf.Pix), nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
