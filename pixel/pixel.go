// Package pixel holds the application-owned pixel buffer and the converters
// that turn it into a 32-bit presentation image.
package pixel

import (
	"errors"
	"fmt"
)

var (
	ErrBadDimensions    = errors.New("pixel: bad dimensions")
	ErrUnknownFormat    = errors.New("pixel: unknown format")
	ErrShortDestination = errors.New("pixel: destination too short")
)

// Format defines the buffer pixel encoding.
type Format uint8

const (
	// BlackWhite is 1bpp, 8 pixels per byte, most significant bit first.
	BlackWhite Format = iota + 1
	// GrayScale is 8bpp luminance.
	GrayScale
	// RGB is 24bpp: r, g, b.
	RGB
	// RGBA is 32bpp: r, g, b, a (straight alpha).
	RGBA
)

func (f Format) String() string {
	switch f {
	case BlackWhite:
		return "bw"
	case GrayScale:
		return "grayscale"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	return f >= BlackWhite && f <= RGBA
}

// Depth returns the number of bits per pixel.
func (f Format) Depth() int {
	switch f {
	case BlackWhite:
		return 1
	case GrayScale:
		return 8
	case RGB:
		return 24
	case RGBA:
		return 32
	}
	return 0
}

// ParseFormat accepts the names returned by Format.String.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "bw", "blackwhite":
		return BlackWhite, nil
	case "gray", "grayscale":
		return GrayScale, nil
	case "rgb":
		return RGB, nil
	case "rgba":
		return RGBA, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Size returns the byte length of a width x height buffer in format f.
func Size(width, height int, f Format) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	n := width * height
	switch f {
	case BlackWhite:
		if n%8 != 0 {
			return 0, fmt.Errorf("%w: %dx%d is not a multiple of 8 pixels", ErrBadDimensions, width, height)
		}
		return n / 8, nil
	case GrayScale:
		return n, nil
	case RGB:
		return n * 3, nil
	case RGBA:
		return n * 4, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

// Buffer is a fixed-size pixel buffer. Pix is written by the application in
// place; it is never resized.
type Buffer struct {
	Pix    []byte
	width  int
	height int
	format Format
}

// New allocates a zeroed buffer.
func New(width, height int, f Format) (*Buffer, error) {
	n, err := Size(width, height, f)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		Pix:    make([]byte, n),
		width:  width,
		height: height,
		format: f,
	}, nil
}

func (b *Buffer) Width() int     { return b.width }
func (b *Buffer) Height() int    { return b.height }
func (b *Buffer) Format() Format { return b.format }

// Stride returns the number of bytes per row. BlackWhite rows are not byte
// aligned, so Stride is 0 for that format.
func (b *Buffer) Stride() int {
	switch b.format {
	case GrayScale:
		return b.width
	case RGB:
		return b.width * 3
	case RGBA:
		return b.width * 4
	}
	return 0
}

// Clear zeroes every byte.
func (b *Buffer) Clear() {
	clear(b.Pix)
}
