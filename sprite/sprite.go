// Package sprite loads PNG and BMP images into RGB or RGBA byte slices that
// can be copied straight into a pixel.Buffer.
package sprite

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"

	"pixwin/pixel"
)

var (
	// ErrNotFound means the sprite file does not exist.
	ErrNotFound = errors.New("sprite: not found")
	// ErrMalformed means the file exists but could not be decoded.
	ErrMalformed = errors.New("sprite: malformed image")
	// ErrUnsupportedFormat means the file header declares a layout other
	// than 24-bit RGB or 32-bit RGBA.
	ErrUnsupportedFormat = errors.New("sprite: unsupported pixel format")
)

const maxSpriteBytes = 64 * 1024 * 1024

// Sprite is a decoded image, rows top to bottom, channels r, g, b(, a).
type Sprite struct {
	Width  int
	Height int
	Format pixel.Format
	Pix    []byte
}

// Depth returns bits per pixel: 24 for RGB, 32 for RGBA.
func (s *Sprite) Depth() int { return s.Format.Depth() }

// Load reads and decodes the image at path.
func Load(path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return nil, fmt.Errorf("sprite: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a PNG or BMP image from r.
func Decode(r io.Reader) (*Sprite, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSpriteBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrMalformed, err)
	}
	if len(data) > maxSpriteBytes {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrMalformed, maxSpriteBytes)
	}

	format, err := nativeFormat(data)
	if errors.Is(err, errUnknownHeader) {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err != nil {
		return nil, err
	}

	img, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty %s image", ErrMalformed, kind)
	}
	return fromImage(img, format), nil
}

// fromImage copies img into a sprite of the given format, un-premultiplying
// alpha so the bytes match the source file.
func fromImage(img image.Image, format pixel.Format) *Sprite {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	bpp := format.Depth() / 8
	s := &Sprite{
		Width:  w,
		Height: h,
		Format: format,
		Pix:    make([]byte, w*h*bpp),
	}

	if src, ok := img.(*image.NRGBA); ok && format == pixel.RGBA {
		for y := 0; y < h; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(s.Pix[y*w*4:(y+1)*w*4], src.Pix[i:i+w*4])
		}
		return s
	}

	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			s.Pix[o+0] = c.R
			s.Pix[o+1] = c.G
			s.Pix[o+2] = c.B
			if bpp == 4 {
				s.Pix[o+3] = c.A
			}
			o += bpp
		}
	}
	return s
}

// Image returns the sprite as a standard library image.
func (s *Sprite) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	switch s.Format {
	case pixel.RGBA:
		copy(img.Pix, s.Pix)
	case pixel.RGB:
		for i, j := 0, 0; i+2 < len(s.Pix); i, j = i+3, j+4 {
			img.Pix[j+0] = s.Pix[i+0]
			img.Pix[j+1] = s.Pix[i+1]
			img.Pix[j+2] = s.Pix[i+2]
			img.Pix[j+3] = 0xFF
		}
	}
	return img
}

func (s *Sprite) at(x, y int) color.NRGBA {
	bpp := s.Format.Depth() / 8
	o := (y*s.Width + x) * bpp
	c := color.NRGBA{R: s.Pix[o], G: s.Pix[o+1], B: s.Pix[o+2], A: 0xFF}
	if bpp == 4 {
		c.A = s.Pix[o+3]
	}
	return c
}
