package sprite

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"pixwin/pixel"
)

var (
	red    = []byte{0xFF, 0x00, 0x00}
	green  = []byte{0x00, 0xFF, 0x00}
	blue   = []byte{0x00, 0x00, 0xFF}
	yellow = []byte{0xFF, 0xFF, 0x00}
)

func load(t *testing.T, name string) *Sprite {
	t.Helper()
	s, err := Load(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Load(%s): %v", name, err)
	}
	return s
}

func checkGrid(t *testing.T, s *Sprite, bpp int) {
	t.Helper()
	if s.Width != 2 || s.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", s.Width, s.Height)
	}
	if len(s.Pix) != 2*2*bpp {
		t.Fatalf("len(Pix) = %d, want %d", len(s.Pix), 2*2*bpp)
	}
	for i, want := range [][]byte{red, green, blue, yellow} {
		got := s.Pix[i*bpp : i*bpp+3]
		if !bytes.Equal(got, want) {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
		if bpp == 4 && s.Pix[i*bpp+3] != 0xFF {
			t.Fatalf("pixel %d alpha = %d, want 255", i, s.Pix[i*bpp+3])
		}
	}
}

func TestLoadRGBA2x2(t *testing.T) {
	for _, name := range []string{"rgba-2x2.png", "rgba-2x2.bmp"} {
		s := load(t, name)
		if s.Format != pixel.RGBA {
			t.Fatalf("%s: Format = %s, want rgba", name, s.Format)
		}
		if s.Depth() != 32 {
			t.Fatalf("%s: Depth() = %d, want 32", name, s.Depth())
		}
		checkGrid(t, s, 4)
	}
}

func TestLoadRGB2x2(t *testing.T) {
	for _, name := range []string{"rgb-2x2.png", "rgb-2x2.bmp"} {
		s := load(t, name)
		if s.Format != pixel.RGB {
			t.Fatalf("%s: Format = %s, want rgb", name, s.Format)
		}
		if s.Depth() != 24 {
			t.Fatalf("%s: Depth() = %d, want 24", name, s.Depth())
		}
		checkGrid(t, s, 3)
	}
}

func TestLoadKeepsStraightAlpha(t *testing.T) {
	s := load(t, "alpha-1x1.png")
	want := []byte{10, 20, 30, 128}
	if !bytes.Equal(s.Pix, want) {
		t.Fatalf("Pix = %v, want %v", s.Pix, want)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(missing) err = %v, want ErrNotFound", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Fatalf("Load(missing) err = %v, also matches ErrMalformed", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	for _, name := range []string{"truncated.png", "notimage.png"} {
		_, err := Load(filepath.Join("testdata", name))
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("Load(%s) err = %v, want ErrMalformed", name, err)
		}
		if errors.Is(err, ErrNotFound) {
			t.Fatalf("Load(%s) err = %v, also matches ErrNotFound", name, err)
		}
	}
}

func TestLoadUnsupportedLayout(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "gray-2x2.png"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load(gray) err = %v, want ErrUnsupportedFormat", err)
	}
}

// bmp2x2 builds an uncompressed 2x2 BMP with the given bit depth and
// zeroed pixel rows.
func bmp2x2(bpp int) []byte {
	stride := (2*bpp + 31) / 32 * 4
	const headers = 14 + 40
	palette := 0
	if bpp <= 8 {
		palette = 4 << bpp
	}
	size := headers + palette + 2*stride
	b := make([]byte, size)
	b[0], b[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(b[2:], uint32(size))
	binary.LittleEndian.PutUint32(b[10:], uint32(headers+palette))
	binary.LittleEndian.PutUint32(b[14:], 40)
	binary.LittleEndian.PutUint32(b[18:], 2)
	binary.LittleEndian.PutUint32(b[22:], 2)
	binary.LittleEndian.PutUint16(b[26:], 1)
	binary.LittleEndian.PutUint16(b[28:], uint16(bpp))
	binary.LittleEndian.PutUint32(b[34:], uint32(2*stride))
	return b
}

func TestDecodeUnsupportedBMPDepths(t *testing.T) {
	for _, bpp := range []int{1, 4, 8, 16} {
		_, err := Decode(bytes.NewReader(bmp2x2(bpp)))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("Decode(%d bpp) err = %v, want ErrUnsupportedFormat", bpp, err)
		}
		if errors.Is(err, ErrMalformed) {
			t.Fatalf("Decode(%d bpp) err = %v, also matches ErrMalformed", bpp, err)
		}
	}
}

func TestDecodeBMP24Builder(t *testing.T) {
	s, err := Decode(bytes.NewReader(bmp2x2(24)))
	if err != nil {
		t.Fatalf("Decode(24 bpp): %v", err)
	}
	if s.Format != pixel.RGB || len(s.Pix) != 2*2*3 {
		t.Fatalf("Decode(24 bpp) = %s with %d bytes, want rgb with 12", s.Format, len(s.Pix))
	}
}

func TestDecodeTruncatedBMPIsMalformed(t *testing.T) {
	b := bmp2x2(24)
	_, err := Decode(bytes.NewReader(b[:len(b)-4]))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Decode(truncated bmp) err = %v, want ErrMalformed", err)
	}
}

func TestImage(t *testing.T) {
	s := load(t, "rgb-2x2.png")
	img := s.Image()
	if got := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA); got != (color.NRGBA{R: 0xFF, G: 0xFF, A: 0xFF}) {
		t.Fatalf("Image().At(1, 1) = %v, want yellow", got)
	}
}

func TestBlitSameFormat(t *testing.T) {
	s := load(t, "rgb-2x2.png")
	dst, _ := pixel.New(4, 3, pixel.RGB)

	s.Blit(dst, 1, 1)

	if got := dst.At(1, 1); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("At(1, 1) = %v, want red", got)
	}
	if got := dst.At(2, 2); got != (color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}) {
		t.Fatalf("At(2, 2) = %v, want yellow", got)
	}
	if got := dst.At(0, 0); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("At(0, 0) = %v, want black", got)
	}
}

func TestBlitClipsAndConverts(t *testing.T) {
	s := load(t, "rgba-2x2.png")
	dst, _ := pixel.New(2, 2, pixel.RGB)

	s.Blit(dst, -1, -1)

	// Only the yellow pixel lands at (0, 0).
	if got := dst.At(0, 0); got != (color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}) {
		t.Fatalf("At(0, 0) = %v, want yellow", got)
	}
	if got := dst.At(1, 1); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("At(1, 1) = %v, want black", got)
	}

	s.Blit(dst, 5, 5)
	s.Blit(dst, -5, 0)
}
