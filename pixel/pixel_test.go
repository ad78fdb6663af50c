package pixel

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"
)

func TestSizeFormula(t *testing.T) {
	cases := []struct {
		w, h int
		f    Format
		want int
	}{
		{8, 1, BlackWhite, 1},
		{800, 600, BlackWhite, 60000},
		{3, 8, BlackWhite, 3},
		{7, 5, GrayScale, 35},
		{7, 5, RGB, 105},
		{7, 5, RGBA, 140},
	}
	for _, tc := range cases {
		b, err := New(tc.w, tc.h, tc.f)
		if err != nil {
			t.Fatalf("New(%d, %d, %s): %v", tc.w, tc.h, tc.f, err)
		}
		if len(b.Pix) != tc.want {
			t.Fatalf("New(%d, %d, %s) len = %d, want %d", tc.w, tc.h, tc.f, len(b.Pix), tc.want)
		}
	}
}

func TestNewBlackWhiteNotMultipleOf8(t *testing.T) {
	for _, dim := range [][2]int{{3, 3}, {7, 1}, {5, 5}, {1, 9}} {
		b, err := New(dim[0], dim[1], BlackWhite)
		if !errors.Is(err, ErrBadDimensions) {
			t.Fatalf("New(%d, %d, bw) err = %v, want ErrBadDimensions", dim[0], dim[1], err)
		}
		if b != nil {
			t.Fatalf("New(%d, %d, bw) returned a buffer on error", dim[0], dim[1])
		}
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(0, 10, RGB); !errors.Is(err, ErrBadDimensions) {
		t.Fatalf("New(0, 10) err = %v, want ErrBadDimensions", err)
	}
	if _, err := New(10, -1, RGB); !errors.Is(err, ErrBadDimensions) {
		t.Fatalf("New(10, -1) err = %v, want ErrBadDimensions", err)
	}
	if _, err := New(10, 10, Format(0)); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("New(format 0) err = %v, want ErrUnknownFormat", err)
	}
	if _, err := New(10, 10, Format(99)); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("New(format 99) err = %v, want ErrUnknownFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{BlackWhite, GrayScale, RGB, RGBA} {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f.String(), err)
		}
		if got != f {
			t.Fatalf("ParseFormat(%q) = %v, want %v", f.String(), got, f)
		}
	}
	if _, err := ParseFormat("cmyk"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseFormat(cmyk) err = %v, want ErrUnknownFormat", err)
	}
}

func TestConvertRGBForcesOpaque(t *testing.T) {
	b, _ := New(13, 7, RGB)
	rand.New(rand.NewSource(1)).Read(b.Pix)
	dst := make([]byte, b.PresentSize())

	if err := Convert(dst, b); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	for i := 0; i < 13*7; i++ {
		s, d := i*3, i*4
		if dst[d] != b.Pix[s] || dst[d+1] != b.Pix[s+1] || dst[d+2] != b.Pix[s+2] {
			t.Fatalf("pixel %d = %v, want %v", i, dst[d:d+3], b.Pix[s:s+3])
		}
		if dst[d+3] != 0xFF {
			t.Fatalf("pixel %d alpha = %d, want 255", i, dst[d+3])
		}
	}
}

func TestConvertRGBAPassesAlpha(t *testing.T) {
	b, _ := New(4, 4, RGBA)
	rand.New(rand.NewSource(2)).Read(b.Pix)
	dst := make([]byte, b.PresentSize())

	if err := Convert(dst, b); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	for i := range b.Pix {
		if dst[i] != b.Pix[i] {
			t.Fatalf("byte %d = %d, want %d", i, dst[i], b.Pix[i])
		}
	}
}

func TestConvertGrayScale(t *testing.T) {
	b, _ := New(3, 1, GrayScale)
	copy(b.Pix, []byte{0x00, 0x7F, 0xFF})
	dst := make([]byte, b.PresentSize())

	if err := Convert(dst, b); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0xFF,
		0x7F, 0x7F, 0x7F, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestConvertBlackWhiteMSBFirst(t *testing.T) {
	b, _ := New(8, 1, BlackWhite)
	b.Pix[0] = 0b10110000
	dst := make([]byte, b.PresentSize())

	if err := Convert(dst, b); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	white := []bool{true, false, true, true, false, false, false, false}
	for i, w := range white {
		d := i * 4
		var v byte
		if w {
			v = 0xFF
		}
		if dst[d] != v || dst[d+1] != v || dst[d+2] != v || dst[d+3] != 0xFF {
			t.Fatalf("pixel %d = %v, want white=%v", i, dst[d:d+4], w)
		}
	}
}

func TestConvertBlackWhiteContinuesAcrossRows(t *testing.T) {
	// 3 pixels per row: pixel 3 is the first of row 1 and still reads bit 4
	// of byte 0.
	b, _ := New(3, 8, BlackWhite)
	b.Pix[0] = 0b00010000
	dst := make([]byte, b.PresentSize())

	if err := Convert(dst, b); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	for i := 0; i < 24; i++ {
		want := byte(0)
		if i == 3 {
			want = 0xFF
		}
		if dst[i*4] != want {
			t.Fatalf("pixel %d = %d, want %d", i, dst[i*4], want)
		}
	}
	if got := b.At(0, 1); got.R != 0xFF {
		t.Fatalf("At(0, 1) = %v, want white", got)
	}
}

func TestConvertShortDestination(t *testing.T) {
	b, _ := New(2, 2, RGB)
	if err := Convert(make([]byte, 15), b); !errors.Is(err, ErrShortDestination) {
		t.Fatalf("Convert err = %v, want ErrShortDestination", err)
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	b := &Buffer{Pix: make([]byte, 4), width: 2, height: 2, format: Format(42)}
	if err := Convert(make([]byte, 16), b); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Convert err = %v, want ErrUnknownFormat", err)
	}
}

func TestSetAtRoundTrip(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	for _, f := range []Format{RGB, RGBA} {
		b, _ := New(4, 2, f)
		b.Set(3, 1, red)
		if got := b.At(3, 1); got != red {
			t.Fatalf("%s: At(3, 1) = %v, want %v", f, got, red)
		}
		if got := b.At(0, 0); got.R != 0 {
			t.Fatalf("%s: At(0, 0) = %v, want black", f, got)
		}
	}

	b, _ := New(4, 2, BlackWhite)
	b.Set(1, 1, color.White)
	if b.Pix[0] != 0b00000100 {
		t.Fatalf("bw Pix[0] = %08b, want 00000100", b.Pix[0])
	}
	b.Set(1, 1, color.Black)
	if b.Pix[0] != 0 {
		t.Fatalf("bw Pix[0] = %08b after clear, want 0", b.Pix[0])
	}

	g, _ := New(2, 2, GrayScale)
	g.Set(1, 0, color.White)
	if g.Pix[1] != 0xFF {
		t.Fatalf("gray Pix[1] = %d, want 255", g.Pix[1])
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	b, _ := New(2, 2, RGB)
	b.Set(-1, 0, color.White)
	b.Set(2, 0, color.White)
	b.Set(0, 5, color.White)
	for i, v := range b.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0", i, v)
		}
	}
	if got := b.At(9, 9); got != (color.RGBA{}) {
		t.Fatalf("At(9, 9) = %v, want zero", got)
	}
}

func TestFillRectClips(t *testing.T) {
	b, _ := New(4, 4, GrayScale)
	b.FillRect(2, 2, 10, 10, color.White)
	want := []byte{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0xFF, 0xFF,
		0, 0, 0xFF, 0xFF,
	}
	for i := range want {
		if b.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", b.Pix, want)
		}
	}
	b.Clear()
	for i, v := range b.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d after Clear, want 0", i, v)
		}
	}
}
