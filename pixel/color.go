package pixel

import "image/color"

// Set writes c at (x, y) in the buffer's native format. Coordinates outside
// the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := y*b.width + x
	switch b.format {
	case RGB:
		o := i * 3
		b.Pix[o+0] = n.R
		b.Pix[o+1] = n.G
		b.Pix[o+2] = n.B
	case RGBA:
		o := i * 4
		b.Pix[o+0] = n.R
		b.Pix[o+1] = n.G
		b.Pix[o+2] = n.B
		b.Pix[o+3] = n.A
	case GrayScale:
		b.Pix[i] = luma(n.R, n.G, n.B)
	case BlackWhite:
		mask := byte(1) << (7 - i%8)
		if luma(n.R, n.G, n.B) >= 0x80 {
			b.Pix[i/8] |= mask
		} else {
			b.Pix[i/8] &^= mask
		}
	}
}

// At reads the pixel at (x, y) as presented on screen. Coordinates outside
// the buffer read as transparent black.
func (b *Buffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return color.RGBA{}
	}
	i := y*b.width + x
	switch b.format {
	case RGB:
		o := i * 3
		return color.RGBA{R: b.Pix[o], G: b.Pix[o+1], B: b.Pix[o+2], A: 0xFF}
	case RGBA:
		o := i * 4
		return color.RGBA{R: b.Pix[o], G: b.Pix[o+1], B: b.Pix[o+2], A: b.Pix[o+3]}
	case GrayScale:
		v := b.Pix[i]
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	case BlackWhite:
		var v byte
		if b.Pix[i/8]>>(7-i%8)&1 != 0 {
			v = 0xFF
		}
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	}
	return color.RGBA{}
}

// FillRect fills the rectangle at (x, y) clipped to the buffer.
func (b *Buffer) FillRect(x, y, w, h int, c color.Color) {
	x0 := clampInt(x, 0, b.width)
	y0 := clampInt(y, 0, b.height)
	x1 := clampInt(x+w, 0, b.width)
	y1 := clampInt(y+h, 0, b.height)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			b.Set(xx, yy, c)
		}
	}
}

// luma uses the same integer weights as color.GrayModel.
func luma(r, g, b uint8) uint8 {
	y := (19595*uint32(r)*0x101 + 38470*uint32(g)*0x101 + 7471*uint32(b)*0x101 + 1<<15) >> 24
	return uint8(y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
