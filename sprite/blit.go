package sprite

import "pixwin/pixel"

// Blit draws s into dst with its top-left corner at (x, y), clipped to dst.
// RGB and RGBA destinations take a straight byte copy (alpha is copied, not
// blended); other formats go through pixel.Buffer.Set.
func (s *Sprite) Blit(dst *pixel.Buffer, x, y int) {
	srcX, srcY, w, h := 0, 0, s.Width, s.Height
	if x < 0 {
		srcX = -x
		w += x
		x = 0
	}
	if y < 0 {
		srcY = -y
		h += y
		y = 0
	}
	if x+w > dst.Width() {
		w = dst.Width() - x
	}
	if y+h > dst.Height() {
		h = dst.Height() - y
	}
	if w <= 0 || h <= 0 {
		return
	}

	sbpp := s.Format.Depth() / 8
	if dst.Format() == s.Format {
		stride := dst.Stride()
		for row := 0; row < h; row++ {
			so := ((srcY+row)*s.Width + srcX) * sbpp
			do := (y+row)*stride + x*sbpp
			copy(dst.Pix[do:do+w*sbpp], s.Pix[so:so+w*sbpp])
		}
		return
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			dst.Set(x+col, y+row, s.at(srcX+col, srcY+row))
		}
	}
}
