package pixel

import "fmt"

// PresentSize returns the length of the presentation image for b.
func (b *Buffer) PresentSize() int { return b.width * b.height * 4 }

// Convert writes b as a 32-bit r, g, b, a image into dst. dst is reused
// across frames and never reallocated.
func Convert(dst []byte, b *Buffer) error {
	n := b.width * b.height
	if len(dst) < n*4 {
		return fmt.Errorf("%w: have %d, need %d", ErrShortDestination, len(dst), n*4)
	}
	switch b.format {
	case RGB:
		convertRGB(dst, b.Pix, n)
	case RGBA:
		copy(dst[:n*4], b.Pix[:n*4])
	case GrayScale:
		convertGray(dst, b.Pix, n)
	case BlackWhite:
		convertBW(dst, b.Pix, n)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, b.format)
	}
	return nil
}

func convertRGB(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		s := i * 3
		d := i * 4
		dst[d+0] = src[s+0]
		dst[d+1] = src[s+1]
		dst[d+2] = src[s+2]
		dst[d+3] = 0xFF
	}
}

func convertGray(dst, src []byte, n int) {
	for i := 0; i < n; i++ {
		v := src[i]
		d := i * 4
		dst[d+0] = v
		dst[d+1] = v
		dst[d+2] = v
		dst[d+3] = 0xFF
	}
}

// convertBW unpacks the flattened pixel stream. The shift runs 7..0 and wraps
// every 8 pixels regardless of row boundaries.
func convertBW(dst, src []byte, n int) {
	shift := 7
	for i := 0; i < n; i++ {
		var v byte
		if src[i/8]>>shift&1 != 0 {
			v = 0xFF
		}
		d := i * 4
		dst[d+0] = v
		dst[d+1] = v
		dst[d+2] = v
		dst[d+3] = 0xFF
		if shift == 0 {
			shift = 7
		} else {
			shift--
		}
	}
}
