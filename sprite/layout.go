package sprite

import (
	"encoding/binary"
	"errors"
	"fmt"

	"pixwin/pixel"
)

// PNG color types from the IHDR chunk.
const (
	pngColorRGB  = 2
	pngColorRGBA = 6
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

var errUnknownHeader = errors.New("not a png or bmp header")

// nativeFormat reads the stored channel layout from the file header. Decoders
// in the standard library widen everything to RGBA, so the decoded image
// type cannot tell a 24-bit file from a 32-bit one. A recognized header with
// any other layout is ErrUnsupportedFormat even when a codec could read it.
func nativeFormat(head []byte) (pixel.Format, error) {
	switch {
	case len(head) >= 26 && string(head[:8]) == string(pngSignature) && string(head[12:16]) == "IHDR":
		depth, ct := head[24], head[25]
		if depth == 8 {
			switch ct {
			case pngColorRGB:
				return pixel.RGB, nil
			case pngColorRGBA:
				return pixel.RGBA, nil
			}
		}
		return 0, fmt.Errorf("%w: png color type %d, bit depth %d", ErrUnsupportedFormat, ct, depth)

	case len(head) >= 30 && head[0] == 'B' && head[1] == 'M':
		var bpp uint16
		if binary.LittleEndian.Uint32(head[14:18]) == 12 {
			bpp = binary.LittleEndian.Uint16(head[24:26])
		} else {
			bpp = binary.LittleEndian.Uint16(head[28:30])
		}
		switch bpp {
		case 24:
			return pixel.RGB, nil
		case 32:
			return pixel.RGBA, nil
		}
		return 0, fmt.Errorf("%w: bmp %d bits per pixel", ErrUnsupportedFormat, bpp)
	}
	return 0, errUnknownHeader
}
