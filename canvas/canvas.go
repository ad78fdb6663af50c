// Package canvas draws shapes and text into a pixel.Buffer through the
// tinygo display driver interface, so tinyfont and other driver-level
// helpers work on any buffer format.
package canvas

import (
	"errors"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"pixwin/pixel"
)

var (
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.RGBA{A: 0xff}
	Red   = color.RGBA{R: 0xff, A: 0xff}
)

// Font is the default text font.
var Font tinyfont.Fonter = &tinyfont.TomThumb

var _ drivers.Displayer = (*Canvas)(nil)

// Canvas adapts a pixel.Buffer to drivers.Displayer. Display is a no-op;
// the owning surface presents the buffer.
type Canvas struct {
	buf *pixel.Buffer
}

func New(buf *pixel.Buffer) *Canvas {
	return &Canvas{buf: buf}
}

// Size reports the buffer size, capped at the largest int16 coordinate span
// drivers can address.
func (c *Canvas) Size() (x, y int16) {
	return clamp16(c.buf.Width()), clamp16(c.buf.Height())
}

func clamp16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.buf.Set(int(x), int(y), col)
}

func (c *Canvas) Display() error { return nil }

func (c *Canvas) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return errors.New("canvas: rotation not supported")
	}
	return nil
}

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	if width <= 0 || height <= 0 {
		return errors.New("canvas: invalid rectangle")
	}
	c.buf.FillRect(int(x), int(y), int(width), int(height), col)
	return nil
}

// Fill paints the whole buffer.
func (c *Canvas) Fill(col color.RGBA) {
	c.buf.FillRect(0, 0, c.buf.Width(), c.buf.Height(), col)
}

// Square draws a size x size square with its top-left corner at (x, y).
func (c *Canvas) Square(x, y, size int, col color.RGBA) {
	c.buf.FillRect(x, y, size, size, col)
}

// Text writes s with its top-left corner at (x, y) using Font.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(c, Font, int16(x), int16(y)+int16(Font.GetYAdvance()), s, col)
}

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(Font, s)
	return int(w)
}
