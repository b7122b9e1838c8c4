package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/sierpinski/internal/chaos"
)

// ErrOutOfBounds means a point fell outside the canvas. The chaos game never
// produces one, so seeing it indicates a bug in the walk.
var ErrOutOfBounds = errors.New("point outside canvas")

// Canvas is the pixel buffer a render plots into. Pixels hold straight
// (non-premultiplied) alpha, which is what PNG stores.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas returns a width x height canvas filled with Background.
// Sizes rejected by chaos.ValidateDimensions must not reach it.
func NewCanvas(width, height int) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if Background != (color.NRGBA{}) {
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i+0] = Background.R
			img.Pix[i+1] = Background.G
			img.Pix[i+2] = Background.B
			img.Pix[i+3] = Background.A
		}
	}
	return &Canvas{img: img}
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image exposes the backing buffer.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Plot paints p with col. Plotting the same point twice is harmless.
func (c *Canvas) Plot(p chaos.Point, col color.NRGBA) error {
	if !(image.Point{X: p.X, Y: p.Y}).In(c.img.Rect) {
		return fmt.Errorf("plot (%d,%d) on %dx%d: %w", p.X, p.Y, c.Width(), c.Height(), ErrOutOfBounds)
	}
	c.img.SetNRGBA(p.X, p.Y, col)
	return nil
}

// Plotted counts pixels that differ from Background.
func (c *Canvas) Plotted() int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.img.NRGBAAt(x, y) != Background {
				n++
			}
		}
	}
	return n
}

// CountColors returns the number of distinct colors on the canvas.
func (c *Canvas) CountColors() int {
	seen := make(map[color.NRGBA]struct{})
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			seen[c.img.NRGBAAt(x, y)] = struct{}{}
		}
	}
	return len(seen)
}
