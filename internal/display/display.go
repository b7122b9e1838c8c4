// Package display shows a rendered image on a Linux framebuffer.
package display

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/sierpinski/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// ErrUnsupported is returned by Show on platforms without a framebuffer.
var ErrUnsupported = errors.New("framebuffer display not supported on this platform")

// Backdrop fills the parts of the screen the image does not cover.
var Backdrop = color.RGBA{A: 0xFF}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Compose letterboxes img into a frame of the given bounds, keeping its aspect
// ratio. Nearest-neighbour sampling keeps the two-color look of the render.
func Compose(img image.Image, bounds image.Rectangle) *image.RGBA {
	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, &image.Uniform{C: Backdrop}, image.Point{}, draw.Src)
	src := img.Bounds()
	w, h := layout.FitAspect(bounds, src.Dx(), src.Dy())
	if w == 0 || h == 0 {
		return frame
	}
	dst := layout.Center(bounds, w, h)
	xdraw.NearestNeighbor.Scale(frame, dst, img, src, xdraw.Over, nil)
	return frame
}
