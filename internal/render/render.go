package render

import (
	"context"
	"image/color"
	"time"

	"github.com/rook-computer/sierpinski/internal/chaos"
)

// ctxCheckInterval is how many points are plotted between cancellation checks.
const ctxCheckInterval = 1 << 16

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Options describe one render.
type Options struct {
	Width      int
	Height     int
	Iterations int
	Color      color.NRGBA

	// Source drives the walk; nil means a randomly seeded source.
	Source chaos.Source
}

// Renderer runs the chaos game into a fresh canvas.
type Renderer struct {
	Options Options
	Logger  Logger
}

func NewRenderer(opts Options) *Renderer { return &Renderer{Options: opts} }

// Render plots Options.Iterations points and returns the filled canvas.
func (r *Renderer) Render(ctx context.Context) (*Canvas, error) {
	opts := r.Options
	corners, err := chaos.NewCorners(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	src := opts.Source
	if src == nil {
		src = chaos.NewRandomSource()
	}
	canvas := NewCanvas(opts.Width, opts.Height)
	game := chaos.NewGame(corners, opts.Width, opts.Height, src)
	r.infof("corners %v, %d iterations", game.Corners(), opts.Iterations)

	start := time.Now()
	count := 0
	err = game.Run(opts.Iterations, func(p chaos.Point) error {
		count++
		if count%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return canvas.Plot(p, opts.Color)
	})
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "stopped after %d points: %v", count, err)
		}
		return nil, err
	}
	r.infof("plotted %d points in %s", count, time.Since(start).Round(time.Millisecond))
	return canvas, nil
}

func (r *Renderer) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof("render", format, args...)
	}
}
