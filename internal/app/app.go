package app

import (
	"context"
	"image"
	"time"

	"github.com/rook-computer/sierpinski/internal/chaos"
	"github.com/rook-computer/sierpinski/internal/config"
	"github.com/rook-computer/sierpinski/internal/display"
	"github.com/rook-computer/sierpinski/internal/encode"
	"github.com/rook-computer/sierpinski/internal/render"
)

// ShowFunc puts a finished image on screen.
type ShowFunc func(ctx context.Context, devicePath string, img image.Image, hold time.Duration, log display.Logger) error

type App struct {
	Config config.Config
	Logger Logger

	// Source overrides the random source picked from Config.
	Source chaos.Source
	Show   ShowFunc
}

func New(cfg config.Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}, Show: display.Show}
}

// Run renders the triangle, writes it to Config.Output and optionally shows it.
// Nothing is written when the configuration is invalid.
func (app *App) Run(ctx context.Context) error {
	cfg := app.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	src := app.source(&cfg)
	app.Logger.Infof("app", "parameters: %s", cfg)

	renderer := render.NewRenderer(render.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Iterations: cfg.Iterations,
		Color:      cfg.Color,
		Source:     src,
	})
	renderer.Logger = app.Logger
	canvas, err := renderer.Render(ctx)
	if err != nil {
		return err
	}

	annotator := render.Annotator{Logger: app.Logger}
	if cfg.QRCode {
		if err := annotator.QRCode(canvas.Image(), cfg.String()); err != nil {
			return err
		}
	}
	if err := annotator.Caption(canvas.Image(), cfg.Caption, cfg.Color); err != nil {
		return err
	}

	if err := encode.SavePNG(cfg.Output, canvas.Image()); err != nil {
		app.Logger.Errorf("encode", "%v", err)
		return err
	}
	app.Logger.Infof("encode", "wrote %s (%dx%d)", cfg.Output, canvas.Width(), canvas.Height())

	if cfg.FramebufferDevice != "" && app.Show != nil {
		if err := app.Show(ctx, cfg.FramebufferDevice, canvas.Image(), cfg.FramebufferHold, app.Logger); err != nil {
			app.Logger.Errorf("fb", "display failed: %v", err)
			return err
		}
	}
	return nil
}

// source picks the walk's random source. Unseeded runs draw a seed here and
// record it in cfg so the log line and QR payload can reproduce the image.
func (app *App) source(cfg *config.Config) chaos.Source {
	if app.Source != nil {
		return app.Source
	}
	if !cfg.Seeded {
		cfg.Seed = chaos.NewSeed()
		cfg.Seeded = true
	}
	return chaos.NewSeededSource(cfg.Seed)
}
