package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/sierpinski/internal/app"
	"github.com/rook-computer/sierpinski/internal/chaos"
	"github.com/rook-computer/sierpinski/internal/config"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(os.Stderr, "[!] Error:", err)
		return exitUsage
	}

	// Best-effort: send stdout/stderr (panics included) to a file.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	if cfg.Verbose {
		a.Logger = app.NewLogrusLogger(os.Stderr)
	}
	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "[!] Error:", err)
		if isUsageError(err) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}

func isUsageError(err error) bool {
	return errors.Is(err, config.ErrInvalidIterationCount) ||
		errors.Is(err, config.ErrInvalidDimensions) ||
		errors.Is(err, config.ErrInvalidColor) ||
		errors.Is(err, config.ErrMissingOutput) ||
		errors.Is(err, chaos.ErrInvalidDimensions)
}

// parseConfig layers flags and an optional positional iteration count over
// the environment defaults.
func parseConfig(args []string) (config.Config, error) {
	cfg, err := config.DefaultConfigFromEnv()
	if err != nil {
		return config.Config{}, err
	}

	fs := flag.NewFlagSet("sierpinski", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: sierpinski [flags] [iterations]\n")
		fs.PrintDefaults()
	}
	iterations := fs.Int("n", cfg.Iterations, "number of chaos game iterations; also configurable via "+config.EnvIterations)
	output := fs.String("o", cfg.Output, "output PNG path; also configurable via "+config.EnvOutput)
	width := fs.Int("width", cfg.Width, "image width in pixels; also configurable via "+config.EnvWidth)
	height := fs.Int("height", cfg.Height, "image height in pixels; also configurable via "+config.EnvHeight)
	red := fs.Uint("r", uint(cfg.Color.R), "draw color red channel")
	green := fs.Uint("g", uint(cfg.Color.G), "draw color green channel")
	blue := fs.Uint("b", uint(cfg.Color.B), "draw color blue channel")
	alpha := fs.Uint("a", uint(cfg.Color.A), "draw color alpha channel")
	verbose := fs.Bool("v", cfg.Verbose, "log resolved parameters and progress to stderr; also configurable via "+config.EnvVerbose)
	seed := fs.Uint64("seed", cfg.Seed, "random seed for reproducible output (random when unset); also configurable via "+config.EnvSeed)
	caption := fs.String("caption", "", "draw this text in the bottom-left corner")
	qr := fs.Bool("qr", false, "stamp a QR code with the render parameters in the bottom-right corner")
	fbDevice := fs.String("fb", "", "also show the result on this framebuffer device, e.g. /dev/fb0")
	fbHold := fs.Duration("fb-hold", cfg.FramebufferHold, "how long to keep the image on the framebuffer")
	stdioLog := fs.String("stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg.Iterations = *iterations
	if fs.NArg() > 0 {
		n, err := config.ParseIterations(fs.Arg(0))
		if err != nil {
			return config.Config{}, err
		}
		cfg.Iterations = n
	}
	cfg.Output = *output
	cfg.Width = *width
	cfg.Height = *height
	cfg.Verbose = *verbose
	cfg.Caption = *caption
	cfg.QRCode = *qr
	cfg.FramebufferDevice = *fbDevice
	cfg.FramebufferHold = *fbHold
	cfg.StdioLog = *stdioLog

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seeded = true
		}
	})
	cfg.Seed = *seed

	channels := []struct {
		name string
		v    uint
		dst  *uint8
	}{
		{"r", *red, &cfg.Color.R},
		{"g", *green, &cfg.Color.G},
		{"b", *blue, &cfg.Color.B},
		{"a", *alpha, &cfg.Color.A},
	}
	for _, ch := range channels {
		v, err := config.Channel(ch.name, ch.v)
		if err != nil {
			return config.Config{}, err
		}
		*ch.dst = v
	}

	return cfg, cfg.Validate()
}
