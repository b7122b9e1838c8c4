package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rook-computer/sierpinski/internal/chaos"
)

const (
	EnvIterations = "SIERPINSKI_ITERATIONS"
	EnvOutput     = "SIERPINSKI_OUTPUT"
	EnvWidth      = "SIERPINSKI_WIDTH"
	EnvHeight     = "SIERPINSKI_HEIGHT"
	EnvVerbose    = "SIERPINSKI_VERBOSE"
	EnvSeed       = "SIERPINSKI_SEED"
	EnvStdioLog   = "SIERPINSKI_STDIO_LOG"
)

const (
	DefaultIterations = 1_000_000
	DefaultOutput     = "triangle.png"
	DefaultWidth      = 1024
	DefaultHeight     = 1024

	DefaultFramebufferHold = 5 * time.Second
)

// DefaultColor is the draw color when none is given: opaque red.
var DefaultColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

var (
	ErrInvalidIterationCount = errors.New("invalid iteration count")
	ErrInvalidDimensions     = errors.New("invalid image dimensions")
	ErrInvalidColor          = errors.New("invalid color channel")
	ErrMissingOutput         = errors.New("output path is empty")
)

// Config holds everything a single render run needs.
type Config struct {
	Iterations int
	Output     string
	Width      int
	Height     int
	Color      color.NRGBA // straight alpha, as given on the command line
	Verbose    bool

	// Seed is only used when Seeded is set; otherwise each run draws a fresh seed.
	Seed   uint64
	Seeded bool

	Caption string
	QRCode  bool

	// FramebufferDevice, when set, shows the result on that device for FramebufferHold.
	FramebufferDevice string
	FramebufferHold   time.Duration

	StdioLog string
}

// DefaultConfigFromEnv returns the built-in defaults overridden by SIERPINSKI_* variables.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		Iterations:      DefaultIterations,
		Output:          DefaultOutput,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		Color:           DefaultColor,
		FramebufferHold: DefaultFramebufferHold,
		StdioLog:        os.Getenv(EnvStdioLog),
	}

	if raw := os.Getenv(EnvIterations); raw != "" {
		n, err := ParseIterations(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvIterations, err)
		}
		cfg.Iterations = n
	}
	if raw := os.Getenv(EnvOutput); raw != "" {
		cfg.Output = raw
	}
	if raw := os.Getenv(EnvWidth); raw != "" {
		w, err := parseDimension(EnvWidth, raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Width = w
	}
	if raw := os.Getenv(EnvHeight); raw != "" {
		h, err := parseDimension(EnvHeight, raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Height = h
	}
	if raw := os.Getenv(EnvVerbose); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvVerbose, raw, err)
		}
		cfg.Verbose = parsed
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an unsigned integer (got %q): %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
		cfg.Seeded = true
	}

	return cfg, nil
}

// ParseIterations parses a positive iteration count.
func ParseIterations(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidIterationCount, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: you cannot get a Sierpinski triangle with %d iterations", ErrInvalidIterationCount, n)
	}
	return n, nil
}

func parseDimension(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer (got %q): %w", name, raw, ErrInvalidDimensions)
	}
	return v, nil
}

// Channel converts a flag value to a color channel, rejecting anything above 255.
func Channel(name string, v uint) (uint8, error) {
	if v > 255 {
		return 0, fmt.Errorf("%s must be in [0, 255] (got %d): %w", name, v, ErrInvalidColor)
	}
	return uint8(v), nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: you cannot get a Sierpinski triangle with %d iterations", ErrInvalidIterationCount, c.Iterations)
	}
	if err := chaos.ValidateDimensions(c.Width, c.Height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}
	if strings.TrimSpace(c.Output) == "" {
		return ErrMissingOutput
	}
	return nil
}

// String renders the resolved parameters for verbose logging and QR payloads.
func (c Config) String() string {
	seed := "random"
	if c.Seeded {
		seed = strconv.FormatUint(c.Seed, 10)
	}
	return fmt.Sprintf("n=%d size=%dx%d color=%d,%d,%d,%d seed=%s output=%s",
		c.Iterations, c.Width, c.Height, c.Color.R, c.Color.G, c.Color.B, c.Color.A, seed, c.Output)
}
