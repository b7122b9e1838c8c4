package chaos

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a width or height is not positive.
var ErrInvalidDimensions = errors.New("width and height must be positive")

// MaxPixels caps width*height so the 4-byte-per-pixel canvas stays allocatable.
const MaxPixels = 1 << 28

// ValidateDimensions rejects sizes that are not positive or would not fit in MaxPixels.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width > MaxPixels/height {
		return fmt.Errorf("%dx%d exceeds %d pixels: %w", width, height, MaxPixels, ErrInvalidDimensions)
	}
	return nil
}

// Point is a position on the canvas grid.
type Point struct {
	X int
	Y int
}

// Corners are the triangle vertices the walk moves toward.
// Order: bottom-left, bottom-right, top-center.
type Corners [3]Point

// NewCorners derives the triangle for a width x height canvas.
// The bottom corners sit one pixel past the last row and column; floor midpoints
// with any in-bounds point still land inside the canvas.
func NewCorners(width, height int) (Corners, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return Corners{}, fmt.Errorf("corners: %w", err)
	}
	return Corners{
		{X: 0, Y: height},
		{X: width, Y: height},
		{X: width / 2, Y: 0},
	}, nil
}

// Midpoint returns the floor midpoint of p and q.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}
