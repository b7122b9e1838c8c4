//go:build !linux

package display

import (
	"context"
	"image"
	"time"
)

func Show(ctx context.Context, devicePath string, img image.Image, hold time.Duration, log Logger) error {
	return ErrUnsupported
}
