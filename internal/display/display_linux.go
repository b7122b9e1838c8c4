//go:build linux

package display

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	fb "github.com/gonutz/framebuffer"
	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// Show draws img on the framebuffer at devicePath and keeps it there for hold
// or until ctx is done. The console is switched to graphics mode meanwhile so
// the cursor does not blink over the image.
func Show(ctx context.Context, devicePath string, img image.Image, hold time.Duration, log Logger) error {
	dev, err := fb.Open(devicePath)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", devicePath, err)
	}
	defer dev.Close()
	bounds := dev.Bounds()
	infof(log, "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	if err := setConsoleMode(kdGraphics); err != nil {
		errorf(log, "KD_GRAPHICS failed: %v", err)
	} else {
		defer func() {
			if err := setConsoleMode(kdText); err != nil {
				errorf(log, "KD_TEXT failed: %v", err)
			}
		}()
	}

	blit(dev, Compose(img, bounds))
	infof(log, "image shown, holding for %s", hold)

	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func blit(dev *fb.Device, frame *image.RGBA) {
	b := frame.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := frame.RGBAAt(x, y)
			dev.Set(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
}

// setConsoleMode issues KDSETMODE on the active virtual terminal.
func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func infof(log Logger, format string, args ...interface{}) {
	if log != nil {
		log.Infof("fb", format, args...)
	}
}

func errorf(log Logger, format string, args ...interface{}) {
	if log != nil {
		log.Errorf("fb", format, args...)
	}
}
