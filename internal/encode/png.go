// Package encode writes rendered canvases to disk as PNG.
package encode

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// IOError reports a file system failure while writing or reading an image.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// EncodingError reports that the pixel buffer could not be serialized.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string { return "png encode: " + e.Err.Error() }
func (e *EncodingError) Unwrap() error { return e.Err }

// writeTracker remembers the first write error so PNG can tell a failing
// writer apart from an encoder failure.
type writeTracker struct {
	w   io.Writer
	err error
}

func (t *writeTracker) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}

// PNG encodes img to w with all four channels preserved.
func PNG(w io.Writer, img image.Image) error {
	tw := &writeTracker{w: w}
	if err := png.Encode(tw, img); err != nil {
		if tw.err != nil {
			return &IOError{Op: "write", Path: "<stream>", Err: tw.err}
		}
		return &EncodingError{Err: err}
	}
	return nil
}

// SavePNG creates (or truncates) path and writes img to it.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	buf := bufio.NewWriter(f)
	if err := PNG(buf, img); err != nil {
		if ioErr, ok := err.(*IOError); ok {
			ioErr.Path = path
		}
		return err
	}
	if err := buf.Flush(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// DecodePNG reads a PNG file back into memory.
func DecodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	img, err := png.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
