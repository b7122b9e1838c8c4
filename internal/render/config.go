package render

import "image/color"

// Annotation colors and sizing shared by the caption and QR stamp.
var (
	// Background is what a fresh canvas is filled with.
	Background = color.NRGBA{}

	// AnnotationPadding is the margin kept between annotations and the canvas edge.
	AnnotationPadding = 8

	// CaptionSize is the caption font size in points at 72 DPI.
	CaptionSize = 16.0
)
