package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
// A rect smaller than twice the padding collapses to an empty rectangle.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	if rect.Dx() <= 2*paddingPx || rect.Dy() <= 2*paddingPx {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	return image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// AnchorBottomRight returns a rectangle of size (widthPx,heightPx) placed in the bottom-right of rect.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx, heightPx = clampSize(rect, widthPx, heightPx)
	return image.Rect(rect.Max.X-widthPx, rect.Max.Y-heightPx, rect.Max.X, rect.Max.Y)
}

// Center returns a rectangle of size (widthPx,heightPx) centred in rect.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx, heightPx = clampSize(rect, widthPx, heightPx)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// FitAspect returns the largest (width,height) with the aspect ratio of
// srcW:srcH that fits in rect.
func FitAspect(rect image.Rectangle, srcW, srcH int) (int, int) {
	rect = Normalize(rect)
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	w, h := rect.Dx(), srcH*rect.Dx()/srcW
	if h > rect.Dy() {
		w, h = srcW*rect.Dy()/srcH, rect.Dy()
	}
	return w, h
}

func clampSize(rect image.Rectangle, widthPx, heightPx int) (int, int) {
	widthPx = max(0, min(widthPx, rect.Dx()))
	heightPx = max(0, min(heightPx, rect.Dy()))
	return widthPx, heightPx
}
