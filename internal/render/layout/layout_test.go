package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInset(t *testing.T) {
	assert.Equal(t, image.Rect(8, 8, 92, 42), Inset(image.Rect(0, 0, 100, 50), 8))
	assert.Equal(t, image.Rect(0, 0, 10, 10), Inset(image.Rect(0, 0, 10, 10), 0))
	assert.True(t, Inset(image.Rect(0, 0, 10, 10), 5).Empty())
}

func TestNormalize(t *testing.T) {
	r := image.Rectangle{Min: image.Pt(10, 20), Max: image.Pt(0, 5)}
	assert.Equal(t, image.Rect(0, 5, 10, 20), Normalize(r))
}

func TestAnchors(t *testing.T) {
	r := image.Rect(10, 10, 110, 60)
	assert.Equal(t, image.Rect(90, 50, 110, 60), AnchorBottomRight(r, 20, 10))
	assert.Equal(t, image.Rect(10, 10, 110, 60), AnchorBottomRight(r, 500, 500), "size clamps to rect")
	assert.Equal(t, image.Rect(50, 30, 70, 40), Center(r, 20, 10))
}

func TestFitAspect(t *testing.T) {
	r := image.Rect(0, 0, 1920, 1080)

	w, h := FitAspect(r, 1024, 1024)
	assert.Equal(t, [2]int{1080, 1080}, [2]int{w, h})

	w, h = FitAspect(r, 400, 100)
	assert.Equal(t, [2]int{1920, 480}, [2]int{w, h})

	w, h = FitAspect(r, 0, 10)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
