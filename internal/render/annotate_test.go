package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPainted(img *image.NRGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.NRGBAAt(x, y) != Background {
				n++
			}
		}
	}
	return n
}

func TestCaptionDrawsAlongBottom(t *testing.T) {
	img := NewCanvas(240, 120).Image()
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	require.NoError(t, Annotator{}.Caption(img, "n=1000", white))

	assert.Positive(t, countPainted(img, image.Rect(0, 60, 240, 120)))
	assert.Zero(t, countPainted(img, image.Rect(0, 0, 240, 60)))
}

func TestCaptionEmptyIsNoop(t *testing.T) {
	img := NewCanvas(50, 50).Image()
	require.NoError(t, Annotator{}.Caption(img, "", red))
	assert.Zero(t, countPainted(img, img.Bounds()))
}

func TestCaptionFallsBackToBasicFont(t *testing.T) {
	orig := captionFontTTF
	t.Cleanup(func() { captionFontTTF = orig })
	captionFontTTF = []byte("not a font")

	img := NewCanvas(200, 60).Image()
	log := &recordingLogger{}
	require.NoError(t, Annotator{Logger: log}.Caption(img, "fallback", red))

	assert.Positive(t, countPainted(img, img.Bounds()))
	assert.Equal(t, []string{"annotate"}, log.errors)
}

func TestQRCodeStampsBottomRight(t *testing.T) {
	img := NewCanvas(300, 300).Image()

	require.NoError(t, Annotator{}.QRCode(img, "n=5 size=10x10"))

	assert.Zero(t, countPainted(img, image.Rect(0, 0, 150, 150)))
	assert.Positive(t, countPainted(img, image.Rect(150, 150, 300, 300)))
	assert.Equal(t, Background, img.NRGBAAt(299, 299), "padding is left untouched")
}

func TestQRCodeNoRoom(t *testing.T) {
	img := NewCanvas(20, 20).Image()
	assert.ErrorIs(t, Annotator{}.QRCode(img, "payload"), ErrNoRoom)
}

func TestQRCodeEmptyPayloadIsNoop(t *testing.T) {
	img := NewCanvas(300, 300).Image()
	require.NoError(t, Annotator{}.QRCode(img, ""))
	assert.Zero(t, countPainted(img, img.Bounds()))
}

func TestParametersQRCodeSize(t *testing.T) {
	code, err := parametersQRCode("n=5 size=10x10", 142)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 142, 142), code.Bounds())

	code, err = parametersQRCode("n=5 size=10x10", 1)
	require.NoError(t, err)
	assert.Greater(t, code.Bounds().Dx(), 1, "grows to fit all modules")
}
