package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/sierpinski/internal/render/layout"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ErrNoRoom is returned when an annotation does not fit on the canvas.
var ErrNoRoom = errors.New("canvas too small for annotation")

// captionFontTTF is the TrueType font used for captions.
var captionFontTTF = goregular.TTF

// Annotator draws optional overlays onto a finished canvas.
type Annotator struct {
	Logger Logger
}

// Caption draws text along the bottom-left edge of img.
// It falls back to the built-in bitmap face if the TrueType font cannot be parsed.
func (a Annotator) Caption(img draw.Image, text string, col color.NRGBA) error {
	if text == "" {
		return nil
	}
	area := layout.Inset(img.Bounds(), AnnotationPadding)
	if area.Empty() {
		return fmt.Errorf("caption: %w", ErrNoRoom)
	}

	tt, err := truetype.Parse(captionFontTTF)
	if err != nil {
		a.errorf("truetype parse failed, using basicfont: %v", err)
		drawBasicText(img, area, text, col)
		return nil
	}

	face := truetype.NewFace(tt, &truetype.Options{Size: CaptionSize, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()
	baseline := area.Max.Y - face.Metrics().Descent.Ceil()

	fc := freetype.NewContext()
	fc.SetDPI(72)
	fc.SetFont(tt)
	fc.SetFontSize(CaptionSize)
	fc.SetHinting(font.HintingFull)
	fc.SetClip(area)
	fc.SetDst(img)
	fc.SetSrc(image.NewUniform(col))
	if _, err := fc.DrawString(text, freetype.Pt(area.Min.X, baseline)); err != nil {
		return fmt.Errorf("caption: %w", err)
	}
	a.infof("caption %q drawn at baseline %d", text, baseline)
	return nil
}

func drawBasicText(img draw.Image, area image.Rectangle, text string, col color.NRGBA) {
	face := basicfont.Face7x13
	baseline := area.Max.Y - face.Metrics().Descent.Ceil()
	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: face}
	drawer.Dot = fixed.P(area.Min.X, baseline)
	drawer.DrawString(text)
}

// QRCode stamps the render parameters as a QR code into the bottom-right
// corner of img, at most half the shorter side of the padded canvas.
func (a Annotator) QRCode(img draw.Image, payload string) error {
	if payload == "" {
		return nil
	}
	area := layout.Inset(img.Bounds(), AnnotationPadding)
	code, err := parametersQRCode(payload, min(area.Dx(), area.Dy())/2)
	if err != nil {
		return fmt.Errorf("qr code: %w", err)
	}
	b := code.Bounds()
	if b.Dx() > area.Dx() || b.Dy() > area.Dy() {
		return fmt.Errorf("qr code %dx%d on %dx%d: %w", b.Dx(), b.Dy(), img.Bounds().Dx(), img.Bounds().Dy(), ErrNoRoom)
	}
	dst := layout.AnchorBottomRight(area, b.Dx(), b.Dy())
	draw.Draw(img, dst, code, b.Min, draw.Src)
	a.infof("qr code stamped at %v", dst)
	return nil
}

// parametersQRCode encodes payload at medium recovery. The result grows past
// sizePx when the payload needs more modules than fit.
func parametersQRCode(payload string, sizePx int) (image.Image, error) {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return code.Image(sizePx), nil
}

func (a Annotator) infof(format string, args ...interface{}) {
	if a.Logger != nil {
		a.Logger.Infof("annotate", format, args...)
	}
}

func (a Annotator) errorf(format string, args ...interface{}) {
	if a.Logger != nil {
		a.Logger.Errorf("annotate", format, args...)
	}
}
