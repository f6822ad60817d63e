package scan

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNoCode reports a frame that decoded fine as an image but carries no
// readable code. Callers treat it as a non-event: the camera simply has
// not found the label yet.
var ErrNoCode = errors.New("no code in frame")

// Decoder finds QR and one-dimensional barcodes in still images. A zero
// Decoder is ready to use; readers are stateless.
type Decoder struct{}

var decodeHints = map[gozxing.DecodeHintType]interface{}{
	gozxing.DecodeHintType_TRY_HARDER: true,
}

// Decode reads one image and returns the text of the first code found.
// QR is tried first since that is what the printed labels carry; Code 128
// covers the older hand-applied barcode stickers.
func (d *Decoder) Decode(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", err
	}
	return d.DecodeImage(img)
}

func (d *Decoder) DecodeImage(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}

	if result, err := qrcode.NewQRCodeReader().Decode(bmp, decodeHints); err == nil {
		return result.GetText(), nil
	} else if !isNotFound(err) {
		return "", err
	}

	result, err := oned.NewCode128Reader().Decode(bmp, decodeHints)
	if err != nil {
		if isNotFound(err) {
			return "", ErrNoCode
		}
		return "", err
	}
	return result.GetText(), nil
}

// isNotFound separates "no code here" from real decode failures. gozxing
// signals the former with its NotFoundException type.
func isNotFound(err error) bool {
	_, ok := err.(gozxing.NotFoundException)
	return ok
}
