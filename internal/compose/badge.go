package compose

import (
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// Badge renders a QR code for url, used as an optional corner element that
// reveals together with the subtitle. The code is generated once per render
// and composited per frame.
func Badge(url string, size int, fg, bg color.RGBA) (image.Image, error) {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg
	return q.Image(size), nil
}
