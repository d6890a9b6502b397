package render

import (
	"bytes"
	"fmt"
	"human-sourced-registry/app/server/constants"
	"image"
	"image/color"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// QRCode 以 M 级纠错编码 content ，留 1 个模块的静区，按固定倍率输出 PNG
func QRCode(content string) ([]byte, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	// 库自带的边框固定为 4 个模块，这里去掉后自己加
	q.DisableBorder = true
	bitmap := q.Bitmap()

	modules := len(bitmap) + 2*constants.QRCodeMargin
	size := modules * constants.QRCodeScale

	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{color.White, color.Black})
	for y, row := range bitmap {
		for x, set := range row {
			if !set {
				continue
			}
			x0 := (x + constants.QRCodeMargin) * constants.QRCodeScale
			y0 := (y + constants.QRCodeMargin) * constants.QRCodeScale
			for py := y0; py < y0+constants.QRCodeScale; py++ {
				for px := x0; px < x0+constants.QRCodeScale; px++ {
					img.SetColorIndex(px, py, 1)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	return buf.Bytes(), nil
}
