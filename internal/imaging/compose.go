package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// StackVertical composites top above bottom on a fresh truecolor canvas.
//
// The canvas is max(widths) wide and the sum of the heights tall, filled
// with bg (black when bg is nil). top is pasted at (0,0) and bottom directly
// below it at (0, top height); both pastes are plain overwrite copies with
// no blending and no scaling. An image narrower than the canvas leaves the
// remainder of its rows at the fill color; there is no centering.
func StackVertical(top, bottom image.Image, bg color.Color) (*image.NRGBA, error) {
	topH := top.Bounds().Dy()
	width := max(top.Bounds().Dx(), bottom.Bounds().Dx())
	height := topH + bottom.Bounds().Dy()

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas size %dx%d", ErrComposition, width, height)
	}
	if bg == nil {
		bg = color.Black
	}

	canvas := imaging.New(width, height, bg)
	canvas = imaging.Paste(canvas, top, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, bottom, image.Pt(0, topH))
	return canvas, nil
}
