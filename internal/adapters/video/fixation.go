// Package video renders the baseline visual stimulus: a fixation cross on a
// plain background, written out as an uncompressed YUV4MPEG2 stream with an
// optional fade to black.
package video

import (
	"image"
	"image/color"
	"image/draw"
)

// CrossParams describes the fixation cross frame.
type CrossParams struct {
	Width  int
	Height int

	// Cross arm length as a fraction of the shorter screen dimension.
	SizeRatio float64

	// Line thickness in pixels.
	Thickness int

	Background color.RGBA
}

func DefaultCrossParams() CrossParams {
	return CrossParams{
		Width:      1920,
		Height:     1080,
		SizeRatio:  0.1,
		Thickness:  8,
		Background: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// FixationCross draws a centered black cross on the background color.
func FixationCross(params CrossParams) *image.RGBA {
	bounds := image.Rect(0, 0, params.Width, params.Height)
	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, image.NewUniform(params.Background), image.Point{}, draw.Src)

	shorter := params.Width
	if params.Height < shorter {
		shorter = params.Height
	}
	arm := int(float64(shorter) * params.SizeRatio)

	x1 := (params.Width - arm) / 2
	x2 := x1 + arm
	y1 := (params.Height - arm) / 2
	y2 := y1 + arm
	centerX := (x1 + x2) / 2
	centerY := (y1 + y2) / 2

	black := image.NewUniform(color.RGBA{A: 255})
	half := params.Thickness / 2

	horizontal := image.Rect(x1, centerY-half, x2, centerY-half+params.Thickness)
	vertical := image.Rect(centerX-half, y1, centerX-half+params.Thickness, y2)
	draw.Draw(frame, horizontal, black, image.Point{}, draw.Src)
	draw.Draw(frame, vertical, black, image.Point{}, draw.Src)

	return frame
}
