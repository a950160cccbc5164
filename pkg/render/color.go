// pkg/render/color.go
package render

import "image/color"

// HouseColors holds the palette used to draw the house cutaway.
type HouseColors struct {
	Background  color.RGBA
	Grass       color.RGBA
	Body        color.RGBA
	Outline     color.RGBA
	Glass       color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
