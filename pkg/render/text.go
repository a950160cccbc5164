package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawText draws s with its top edge at y. x is the left edge, or the centre
// when centered is set.
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	if centered {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, face, op)
}

// DrawCentered draws s centred horizontally on the screen.
func DrawCentered(dst *ebiten.Image, s string, face text.Face, y float64, clr color.Color) {
	w := dst.Bounds().Dx()
	DrawText(dst, s, face, float64(w)/2, y, clr, true)
}

// DrawShadowed draws centred text over a drop shadow offset by shadow px.
func DrawShadowed(dst *ebiten.Image, s string, face text.Face, y, shadow float64, clr, shadowClr color.Color) {
	w := float64(dst.Bounds().Dx())
	DrawText(dst, s, face, w/2+shadow, y+shadow, shadowClr, true)
	DrawText(dst, s, face, w/2, y, clr, true)
}

// DrawLinesShadowed draws a block of centred, shadowed lines whose vertical
// middle is at centerY.
func DrawLinesShadowed(dst *ebiten.Image, lines []string, face text.Face, centerY float64, clr, shadowClr color.Color) {
	lineH := face.Metrics().HAscent + face.Metrics().HDescent + 5
	y := centerY - lineH*float64(len(lines))/2
	for _, l := range lines {
		DrawShadowed(dst, l, face, y, 3, clr, shadowClr)
		y += lineH
	}
}

// TextWidth is the advance of s in face.
func TextWidth(s string, face text.Face) float64 {
	w, _ := text.Measure(s, face, 0)
	return w
}
