// internal/ui/meter_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"policy-hero/internal/config"
	"policy-hero/pkg/render"
)

const (
	meterBarWidth  = 260
	meterBarHeight = 16
	meterBorder    = 2
)

// MeterBar is a labelled horizontal gauge.
type MeterBar struct {
	X, Y float32
	Fill color.RGBA
	Back color.RGBA
}

func NewMeterBar(x, y float32, fill, back color.RGBA) *MeterBar {
	return &MeterBar{X: x, Y: y, Fill: fill, Back: back}
}

// Draw fills the bar to ratio (clamped to [0, 1]) and writes label below it.
func (b *MeterBar) Draw(screen *ebiten.Image, ratio float64, label string, face text.Face) {
	ratio = max(0, min(1, ratio))
	vector.DrawFilledRect(screen, b.X, b.Y, meterBarWidth, meterBarHeight, b.Back, false)
	if fill := float32(meterBarWidth * ratio); fill > 0 {
		vector.DrawFilledRect(screen, b.X, b.Y, fill, meterBarHeight, b.Fill, false)
	}
	vector.StrokeRect(screen, b.X, b.Y, meterBarWidth, meterBarHeight, meterBorder, config.OutlineColor, false)
	render.DrawText(screen, label, face, float64(b.X)+2, float64(b.Y+meterBarHeight)+3, config.TextLightColor, false)
}
