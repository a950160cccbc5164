// internal/ui/wave_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"policy-hero/internal/config"
	"policy-hero/internal/utils"
	"policy-hero/pkg/render"
)

// WaveIndicator shows the current wave in roman numerals with an outline.
type WaveIndicator struct {
	X, Y             float64
	OutlineThickness float64
}

func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, OutlineThickness: 2}
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int, face text.Face) {
	if wave <= 0 {
		return
	}
	s := "Wave " + utils.ToRoman(wave)
	clr := config.TextLightColor
	if wave > config.HeavyWaveFrom {
		clr = config.WarningColor
	}
	t := i.OutlineThickness
	for _, d := range [][2]float64{{-t, 0}, {t, 0}, {0, -t}, {0, t}} {
		render.DrawText(screen, s, face, i.X+d[0], i.Y+d[1], config.OutlineColor, true)
	}
	render.DrawText(screen, s, face, i.X, i.Y, clr, true)
}
