// internal/ui/phase_indicator.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"policy-hero/internal/app"
	"policy-hero/internal/config"
)

// PhaseIndicator is a coloured dot that pops briefly whenever the phase
// changes.
type PhaseIndicator struct {
	X, Y   float32
	Radius float32

	phase   app.Phase
	elapsed float64
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{X: x, Y: y, Radius: radius, elapsed: math.Inf(1)}
}

// Update tracks the phase and the time since it last changed.
func (i *PhaseIndicator) Update(deltaTime float64, phase app.Phase) {
	if phase != i.phase {
		i.phase = phase
		i.elapsed = 0
		return
	}
	i.elapsed += deltaTime
}

func (i *PhaseIndicator) Draw(screen *ebiten.Image) {
	scale := 1.0 + 0.3*math.Exp(-i.elapsed*8)
	r := i.Radius * float32(scale)
	clr := config.PhaseColors[0]
	if int(i.phase) < len(config.PhaseColors) {
		clr = config.PhaseColors[i.phase]
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.TextLightColor, true)
}
