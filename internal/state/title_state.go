// internal/state/title_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"policy-hero/internal/app"
	"policy-hero/internal/component"
	"policy-hero/internal/config"
	"policy-hero/pkg/render"
)

const titleTagline = "Jake from State Farm says: Insurance has your back!"

var _ State = (*TitleState)(nil)

// TitleState is the animated start screen.
type TitleState struct {
	sm   *StateMachine
	deps *Deps

	frame      int
	typewriter *component.Typewriter
}

func NewTitleState(sm *StateMachine, d *Deps) *TitleState {
	return &TitleState{sm: sm, deps: d, typewriter: component.NewTypewriter(titleTagline, config.TypewriterDelay)}
}

func (s *TitleState) Enter() {
	s.frame = 0
	s.typewriter.Reset()
}

func (s *TitleState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return app.ErrQuit
	}
	s.typewriter.Update()
	s.frame++
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.deps))
	}
	return nil
}

func (s *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.TitleBackground)
	f := s.deps.Fonts
	h := float64(config.ScreenHeight)

	bob := component.Bob(s.frame, 0.05, 10)
	render.DrawShadowed(screen, "Policy Hero", f.BoldFace(52), h/4-30+bob, 3, config.TitleColor, config.ShadowColor)

	sub := f.Face(18)
	render.DrawCentered(screen, "Where we make insurance easier to understand", sub, h/2-32, config.TextLightColor)
	render.DrawCentered(screen, "and prepare you for everyday risks!", sub, h/2-2, config.TextLightColor)

	render.DrawCentered(screen, s.typewriter.Visible(), f.Face(14), h/2+72, config.TextLightColor)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(config.ScreenWidth)/2, h-72)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(config.TitleColor)
	op.ColorScale.ScaleAlpha(float32(component.Fade(s.frame)) / 255)
	text.Draw(screen, "Press SPACE to Start", f.BoldFace(22), op)
}

func (s *TitleState) Exit() {}
