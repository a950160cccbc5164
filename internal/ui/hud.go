// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"policy-hero/internal/app"
	"policy-hero/internal/config"
	"policy-hero/pkg/render"
)

// HUD draws bars, phase info and overlays on top of the house.
type HUD struct {
	fonts    *render.Fonts
	health   *MeterBar
	coverage *MeterBar
	wave     *WaveIndicator
	phase    *PhaseIndicator
}

func NewHUD(fonts *render.Fonts) *HUD {
	return &HUD{
		fonts:    fonts,
		health:   NewMeterBar(20, 15, config.HealthBarColor, config.HealthBarBack),
		coverage: NewMeterBar(config.ScreenWidth-280, 15, config.CoverageBarColor, config.CoverageBarBack),
		wave:     NewWaveIndicator(config.ScreenWidth/2, 56),
		phase:    NewPhaseIndicator(config.ScreenWidth/2+180, 24, 8),
	}
}

func (h *HUD) Update(deltaTime float64, s app.Snapshot) {
	h.phase.Update(deltaTime, s.Phase)
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	small := h.fonts.Face(15)
	bold := h.fonts.BoldFace(17)
	big := h.fonts.BoldFace(30)

	h.health.Draw(screen, s.Health, fmt.Sprintf("House Health %d%%", s.HouseHP), small)
	h.coverage.Draw(screen, s.Coverage/100, fmt.Sprintf("Insurance Meter %.0f%%", s.Coverage), small)
	h.phase.Draw(screen)

	render.DrawText(screen, "2F", small, config.HouseLeft-30, config.Floor2Y-20, config.TextLightColor, false)
	render.DrawText(screen, "1F", small, config.HouseLeft-30, config.Floor1Y-20, config.TextLightColor, false)

	switch s.Phase {
	case app.PhasePrep:
		h.drawChecklist(screen, s, small, bold)
		clr := config.TitleColor
		if s.PrepRemaining <= config.PrepWarningSeconds {
			clr = config.WarningColor
		}
		render.DrawCentered(screen, fmt.Sprintf("%d", s.PrepRemaining), big, 10, clr)
	case app.PhaseCombat:
		h.wave.Draw(screen, s.Wave, bold)
		render.DrawCentered(screen, "Shoot from 2F windows using A. Protect the walls!", small, 84, config.TextLightColor)
	}

	h.drawOverlay(screen, s)

	if s.Message != "" {
		render.DrawCentered(screen, s.Message, small, config.ScreenHeight-36, config.TextLightColor)
	}
}

func (h *HUD) drawChecklist(screen *ebiten.Image, s app.Snapshot, small, bold text.Face) {
	render.DrawText(screen, "Preparation (30s) - Complete these 4 tasks:", bold, 20, 60, config.TextLightColor, false)
	y := 84.0
	for _, t := range s.Checklist {
		mark, clr := "•", config.TextLightColor
		if t.Done {
			mark, clr = "✔", config.DoneColor
		}
		render.DrawText(screen, mark+" "+t.Label, small, 28, y, clr, false)
		y += 20
	}
}

func (h *HUD) drawOverlay(screen *ebiten.Image, s app.Snapshot) {
	big := h.fonts.BoldFace(30)
	bold := h.fonts.BoldFace(17)
	small := h.fonts.Face(15)

	var lines []string
	head := config.TitleColor
	y := 120.0
	switch s.Phase {
	case app.PhaseStart:
		render.DrawCentered(screen, "Welcome to Policy Hero!", big, 90, config.TitleColor)
		render.DrawCentered(screen, "Press SPACE to begin Level 1 (Home Insurance)", bold, 130, config.TextLightColor)
		render.DrawCentered(screen, "Move: ← →  • Floors: ↑ ↓  • Action/Shoot: A", small, 165, config.TextLightColor)
		return
	case app.PhaseFail:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.DimOverlayColor, false)
		head, y = config.WarningColor, 130
		lines = []string{"House caught fire!", "You left the stove on.", "Press R / ENTER / SPACE to retry"}
	case app.PhaseBlast:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.BlastOverlayColor, false)
		render.DrawCentered(screen, "Don't worry,", big, 110, config.OutlineColor)
		render.DrawCentered(screen, "Insurance has you covered!", big, 145, config.OutlineColor)
		return
	case app.PhaseWin:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.DimOverlayColor, false)
		st := s.Stats
		lines = []string{
			"All damages repaired.",
			"Level Complete! Insurance covered your losses.",
			fmt.Sprintf("Thieves defeated %d  •  Shots %d  •  Highest wave %d", st.ThievesKilled, st.ShotsFired, st.HighestWave),
			strings.Join([]string{"Press R / ENTER / SPACE to play again", "Q quiz", "C copy summary"}, "  •  "),
		}
	default:
		return
	}
	for i, l := range lines {
		switch i {
		case 0:
			render.DrawCentered(screen, l, big, y, head)
		case 1:
			render.DrawCentered(screen, l, bold, y, config.TextLightColor)
		default:
			render.DrawCentered(screen, l, small, y, config.TextLightColor)
		}
		y += 36
	}
}
