// Package term draws the game in a terminal with tcell.
package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"policy-hero/internal/app"
	"policy-hero/internal/config"
	"policy-hero/internal/entity"
)

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleGrass   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleThiefL  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleThiefR  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleDone    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTodo    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFlame   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// MinWidth and MinHeight are the smallest terminal the layout fits in.
const (
	MinWidth  = 60
	MinHeight = 20
)

// Renderer maps the 900x450 playfield onto the terminal grid.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Cell converts playfield coordinates to a terminal cell.
func (r *Renderer) Cell(x, y float64) (int, int) {
	w, h := r.screen.Size()
	col := int(x * float64(w) / config.ScreenWidth)
	row := int(y * float64(h) / config.ScreenHeight)
	return col, row
}

// Draw renders one snapshot and shows it.
func (r *Renderer) Draw(s app.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w < MinWidth || h < MinHeight {
		r.center(h/2, styleWarn, fmt.Sprintf("Terminal too small (%dx%d), need %dx%d", w, h, MinWidth, MinHeight))
		r.screen.Show()
		return
	}

	r.drawHouse()
	r.drawObjects(s)
	r.drawActors(s)
	r.drawHUD(s)
	r.drawOverlay(s)
	if s.Message != "" {
		r.center(h-1, styleDefault, s.Message)
	}
	r.screen.Show()
}

func (r *Renderer) drawHouse() {
	left, top := r.Cell(config.HouseLeft, config.Floor2Top)
	right, _ := r.Cell(config.HouseRight, 0)
	_, mid := r.Cell(0, config.Floor1Top)
	_, ground := r.Cell(0, config.GroundY)
	w, h := r.screen.Size()

	for x := 0; x < w; x++ {
		for y := ground; y < h-1; y++ {
			r.screen.SetContent(x, y, '░', nil, styleGrass)
		}
	}
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '▀', nil, styleWall)
		r.screen.SetContent(x, mid, '─', nil, styleWall)
	}
	for y := top; y < ground; y++ {
		r.screen.SetContent(left, y, '│', nil, styleWall)
		r.screen.SetContent(right, y, '│', nil, styleWall)
	}
	_, f1 := r.Cell(0, config.Floor1Y)
	_, f2 := r.Cell(0, config.Floor2Y)
	r.text(left-3, f2-1, styleDefault, "2F")
	r.text(left-3, f1-1, styleDefault, "1F")

	lx, _ := r.Cell(config.LeftWindowCenter, 0)
	rx, _ := r.Cell(config.RightWindowCenter, 0)
	r.screen.SetContent(lx, f2-2, '▢', nil, styleWall)
	r.screen.SetContent(rx, f2-2, '▢', nil, styleWall)
}

func (r *Renderer) drawObjects(s app.Snapshot) {
	_, f1 := r.Cell(0, config.Floor1Y)
	_, f2 := r.Cell(0, config.Floor2Y)

	dx, _ := r.Cell(s.Door.X, 0)
	door := '▌'
	if s.Door.Done {
		door = '█'
	}
	r.screen.SetContent(dx, f1-1, door, nil, styleWall)

	wx, _ := r.Cell(s.Window.X+config.WindowWidth/2, 0)
	window := '□'
	if s.Window.Done {
		window = '▣'
	}
	r.screen.SetContent(wx, f1-2, window, nil, styleWall)

	sx, _ := r.Cell(s.Stove.X+config.StoveReach, 0)
	r.screen.SetContent(sx, f1-1, '▭', nil, styleWall)
	if !s.Stove.Done {
		r.screen.SetContent(sx, f1-2, '^', nil, styleFlame)
	}

	if !s.Gun.Done {
		gx, _ := r.Cell(s.Gun.X, 0)
		r.screen.SetContent(gx, f2-1, '¬', nil, styleBullet)
	}
}

func (r *Renderer) drawActors(s app.Snapshot) {
	px, py := r.Cell(s.Player.X, s.Player.Y)
	r.screen.SetContent(px, py-1, '@', nil, stylePlayer)
	if s.Player.Armed {
		arm := '>'
		if s.Player.Facing == entity.Left {
			arm = '<'
		}
		r.screen.SetContent(px+int(s.Player.Facing.Sign()), py-1, arm, nil, styleBullet)
	}

	for _, t := range s.Thieves {
		x, y := r.Cell(t.X, t.Y)
		glyph, style := 't', styleThiefL
		if t.HP > 1 {
			glyph = 'T'
		}
		if t.Side == entity.Right {
			style = styleThiefR
		}
		r.screen.SetContent(x, y-1, glyph, nil, style)
	}
	for _, b := range s.Bullets {
		x, y := r.Cell(b.X, b.Y)
		r.screen.SetContent(x, y, '•', nil, styleBullet)
	}
}

func (r *Renderer) drawHUD(s app.Snapshot) {
	w, _ := r.screen.Size()
	bar := w/2 - 14
	r.text(1, 0, styleDone, fmt.Sprintf("House %3d%% %s", s.HouseHP*100/max(s.HouseMaxHP, 1), meter(s.Health, bar)))
	r.text(w/2+1, 0, styleWarn, fmt.Sprintf("Ins %3.0f%% %s", s.Coverage, meter(s.Coverage/100, bar)))

	switch s.Phase {
	case app.PhasePrep:
		style := styleTitle
		if s.PrepRemaining <= config.PrepWarningSeconds {
			style = styleWarn
		}
		r.center(1, style, fmt.Sprintf("%d", s.PrepRemaining))
		r.text(1, 2, styleDefault, "Preparation (30s) - Complete these 4 tasks:")
		for i, t := range s.Checklist {
			mark, style := "•", styleTodo
			if t.Done {
				mark, style = "✔", styleDone
			}
			r.text(2, 3+i, style, mark+" "+t.Label)
		}
	case app.PhaseCombat:
		r.center(2, styleTitle, fmt.Sprintf("Wave %d", s.Wave))
		r.center(3, styleDefault, "Shoot from 2F windows using A. Protect the walls!")
	}
}

func (r *Renderer) drawOverlay(s app.Snapshot) {
	_, h := r.screen.Size()
	var lines []string
	style := styleTitle
	switch s.Phase {
	case app.PhaseStart:
		lines = []string{
			"Welcome to Policy Hero!",
			"Press SPACE to begin Level 1 (Home Insurance)",
			"Move: ← →  Floors: ↑ ↓  Action/Shoot: A  Quit: Esc",
		}
	case app.PhaseFail:
		style = styleWarn
		lines = []string{"House caught fire!", "You left the stove on.", "Press R / ENTER / SPACE to retry"}
	case app.PhaseBlast:
		lines = []string{"Don't worry,", "Insurance has you covered!"}
	case app.PhaseWin:
		lines = []string{
			"All damages repaired.",
			"Level Complete! Insurance covered your losses.",
			fmt.Sprintf("Thieves defeated: %d  Shots: %d  Highest wave: %d",
				s.Stats.ThievesKilled, s.Stats.ShotsFired, s.Stats.HighestWave),
			"Press R / ENTER / SPACE to play again",
		}
	default:
		return
	}
	y := h/3 - len(lines)/2
	for i, l := range lines {
		st := styleDefault
		if i == 0 {
			st = style
		}
		r.center(y+i, st, l)
	}
}

func meter(frac float64, width int) string {
	if width < 2 {
		return ""
	}
	frac = max(0, min(1, frac))
	n := int(frac * float64(width))
	return "[" + strings.Repeat("█", n) + strings.Repeat("·", width-n) + "]"
}

func (r *Renderer) text(x, y int, style tcell.Style, s string) {
	for _, c := range s {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
}

func (r *Renderer) center(y int, style tcell.Style, s string) {
	w, _ := r.screen.Size()
	r.text((w-len([]rune(s)))/2, y, style, s)
}
