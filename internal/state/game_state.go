// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"policy-hero/internal/app"
	"policy-hero/internal/config"
	"policy-hero/internal/input"
	"policy-hero/internal/interfaces"
	"policy-hero/internal/report"
	"policy-hero/internal/ui"
	"policy-hero/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState runs the house defence round.
type GameState struct {
	sm       *StateMachine
	deps     *Deps
	round    interfaces.Round
	renderer *render.HouseRenderer
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, d *Deps) *GameState {
	colors := &render.HouseColors{
		Background:  config.BackgroundColor,
		Grass:       config.GrassColor,
		Body:        config.HouseBodyColor,
		Outline:     config.OutlineColor,
		Glass:       config.WindowGlass,
		StrokeWidth: 2,
	}
	return &GameState{
		sm:       sm,
		deps:     d,
		round:    app.NewGame(d.Ctx),
		renderer: render.NewHouseRenderer(colors),
		hud:      ui.NewHUD(d.Fonts),
	}
}

func (g *GameState) Enter() {
	g.deps.Ctx.Log.Printf("entering game")
}

// readInput samples the keyboard into the core's input model.
func readInput() input.State {
	return input.State{
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Start:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Action:  ebiten.IsKeyPressed(ebiten.KeyA),
	}
}

func (g *GameState) Update(deltaTime float64) error {
	if err := g.round.Update(deltaTime, readInput()); err != nil {
		return err
	}
	snap := g.round.Snapshot()
	g.hud.Update(deltaTime, snap)

	if !snap.Phase.Finished() {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.deps.copySummary(report.Round(snap.Stats))
	}
	if snap.Phase == app.PhaseWin && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sm.SetState(NewQuizState(g.sm, g.deps))
	}
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.round.Snapshot()
	g.renderer.Draw(screen, snap)
	g.hud.Draw(screen, snap)
}

func (g *GameState) Exit() {
	g.round.Close()
}
