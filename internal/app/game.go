// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"policy-hero/internal/appctx"
	"policy-hero/internal/config"
	"policy-hero/internal/entity"
	"policy-hero/internal/event"
	"policy-hero/internal/input"
	"policy-hero/internal/system"
)

// ErrQuit is returned by Update when the player asked to leave.
var ErrQuit = errors.New("quit requested")

const (
	msgPrepStarted = "Preparation started! Do the 4 tasks."
	msgForgotTask  = "You forgot a task! Proceeding..."
	msgFire        = "House caught fire! (Stove left on). Press R to retry."
	msgPayout      = "Don't worry, Insurance has you covered!"
	msgWin         = "Level Complete! Insurance covered your losses."
)

// Game owns every entity of a round and drives the phase machine.
type Game struct {
	Player *entity.Player
	Door   *entity.Door
	Window *entity.Window
	Stove  *entity.Stove
	Gun    *entity.GunPickup
	House  *entity.House

	Bullets []*entity.Bullet
	Thieves []*entity.Thief

	Phase        Phase
	PrepTimer    float64
	BlastTimer   float64
	Message      string
	MessageTimer float64

	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	StatsSystem      *system.StatsSystem

	ctx           *appctx.Context
	interactables []entity.Interactable
}

// NewGame builds a round in the Start phase.
func NewGame(ctx *appctx.Context) *Game {
	g := &Game{
		ctx:              ctx,
		CombatSystem:     system.NewCombatSystem(ctx.Events),
		ProjectileSystem: system.NewProjectileSystem(ctx.Events),
	}
	g.Reset()
	return g
}

// Reset restores construction defaults and returns to Start.
func (g *Game) Reset() {
	g.Player = entity.NewPlayer()
	g.Door = entity.NewDoor()
	g.Window = entity.NewWindow()
	g.Stove = entity.NewStove()
	g.Gun = entity.NewGunPickup()
	g.House = entity.NewHouse()
	g.interactables = []entity.Interactable{g.Door, g.Window, g.Stove, g.Gun}

	g.Bullets = nil
	g.Thieves = nil
	g.WaveSystem = system.NewWaveSystem(g.ctx.Rng, g.ctx.Events)

	if g.StatsSystem != nil {
		g.ctx.Events.UnsubscribeAll(g.StatsSystem)
	}
	g.StatsSystem = system.NewStatsSystem()
	g.StatsSystem.Subscribe(g.ctx.Events)

	g.setPhase(PhaseStart)
	g.PrepTimer = config.PrepDuration
	g.BlastTimer = 0
	g.Message = ""
	g.MessageTimer = 0
}

// Close detaches the round from the shared event dispatcher.
func (g *Game) Close() {
	g.ctx.Events.UnsubscribeAll(g.StatsSystem)
}

// Update runs one tick: input first, then simulation.
func (g *Game) Update(deltaTime float64, in input.State) error {
	if in.Quit {
		return ErrQuit
	}
	g.handleInput(in)
	g.update(deltaTime)
	return nil
}

func (g *Game) handleInput(in input.State) {
	switch {
	case g.Phase == PhaseStart:
		if in.Start {
			g.startPrep()
		}
		return
	case g.Phase.Finished():
		if in.Restart {
			g.ctx.Log.Printf("restarting after %s", g.Phase)
			g.Reset()
		}
		return
	case !g.Phase.Interactive():
		return
	}

	if in.Left {
		g.Player.MoveLeft()
	}
	if in.Right {
		g.Player.MoveRight()
	}
	if in.Up {
		g.Player.MoveUp()
	}
	if in.Down {
		g.Player.MoveDown()
	}
	if !in.Action {
		return
	}
	if g.Phase == PhasePrep {
		g.tryInteract()
	} else {
		g.tryShoot()
	}
}

// tryInteract attempts the prep tasks in priority order; the first success
// wins.
func (g *Game) tryInteract() {
	for _, obj := range g.interactables {
		msg, ok := obj.TryInteract(g.Player)
		if !ok {
			continue
		}
		g.flash(msg, config.InteractMessageTime)
		g.ctx.Events.Dispatch(event.Event{
			Type: event.Interacted,
			Data: event.Interaction{Object: obj.Name(), Message: msg},
		})
		return
	}
}

func (g *Game) tryShoot() {
	if b := g.ProjectileSystem.Fire(g.Player); b != nil {
		g.Bullets = append(g.Bullets, b)
	}
}

func (g *Game) update(deltaTime float64) {
	if g.MessageTimer > 0 {
		g.MessageTimer -= deltaTime
	}

	switch g.Phase {
	case PhasePrep:
		g.PrepTimer -= deltaTime
		if g.PrepTimer > 0 {
			return
		}
		if g.Stove.On {
			g.failPrep()
			return
		}
		g.startCombat()
		if !g.TasksComplete() {
			g.flash(msgForgotTask, config.PhaseMessageTime)
		}
	case PhaseCombat:
		g.updateCombat(deltaTime)
	case PhaseBlast:
		g.BlastTimer -= deltaTime
		if g.BlastTimer <= 0 {
			g.setPhase(PhaseWin)
			g.flash(msgWin, config.PhaseMessageTime)
		}
	}
}

func (g *Game) updateCombat(deltaTime float64) {
	if th := g.WaveSystem.Update(deltaTime, g.Thieves); th != nil {
		g.Thieves = append(g.Thieves, th)
	}
	g.CombatSystem.UpdateThieves(deltaTime, g.Thieves, g.House)

	g.ProjectileSystem.Update(g.Bullets)
	g.CombatSystem.ResolveCollisions(g.Bullets, g.Thieves)

	g.Thieves = system.PruneThieves(g.Thieves)
	g.Bullets = system.PruneBullets(g.Bullets)

	if !g.WaveSystem.Active && len(g.Thieves) == 0 {
		g.startWave()
	}

	if g.House.Destroyed() {
		g.triggerPayout()
	}
}

func (g *Game) startPrep() {
	g.setPhase(PhasePrep)
	g.PrepTimer = config.PrepDuration
	g.flash(msgPrepStarted, config.PhaseMessageTime)
}

func (g *Game) startCombat() {
	g.setPhase(PhaseCombat)
	g.startWave()
}

// startWave begins the next wave. Waves after HeavyWaveFrom carry extra
// thieves so the house eventually falls and the payout plays.
func (g *Game) startWave() {
	heavy := g.WaveSystem.Wave >= config.HeavyWaveFrom
	g.WaveSystem.StartNextWave()
	if heavy {
		g.WaveSystem.Boost(config.HeavyWaveBonus)
	}
	w := g.WaveSystem.Wave
	g.flash(fmt.Sprintf("Wave %d begins!", w), config.PhaseMessageTime)
	g.ctx.Log.Printf("wave %d started, %d thieves", w, g.WaveSystem.ToSpawn)
	g.ctx.Events.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveInfo{Number: w, Quota: g.WaveSystem.ToSpawn, Heavy: heavy},
	})
}

func (g *Game) failPrep() {
	g.setPhase(PhaseFail)
	g.flash(msgFire, config.PhaseMessageTime)
}

func (g *Game) triggerPayout() {
	g.CombatSystem.KillAll(g.Thieves)
	g.Thieves = system.PruneThieves(g.Thieves)
	g.House.HealFull()
	g.BlastTimer = config.BlastDuration
	g.setPhase(PhaseBlast)
	g.flash(msgPayout, config.BlastDuration)
	g.ctx.Events.Dispatch(event.Event{Type: event.PayoutTriggered})
}

func (g *Game) setPhase(p Phase) {
	if p == g.Phase {
		return
	}
	from := g.Phase
	g.Phase = p
	g.ctx.Log.Printf("phase %s -> %s", from, p)
	g.ctx.Events.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChange{From: from.String(), To: p.String()},
	})
}

func (g *Game) flash(msg string, seconds float64) {
	g.Message = msg
	g.MessageTimer = seconds
}

// TasksComplete reports whether all four prep tasks are done.
func (g *Game) TasksComplete() bool {
	return g.Door.Locked && g.Window.Locked && !g.Stove.On && g.Player.HasGun
}

// Stats returns the statistics of the current round.
func (g *Game) Stats() system.RoundStats {
	return g.StatsSystem.Stats
}
