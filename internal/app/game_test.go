package app

import (
	"errors"
	"reflect"
	"testing"

	"policy-hero/internal/appctx"
	"policy-hero/internal/config"
	"policy-hero/internal/entity"
	"policy-hero/internal/event"
	"policy-hero/internal/input"
)

const frame = 1.0 / 60

func newTestGame() *Game {
	return NewGame(appctx.Discard(1))
}

func mustUpdate(t *testing.T, g *Game, dt float64, in input.State) {
	t.Helper()
	if err := g.Update(dt, in); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func startPrep(t *testing.T, g *Game) {
	t.Helper()
	mustUpdate(t, g, 0, input.State{Start: true})
	if g.Phase != PhasePrep {
		t.Fatalf("phase %s after start, want prep", g.Phase)
	}
}

func toCombat(t *testing.T, g *Game) {
	t.Helper()
	startPrep(t, g)
	g.Stove.On = false
	mustUpdate(t, g, config.PrepDuration, input.State{})
	if g.Phase != PhaseCombat {
		t.Fatalf("phase %s after prep, want combat", g.Phase)
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame()
	if g.Phase != PhaseStart || g.PrepTimer != config.PrepDuration {
		t.Fatalf("phase=%s prep=%v", g.Phase, g.PrepTimer)
	}
	if g.Player.Floor != 1 || g.Player.X != 450 || g.Player.Facing != entity.Right || g.Player.HasGun {
		t.Fatalf("player = %+v", g.Player)
	}
	if !g.Stove.On || g.Door.Locked || g.Window.Locked || g.Gun.Taken {
		t.Fatal("objects not in their initial state")
	}
	if g.House.HP != config.HouseMaxHealth || g.WaveSystem.Wave != 0 {
		t.Fatalf("house hp=%d wave=%d", g.House.HP, g.WaveSystem.Wave)
	}
}

func TestStoveLeftOnFailsPrep(t *testing.T) {
	g := newTestGame()
	startPrep(t, g)
	if g.Snapshot().Message != msgPrepStarted {
		t.Fatalf("message %q", g.Snapshot().Message)
	}
	for i := 0; i < 29; i++ {
		mustUpdate(t, g, 1.0, input.State{})
	}
	if g.Phase != PhasePrep {
		t.Fatalf("phase %s with 1s left", g.Phase)
	}
	mustUpdate(t, g, 1.0, input.State{})
	if g.Phase != PhaseFail {
		t.Fatalf("phase %s, want fail", g.Phase)
	}
	if g.Snapshot().Message != msgFire {
		t.Fatalf("message %q", g.Snapshot().Message)
	}
}

func TestStoveOffStartsWaveOne(t *testing.T) {
	g := newTestGame()
	startPrep(t, g)
	// The player starts right in front of the stove.
	mustUpdate(t, g, 0, input.State{Action: true})
	if g.Stove.On {
		t.Fatal("stove still on")
	}
	mustUpdate(t, g, config.PrepDuration, input.State{})
	if g.Phase != PhaseCombat || g.WaveSystem.Wave != 1 || !g.WaveSystem.Active {
		t.Fatalf("phase=%s wave=%d active=%v", g.Phase, g.WaveSystem.Wave, g.WaveSystem.Active)
	}
	if got := g.Snapshot().Message; got != msgForgotTask {
		t.Fatalf("incomplete prep message %q, want %q", got, msgForgotTask)
	}
}

func TestAllTasksDone(t *testing.T) {
	g := newTestGame()
	startPrep(t, g)
	stops := []struct {
		floor int
		x     float64
	}{
		{1, config.DoorX},
		{1, config.WindowRightX + config.WindowWidth/2},
		{1, config.StoveX + config.StoveReach},
		{2, config.GunX},
	}
	for _, s := range stops {
		g.Player.Floor, g.Player.X = s.floor, s.x
		mustUpdate(t, g, frame, input.State{Action: true})
	}
	if !g.TasksComplete() || g.Snapshot().TasksDone() != 4 {
		t.Fatalf("tasks not complete: %+v", g.Snapshot().Checklist)
	}
	if g.Stats().TasksDone != 4 {
		t.Fatalf("interaction events = %d", g.Stats().TasksDone)
	}
	mustUpdate(t, g, config.PrepDuration, input.State{})
	if got := g.Snapshot().Message; got != "Wave 1 begins!" {
		t.Fatalf("message %q", got)
	}
}

func TestInteractionPriorityShortCircuits(t *testing.T) {
	g := newTestGame()
	startPrep(t, g)
	second := entity.NewStove()
	g.interactables = []entity.Interactable{g.Door, g.Window, g.Stove, second}
	mustUpdate(t, g, 0, input.State{Action: true})
	if g.Stove.On || !second.On {
		t.Fatalf("first=%v second=%v, only the first should switch off", g.Stove.On, second.On)
	}
}

func TestPayoutThenWin(t *testing.T) {
	g := newTestGame()
	toCombat(t, g)
	for i := 0; i < 3; i++ {
		g.Thieves = append(g.Thieves, entity.NewThief(entity.Left, 1, 2))
	}
	g.House.HP = 0
	mustUpdate(t, g, frame, input.State{})
	if g.Phase != PhaseBlast {
		t.Fatalf("phase %s, want blast", g.Phase)
	}
	if len(g.Thieves) != 0 || g.House.HP != g.House.MaxHP || g.BlastTimer != config.BlastDuration {
		t.Fatalf("thieves=%d hp=%d timer=%v", len(g.Thieves), g.House.HP, g.BlastTimer)
	}

	x := g.Player.X
	for i := 0; i < 4; i++ {
		mustUpdate(t, g, 0.5, input.State{Left: true, Action: true})
	}
	if g.Phase != PhaseBlast || g.Player.X != x || len(g.Bullets) != 0 {
		t.Fatalf("blast did not swallow input: phase=%s x=%v", g.Phase, g.Player.X)
	}
	mustUpdate(t, g, 0.5, input.State{})
	if g.Phase != PhaseWin {
		t.Fatalf("phase %s after 2.5s, want win", g.Phase)
	}
}

func TestRestartRestoresDefaults(t *testing.T) {
	ctx := appctx.Discard(5)
	g := NewGame(ctx)
	fresh := NewGame(appctx.Discard(5)).Snapshot()

	startPrep(t, g)
	g.Player.MoveRight()
	mustUpdate(t, g, config.PrepDuration, input.State{})
	if g.Phase != PhaseFail {
		t.Fatalf("phase %s", g.Phase)
	}
	mustUpdate(t, g, 0, input.State{Restart: true})
	if g.Phase != PhaseStart {
		t.Fatalf("phase %s after restart", g.Phase)
	}
	if got := g.Snapshot(); !reflect.DeepEqual(got, fresh) {
		t.Fatalf("restart differs from a fresh round:\n got %+v\nwant %+v", got, fresh)
	}
}

func TestRepeatedResetsAreIdentical(t *testing.T) {
	ctx := appctx.Discard(9)
	g := NewGame(ctx)
	first := g.Snapshot()
	for i := 0; i < 3; i++ {
		g.Reset()
		if got := g.Snapshot(); !reflect.DeepEqual(got, first) {
			t.Fatalf("reset %d differs", i)
		}
	}
	if n := ctx.Events.Count(event.ShotFired); n != 1 {
		t.Fatalf("%d stats listeners after resets, want 1", n)
	}
}

func TestLeftWindowBulletTravelsLeftAndIsPruned(t *testing.T) {
	g := newTestGame()
	toCombat(t, g)
	g.WaveSystem.SpawnInterval = 1e9
	g.Player.Floor, g.Player.X, g.Player.HasGun = 2, config.LeftWindowCenter, true

	mustUpdate(t, g, frame, input.State{Action: true})
	if len(g.Bullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(g.Bullets))
	}
	b := g.Bullets[0]
	if b.VX >= 0 || b.X != config.LeftWindowCenter-config.BulletSpeed {
		t.Fatalf("bullet x=%v vx=%v", b.X, b.VX)
	}
	for i := 0; i < 60; i++ {
		mustUpdate(t, g, frame, input.State{})
	}
	if b.Alive || len(g.Bullets) != 0 {
		t.Fatalf("bullet alive=%v, %d bullets tracked", b.Alive, len(g.Bullets))
	}
	if g.Stats().ShotsFired != 1 {
		t.Fatalf("shots fired = %d", g.Stats().ShotsFired)
	}
}

func TestHeavyWaveBoost(t *testing.T) {
	g := newTestGame()
	toCombat(t, g)

	g.WaveSystem.Active = false
	g.WaveSystem.Wave = 2
	mustUpdate(t, g, frame, input.State{})
	if g.WaveSystem.Wave != 3 || g.WaveSystem.ToSpawn != 4 {
		t.Fatalf("wave 3: quota %d", g.WaveSystem.ToSpawn)
	}

	g.WaveSystem.Active = false
	g.Thieves = nil
	mustUpdate(t, g, frame, input.State{})
	if g.WaveSystem.Wave != 4 || g.WaveSystem.ToSpawn != 5+config.HeavyWaveBonus {
		t.Fatalf("wave 4: quota %d, want %d", g.WaveSystem.ToSpawn, 5+config.HeavyWaveBonus)
	}
}

func TestUndefendedHouseFallsAndPaysOut(t *testing.T) {
	ctx := appctx.Discard(11)
	var phases []string
	ctx.Events.Subscribe(event.PhaseChanged, event.ListenerFunc(func(e event.Event) {
		phases = append(phases, e.Data.(event.PhaseChange).To)
	}))
	g := NewGame(ctx)
	toCombat(t, g)

	for i := 0; i < 60*120 && g.Phase != PhaseWin; i++ {
		mustUpdate(t, g, frame, input.State{})
		if g.House.HP < 0 || g.House.HP > g.House.MaxHP {
			t.Fatalf("house hp %d out of range", g.House.HP)
		}
	}
	if g.Phase != PhaseWin {
		t.Fatalf("round stuck in %s", g.Phase)
	}
	want := []string{"prep", "combat", "blast", "win"}
	if !reflect.DeepEqual(phases, want) {
		t.Fatalf("phases %v, want %v", phases, want)
	}
	s := g.Stats()
	if s.DamageTaken != config.HouseMaxHealth || s.Payouts != 1 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestQuitSurfacesSentinel(t *testing.T) {
	g := newTestGame()
	if err := g.Update(frame, input.State{Quit: true}); !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
}

func TestOutOfPhaseInputIgnored(t *testing.T) {
	g := newTestGame()
	mustUpdate(t, g, frame, input.State{Left: true, Restart: true, Action: true})
	if g.Phase != PhaseStart || g.Player.X != 450 {
		t.Fatalf("start phase reacted: phase=%s x=%v", g.Phase, g.Player.X)
	}
	startPrep(t, g)
	mustUpdate(t, g, frame, input.State{Restart: true})
	if g.Phase != PhasePrep {
		t.Fatalf("restart honoured during prep")
	}
	g.Player.Floor = 2
	g.Player.X = config.LeftWindowCenter
	g.Player.HasGun = true
	mustUpdate(t, g, frame, input.State{Action: true})
	if len(g.Bullets) != 0 {
		t.Fatal("fired during prep")
	}
}

func TestPhaseNames(t *testing.T) {
	if PhaseBlast.String() != "blast" || Phase(42).String() != "unknown" {
		t.Fatal("phase names")
	}
}

func TestCloseDetachesStats(t *testing.T) {
	ctx := appctx.Discard(2)
	g := NewGame(ctx)
	g.Close()
	if n := ctx.Events.Count(event.ThiefKilled); n != 0 {
		t.Fatalf("%d listeners left after Close", n)
	}
}
