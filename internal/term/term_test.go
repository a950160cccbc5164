package term

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"policy-hero/internal/app"
	"policy-hero/internal/appctx"
	"policy-hero/internal/config"
	"policy-hero/internal/input"
	"policy-hero/internal/interfaces"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 36)
	return screen
}

func screenText(screen tcell.SimulationScreen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestKeyLatchHoldsAndReleases(t *testing.T) {
	l := NewKeyLatch(100 * time.Millisecond)
	t0 := time.Unix(0, 0)
	l.Press(key(tcell.KeyLeft, 0), t0)
	l.Press(key(tcell.KeyRune, ' '), t0)

	s := l.Sample(t0.Add(50 * time.Millisecond))
	if !s.Left || !s.Start || !s.Restart {
		t.Fatalf("first sample = %+v", s)
	}
	s = l.Sample(t0.Add(60 * time.Millisecond))
	if !s.Left || s.Start {
		t.Fatalf("edges should fire once, held keys persist: %+v", s)
	}
	if s = l.Sample(t0.Add(150 * time.Millisecond)); s.Left {
		t.Fatal("left still held after the hold window")
	}
}

func TestKeyLatchQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape, 0), key(tcell.KeyCtrlC, 0), key(tcell.KeyRune, 'q')} {
		l := NewKeyLatch(time.Second)
		l.Press(ev, time.Now())
		if !l.Sample(time.Now()).Quit {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
}

func TestRendererStartScreen(t *testing.T) {
	screen := newScreen(t)
	g := app.NewGame(appctx.Discard(1))
	NewRenderer(screen).Draw(g.Snapshot())
	if out := screenText(screen); !strings.Contains(out, "Welcome to Policy Hero!") {
		t.Fatalf("start overlay missing:\n%s", out)
	}
}

func TestRendererPrepChecklistAndTinyTerminal(t *testing.T) {
	screen := newScreen(t)
	g := app.NewGame(appctx.Discard(1))
	if err := g.Update(0, inputStart()); err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(screen)
	r.Draw(g.Snapshot())
	out := screenText(screen)
	for _, want := range []string{"Lock left door (1F)", "Grab the mystery gun (2F)", "30"} {
		if !strings.Contains(out, want) {
			t.Errorf("prep screen lacks %q", want)
		}
	}

	screen.SetSize(30, 10)
	r.Draw(g.Snapshot())
	if !strings.Contains(screenText(screen), "too small") {
		t.Fatal("no warning on a tiny terminal")
	}
}

func TestRunnerTickQuit(t *testing.T) {
	screen := newScreen(t)
	g := app.NewGame(appctx.Discard(1))
	r := NewRunner(screen, g)

	r.HandleEvent(key(tcell.KeyRune, ' '))
	if err := r.Tick(1.0 / config.TPS); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if g.Phase != app.PhasePrep {
		t.Fatalf("phase %s after space", g.Phase)
	}
	r.HandleEvent(key(tcell.KeyEscape, 0))
	if err := r.Tick(1.0 / config.TPS); err != app.ErrQuit {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
}

func TestCellScaling(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	if x, y := r.Cell(config.ScreenWidth/2, config.ScreenHeight/2); x != 60 || y != 18 {
		t.Fatalf("centre maps to (%d,%d)", x, y)
	}
}

func inputStart() input.State { return input.State{Start: true} }

// trackedScreen counts Fini calls and can fail Init or queue a key once
// initialised.
type trackedScreen struct {
	tcell.SimulationScreen
	initErr error
	onInit  tcell.Key
	finis   int
}

func (s *trackedScreen) Init() error {
	if s.initErr != nil {
		return s.initErr
	}
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	if s.onInit != 0 {
		s.InjectKey(s.onInit, 0, tcell.ModNone)
	}
	return nil
}

func (s *trackedScreen) Fini() {
	s.finis++
	s.SimulationScreen.Fini()
}

type panickyRound struct{ interfaces.Round }

func (panickyRound) Update(float64, input.State) error { panic("boom") }

func TestPlayRestoresTerminalOnQuit(t *testing.T) {
	screen := &trackedScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8"), onInit: tcell.KeyEscape}
	if err := Play(screen, app.NewGame(appctx.Discard(1))); err != nil {
		t.Fatalf("play: %v", err)
	}
	if screen.finis != 1 {
		t.Fatalf("Fini called %d times", screen.finis)
	}
}

func TestPlayRestoresTerminalOnPanic(t *testing.T) {
	screen := &trackedScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8")}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic did not propagate")
			}
		}()
		Play(screen, panickyRound{})
	}()
	if screen.finis != 1 {
		t.Fatalf("Fini called %d times after a panic", screen.finis)
	}
}

func TestPlayReportsInitFailure(t *testing.T) {
	initErr := errors.New("no tty")
	screen := &trackedScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8"), initErr: initErr}
	if err := Play(screen, app.NewGame(appctx.Discard(1))); !errors.Is(err, initErr) {
		t.Fatalf("err = %v, want wrapped init error", err)
	}
	if screen.finis != 0 {
		t.Fatal("Fini called without a successful Init")
	}
}
