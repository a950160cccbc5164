package term

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"policy-hero/internal/app"
	"policy-hero/internal/appctx"
	"policy-hero/internal/config"
	"policy-hero/internal/interfaces"
)

// Runner drives a round from terminal events on a fixed ticker.
type Runner struct {
	screen   tcell.Screen
	round    interfaces.Round
	renderer *Renderer
	keys     *KeyLatch
	now      func() time.Time
}

func NewRunner(screen tcell.Screen, round interfaces.Round) *Runner {
	return &Runner{
		screen:   screen,
		round:    round,
		renderer: NewRenderer(screen),
		keys:     NewKeyLatch(config.TermKeyHoldMillis * time.Millisecond),
		now:      time.Now,
	}
}

// HandleEvent feeds one tcell event to the runner.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r.keys.Press(ev, r.now())
	case *tcell.EventResize:
		r.screen.Sync()
	}
}

// Tick advances the round by dt and redraws. It returns app.ErrQuit when
// the player quits.
func (r *Runner) Tick(dt float64) error {
	if err := r.round.Update(appctx.ClampDelta(dt), r.keys.Sample(r.now())); err != nil {
		return err
	}
	r.renderer.Draw(r.round.Snapshot())
	return nil
}

// Play initialises screen, runs round on it until the player quits and
// restores the terminal on every way out, panics included.
func Play(screen tcell.Screen, round interfaces.Round) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return NewRunner(screen, round).Run()
}

// Run polls the screen and ticks at config.TPS until the player quits.
func (r *Runner) Run() error {
	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := r.now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			r.HandleEvent(ev)
		case <-ticker.C:
			now := r.now()
			err := r.Tick(now.Sub(last).Seconds())
			last = now
			if errors.Is(err, app.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}
