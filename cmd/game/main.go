// cmd/game/main.go
package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"policy-hero/internal/app"
	"policy-hero/internal/appctx"
	"policy-hero/internal/audio"
	"policy-hero/internal/config"
	"policy-hero/internal/defs"
	"policy-hero/internal/report"
	"policy-hero/internal/state"
	"policy-hero/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := appctx.ClampDelta(now.Sub(a.lastUpdateTime).Seconds())
	a.lastUpdateTime = now
	if err := a.stateMachine.Update(deltaTime); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	opts, err := config.ParseOptions(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	ctx := appctx.New(opts)

	questions, err := defs.LoadQuestionBank(opts.QuestionsPath)
	if err != nil {
		ctx.Log.Fatalf("load questions: %v", err)
	}
	fonts, err := render.LoadFonts()
	if err != nil {
		ctx.Log.Fatalf("load fonts: %v", err)
	}

	sounds := audio.NewSoundManager()
	if opts.Sound {
		if err := sounds.Initialize(); err != nil {
			ctx.Log.Printf("sound disabled: %v", err)
		}
	}
	sounds.Subscribe(ctx.Events)
	defer sounds.Close()

	deps := &state.Deps{Ctx: ctx, Fonts: fonts, Questions: questions, Clipboard: report.Clipboard{}}
	sm := state.NewStateMachine()
	sm.SetState(state.NewInitialState(sm, deps))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*opts.WindowScale), int(config.ScreenHeight*opts.WindowScale))
	ebiten.SetWindowTitle("Policy Hero")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(game); err != nil {
		ctx.Log.Printf("game stopped: %v", err)
	}
	ctx.Log.Printf("seed %d", ctx.Rng.Seed())
}
