package state

import (
	"policy-hero/internal/appctx"
	"policy-hero/internal/config"
	"policy-hero/internal/defs"
	"policy-hero/internal/report"
	"policy-hero/pkg/render"
)

// Deps are the services every scene needs.
type Deps struct {
	Ctx       *appctx.Context
	Fonts     *render.Fonts
	Questions defs.QuestionBank
	Clipboard report.Writer
}

// NewInitialState returns the scene named by the options.
func NewInitialState(sm *StateMachine, d *Deps) State {
	switch d.Ctx.Options.Scene {
	case config.SceneGame:
		return NewGameState(sm, d)
	case config.SceneQuiz:
		return NewQuizState(sm, d)
	default:
		return NewTitleState(sm, d)
	}
}

// copySummary puts text on the clipboard, logging failures.
func (d *Deps) copySummary(text string) {
	if err := report.Copy(d.Clipboard, text); err != nil {
		d.Ctx.Log.Printf("copy summary: %v", err)
		return
	}
	d.Ctx.Log.Printf("summary copied to clipboard")
}
