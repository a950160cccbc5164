package config

import (
	"errors"
	"fmt"
)

// Scene names accepted by Options.Scene.
const (
	SceneTitle = "title"
	SceneGame  = "game"
	SceneQuiz  = "quiz"
)

// Options are the runtime settings chosen on the command line.
type Options struct {
	Seed          int64  // 0 seeds from the clock
	Scene         string // first scene shown by the windowed frontend
	Sound         bool
	QuestionsPath string // empty uses the embedded question bank
	WindowScale   float64
	LogPath       string // terminal frontend log file; empty picks a temp file
}

// DefaultOptions returns the settings used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Scene:       SceneTitle,
		Sound:       true,
		WindowScale: 1,
	}
}

// Validate reports the first unusable setting.
func (o Options) Validate() error {
	switch o.Scene {
	case SceneTitle, SceneGame, SceneQuiz:
	default:
		return fmt.Errorf("unknown scene %q", o.Scene)
	}
	if o.WindowScale <= 0 {
		return errors.New("window scale must be positive")
	}
	return nil
}
