// cmd/term/main.go runs the house defence round in a terminal.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"policy-hero/internal/app"
	"policy-hero/internal/appctx"
	"policy-hero/internal/audio"
	"policy-hero/internal/config"
	"policy-hero/internal/term"
)

func main() {
	opts, err := config.ParseOptions(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

// openLog opens the log file named by path, or a new temp file when path is
// empty. The screen owns stderr while running, so the log cannot go there.
func openLog(path string) (*os.File, error) {
	if path == "" {
		return os.CreateTemp("", "policy-hero-*.log")
	}
	return os.Create(path)
}

func run(opts config.Options) error {
	logFile, err := openLog(opts.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer fmt.Fprintf(os.Stderr, "log written to %s\n", logFile.Name())
	defer logFile.Close()
	ctx := appctx.NewWithOutput(opts, logFile)

	sounds := audio.NewSoundManager()
	if opts.Sound {
		if err := sounds.Initialize(); err != nil {
			ctx.Log.Printf("sound disabled: %v", err)
		}
	}
	sounds.Subscribe(ctx.Events)
	defer sounds.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	game := app.NewGame(ctx)
	defer game.Close()
	return term.Play(screen, game)
}
