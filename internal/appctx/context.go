// internal/appctx/context.go
package appctx

import (
	"io"
	"log"
	"os"

	"policy-hero/internal/config"
	"policy-hero/internal/event"
	"policy-hero/internal/utils"
)

// Context holds the services shared by the core and its frontends. It is
// built once in main and passed down explicitly.
type Context struct {
	Options config.Options
	Events  *event.Dispatcher
	Rng     *utils.PRNGService
	Log     *log.Logger
}

// New builds a context that logs to stderr.
func New(opts config.Options) *Context {
	return NewWithOutput(opts, os.Stderr)
}

// NewWithOutput builds a context whose logger writes to w.
func NewWithOutput(opts config.Options, w io.Writer) *Context {
	return &Context{
		Options: opts,
		Events:  event.NewDispatcher(),
		Rng:     utils.NewPRNGService(opts.Seed),
		Log:     log.New(w, "policy-hero ", log.LstdFlags),
	}
}

// Discard is a context for tests: fixed seed, silent logger.
func Discard(seed int64) *Context {
	opts := config.DefaultOptions()
	opts.Seed = seed
	opts.Sound = false
	return NewWithOutput(opts, io.Discard)
}

// ClampDelta limits a frame delta to config.MaxDeltaTime.
func ClampDelta(dt float64) float64 {
	if dt > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	if dt < 0 {
		return 0
	}
	return dt
}
