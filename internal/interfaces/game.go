package interfaces

import (
	"policy-hero/internal/app"
	"policy-hero/internal/input"
)

// Round is the game core as seen by a frontend: feed it input once per
// tick, then draw its snapshot.
type Round interface {
	Update(deltaTime float64, in input.State) error
	Snapshot() app.Snapshot
	Reset()
	Close()
}

var _ Round = (*app.Game)(nil)
