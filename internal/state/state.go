// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one scene of the windowed frontend.
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine switches between scenes. A switch requested while a scene is
// updating takes effect once that update returns, so a scene never sees its
// own Exit mid-tick.
type StateMachine struct {
	current  State
	pending  State
	updating bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState replaces the active scene.
func (sm *StateMachine) SetState(next State) {
	if sm.updating {
		sm.pending = next
		return
	}
	sm.swap(next)
}

func (sm *StateMachine) swap(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
}

// Update advances the active scene and applies any switch it requested. A
// non-nil error ends the game loop.
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	sm.updating = true
	err := sm.current.Update(deltaTime)
	sm.updating = false

	if next := sm.pending; next != nil {
		sm.pending = nil
		sm.swap(next)
	}
	return err
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
