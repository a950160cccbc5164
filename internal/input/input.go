// internal/input/input.go
package input

// State is the input sampled once per tick by a frontend.
// Quit, Start and Restart are edge-triggered; the rest are held.
type State struct {
	Quit    bool
	Start   bool
	Restart bool

	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Action bool
}
