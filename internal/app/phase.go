// internal/app/phase.go
package app

// Phase is a node of the round's state machine.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePrep
	PhaseCombat
	PhaseFail
	PhaseBlast
	PhaseWin
)

var phaseNames = [...]string{"start", "prep", "combat", "fail", "blast", "win"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Interactive reports whether the player can move in this phase.
func (p Phase) Interactive() bool {
	return p == PhasePrep || p == PhaseCombat
}

// Finished reports whether the round is over and waits for a restart.
func (p Phase) Finished() bool {
	return p == PhaseFail || p == PhaseWin
}
