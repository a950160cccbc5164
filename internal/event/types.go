// internal/event/types.go
package event

const (
	PhaseChanged    EventType = "PhaseChanged"    // PhaseChange
	WaveStarted     EventType = "WaveStarted"     // WaveInfo
	ThiefSpawned    EventType = "ThiefSpawned"    // ThiefInfo
	ThiefHit        EventType = "ThiefHit"        // ThiefInfo
	ThiefKilled     EventType = "ThiefKilled"     // ThiefInfo
	HouseDamaged    EventType = "HouseDamaged"    // Damage
	ShotFired       EventType = "ShotFired"       // Shot
	Interacted      EventType = "Interacted"      // Interaction
	PayoutTriggered EventType = "PayoutTriggered" // nil
	QuizAnswered    EventType = "QuizAnswered"    // Answer
)

// PhaseChange carries the names of the old and new game phase.
type PhaseChange struct {
	From, To string
}

// WaveInfo describes a wave that just started.
type WaveInfo struct {
	Number int
	Quota  int
	Heavy  bool
}

// ThiefInfo describes a thief at the moment of the event.
type ThiefInfo struct {
	Side string
	HP   int
	X    float64
}

// Damage reports a hit on the house.
type Damage struct {
	Amount    int
	Remaining int
}

// Shot reports a bullet leaving a window.
type Shot struct {
	Direction string
	X, Y      float64
}

// Interaction reports a successful prep interaction.
type Interaction struct {
	Object  string
	Message string
}

// Answer reports a quiz answer.
type Answer struct {
	Question int
	Correct  bool
}
