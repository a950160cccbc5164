package entity

import (
	"policy-hero/internal/config"
	"policy-hero/internal/utils"
)

// Interactable is anything the player can use during preparation.
// TryInteract returns the confirmation message and true when the player was
// close enough and the object changed state. Secured objects stay silent.
type Interactable interface {
	Name() string
	TryInteract(p *Player) (string, bool)
}

func inReach(p *Player, floor int, centerX float64) bool {
	return p.Floor == floor && utils.Abs(p.X-centerX) <= config.InteractDistance
}

// Door is the ground-floor front door.
type Door struct {
	X      float64
	Floor  int
	Locked bool
}

func NewDoor() *Door {
	return &Door{X: config.DoorX, Floor: 1}
}

func (d *Door) Name() string { return "door" }

func (d *Door) TryInteract(p *Player) (string, bool) {
	if d.Locked || !inReach(p, d.Floor, d.X) {
		return "", false
	}
	d.Locked = true
	return "Door locked.", true
}

// Window is the ground-floor window on the right wall.
type Window struct {
	X      float64
	Floor  int
	Locked bool
}

func NewWindow() *Window {
	return &Window{X: config.WindowRightX, Floor: 1}
}

func (w *Window) Name() string { return "window" }

// Center is the window's interaction point.
func (w *Window) Center() float64 {
	return w.X + config.WindowWidth/2
}

func (w *Window) TryInteract(p *Player) (string, bool) {
	if w.Locked || !inReach(p, w.Floor, w.Center()) {
		return "", false
	}
	w.Locked = true
	return "Window locked.", true
}

// Stove starts switched on; leaving it on through preparation burns the house.
type Stove struct {
	X     float64
	Floor int
	On    bool
}

func NewStove() *Stove {
	return &Stove{X: config.StoveX, Floor: 1, On: true}
}

func (s *Stove) Name() string { return "stove" }

func (s *Stove) Center() float64 {
	return s.X + config.StoveReach
}

func (s *Stove) TryInteract(p *Player) (string, bool) {
	if !s.On || !inReach(p, s.Floor, s.Center()) {
		return "", false
	}
	s.On = false
	return "Stove turned off.", true
}

// GunPickup waits upstairs until the player takes it.
type GunPickup struct {
	X     float64
	Floor int
	Taken bool
}

func NewGunPickup() *GunPickup {
	return &GunPickup{X: config.GunX, Floor: 2}
}

func (g *GunPickup) Name() string { return "gun" }

func (g *GunPickup) TryInteract(p *Player) (string, bool) {
	if g.Taken || !inReach(p, g.Floor, g.X) {
		return "", false
	}
	g.Taken = true
	p.HasGun = true
	return "Mystery gun equipped.", true
}
