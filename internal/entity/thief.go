package entity

import (
	"image"

	"policy-hero/internal/config"
)

// Thief runs in from one edge of the screen, then beats on the house wall.
type Thief struct {
	Side        Direction // edge the thief spawned on
	HP          int
	Speed       float64
	X, Y        float64
	VX          float64
	TargetX     float64
	DamageTimer float64
	Attacking   bool
	Alive       bool
}

// NewThief creates a thief at the given edge. Speed is in pixels per frame.
func NewThief(side Direction, speed float64, hp int) *Thief {
	t := &Thief{
		Side:  side,
		HP:    hp,
		Speed: speed,
		Y:     config.ThiefLaneY,
		Alive: true,
	}
	if speed < 0 {
		speed = -speed
	}
	if side == Left {
		t.X = -config.ThiefSpawnOffset
		t.TargetX = config.ThiefTargetLeft
		t.VX = speed
	} else {
		t.X = config.ScreenWidth + config.ThiefSpawnOffset
		t.TargetX = config.ThiefTargetRight
		t.VX = -speed
	}
	return t
}

// Update moves the thief one frame toward its wall. Once there it stays put
// and damages the house every ThiefDamageInterval seconds. It returns the
// damage dealt this frame.
func (t *Thief) Update(dt float64, house *House) int {
	if !t.Alive {
		return 0
	}
	if !t.Attacking {
		next := t.X + t.VX
		if (t.VX > 0 && next < t.TargetX) || (t.VX < 0 && next > t.TargetX) {
			t.X = next
			return 0
		}
		t.X = t.TargetX
		t.Attacking = true
	}
	t.DamageTimer += dt
	if t.DamageTimer < config.ThiefDamageInterval {
		return 0
	}
	t.DamageTimer = 0
	return house.TakeDamage(config.ThiefDamage)
}

// Hit removes dmg hit points and reports whether the thief died.
func (t *Thief) Hit(dmg int) bool {
	t.HP -= dmg
	if t.HP <= 0 {
		t.Alive = false
	}
	return !t.Alive
}

// Kill removes the thief regardless of its hit points.
func (t *Thief) Kill() {
	t.Alive = false
}

func (t *Thief) Rect() image.Rectangle {
	return boxAt(t.X, t.Y, config.ThiefWidth, config.ThiefHeight)
}
