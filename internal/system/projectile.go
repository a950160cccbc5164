// internal/system/projectile.go
package system

import (
	"policy-hero/internal/config"
	"policy-hero/internal/entity"
	"policy-hero/internal/event"
)

// ProjectileSystem fires and moves bullets.
type ProjectileSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{eventDispatcher: eventDispatcher}
}

// Fire returns a bullet leaving the second-floor window the player stands
// at, or nil when the player cannot shoot from here.
func (s *ProjectileSystem) Fire(p *entity.Player) *entity.Bullet {
	if !p.Armed() {
		return nil
	}
	var b *entity.Bullet
	switch {
	case withinReach(p.X, config.LeftWindowCenter):
		b = entity.NewBullet(config.LeftWindowCenter, config.MuzzleY, entity.Left)
	case withinReach(p.X, config.RightWindowCenter):
		b = entity.NewBullet(config.RightWindowCenter, config.MuzzleY, entity.Right)
	default:
		return nil
	}
	dir := entity.Right
	if b.VX < 0 {
		dir = entity.Left
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.Shot{Direction: dir.String(), X: b.X, Y: b.Y},
	})
	return b
}

// Update moves every live bullet one frame.
func (s *ProjectileSystem) Update(bullets []*entity.Bullet) {
	for _, b := range bullets {
		if b.Alive {
			b.Update()
		}
	}
}

func withinReach(x, center float64) bool {
	d := x - center
	return d >= -config.InteractDistance && d <= config.InteractDistance
}
