// internal/system/combat.go
package system

import (
	"slices"

	"policy-hero/internal/entity"
	"policy-hero/internal/event"
)

// CombatSystem moves thieves against the house and resolves bullet hits.
type CombatSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{eventDispatcher: eventDispatcher}
}

// UpdateThieves advances every thief and applies their damage to the house.
func (s *CombatSystem) UpdateThieves(deltaTime float64, thieves []*entity.Thief, house *entity.House) {
	for _, t := range thieves {
		dmg := t.Update(deltaTime, house)
		if dmg > 0 {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.HouseDamaged,
				Data: event.Damage{Amount: dmg, Remaining: house.HP},
			})
		}
	}
}

// ResolveCollisions checks every live bullet against every live thief. A
// bullet is consumed by the first thief it overlaps and never hits twice.
// It returns the number of hits.
func (s *CombatSystem) ResolveCollisions(bullets []*entity.Bullet, thieves []*entity.Thief) int {
	hits := 0
	for _, b := range bullets {
		if !b.Alive {
			continue
		}
		br := b.Rect()
		for _, t := range thieves {
			if !t.Alive || !br.Overlaps(t.Rect()) {
				continue
			}
			killed := t.Hit(1)
			b.Alive = false
			hits++
			info := event.ThiefInfo{Side: t.Side.String(), HP: t.HP, X: t.X}
			s.eventDispatcher.Dispatch(event.Event{Type: event.ThiefHit, Data: info})
			if killed {
				s.eventDispatcher.Dispatch(event.Event{Type: event.ThiefKilled, Data: info})
			}
			break
		}
	}
	return hits
}

// KillAll force-kills every thief, as the insurance payout does.
func (s *CombatSystem) KillAll(thieves []*entity.Thief) {
	for _, t := range thieves {
		t.Kill()
	}
}

// PruneThieves drops dead thieves in place.
func PruneThieves(thieves []*entity.Thief) []*entity.Thief {
	return slices.DeleteFunc(thieves, func(t *entity.Thief) bool { return !t.Alive })
}

// PruneBullets drops dead bullets in place.
func PruneBullets(bullets []*entity.Bullet) []*entity.Bullet {
	return slices.DeleteFunc(bullets, func(b *entity.Bullet) bool { return !b.Alive })
}
