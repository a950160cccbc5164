package entity

import (
	"testing"

	"policy-hero/internal/config"
)

func TestHouseInvariantAndCoverage(t *testing.T) {
	h := NewHouse()
	if h.Coverage() != 0 {
		t.Fatalf("fresh house coverage = %v", h.Coverage())
	}
	for i := 0; i < 80; i++ {
		h.TakeDamage(3)
		if h.HP < 0 || h.HP > h.MaxHP {
			t.Fatalf("hp %d out of [0,%d]", h.HP, h.MaxHP)
		}
		want := 100 - 100*float64(h.HP)/float64(h.MaxHP)
		if h.Coverage() != want {
			t.Fatalf("coverage %v, want %v at hp %d", h.Coverage(), want, h.HP)
		}
	}
	if !h.Destroyed() || h.Coverage() != 100 {
		t.Fatalf("house should be destroyed with full coverage, hp=%d cov=%v", h.HP, h.Coverage())
	}
	h.HealFull()
	if h.HP != h.MaxHP || h.Coverage() != 0 {
		t.Fatalf("heal: hp=%d coverage=%v", h.HP, h.Coverage())
	}
}

func TestHouseTakeDamageReportsAmountRemoved(t *testing.T) {
	h := NewHouse()
	h.HP = 1
	if got := h.TakeDamage(2); got != 1 {
		t.Fatalf("TakeDamage returned %d, want 1", got)
	}
	if got := h.TakeDamage(2); got != 0 {
		t.Fatalf("damage on a destroyed house returned %d", got)
	}
}

func TestThiefDiesAfterExactlyHPHits(t *testing.T) {
	for hp := 1; hp <= 2; hp++ {
		th := NewThief(Left, 1, hp)
		for i := 1; i < hp; i++ {
			if th.Hit(1) || !th.Alive {
				t.Fatalf("hp %d: died after %d hits", hp, i)
			}
		}
		if !th.Hit(1) || th.Alive {
			t.Fatalf("hp %d: still alive after %d hits", hp, hp)
		}
	}
}

func TestThiefApproachThenAttack(t *testing.T) {
	h := NewHouse()
	th := NewThief(Right, 2, 1)
	if th.VX >= 0 {
		t.Fatalf("right-side thief should move left, vx=%v", th.VX)
	}
	frames := 0
	for !th.Attacking {
		prev := th.X
		if dmg := th.Update(0.25, h); dmg != 0 && !th.Attacking {
			t.Fatal("damage dealt while approaching")
		}
		if !th.Attacking && th.X-prev != -2 {
			t.Fatalf("approach step = %v, want -2", th.X-prev)
		}
		frames++
		if frames > 1000 {
			t.Fatal("thief never reached the wall")
		}
	}
	if th.X != config.ThiefTargetRight {
		t.Fatalf("attacking at x=%v, want %d", th.X, config.ThiefTargetRight)
	}
	// The arrival frame already counted 0.25s; one more reaches the interval.
	hp := h.HP
	if dmg := th.Update(0.25, h); dmg != config.ThiefDamage {
		t.Fatalf("damage = %d, want %d", dmg, config.ThiefDamage)
	}
	if h.HP != hp-config.ThiefDamage {
		t.Fatalf("house hp %d, want %d", h.HP, hp-config.ThiefDamage)
	}
	x := th.X
	th.Update(0.25, h)
	if th.X != x {
		t.Fatal("attacking thief moved")
	}
}

func TestDeadThiefDoesNothing(t *testing.T) {
	h := NewHouse()
	th := NewThief(Left, 1, 1)
	th.Kill()
	x := th.X
	if th.Update(10, h) != 0 || th.X != x || h.HP != h.MaxHP {
		t.Fatal("dead thief acted")
	}
}

func TestBulletFlightAndPrune(t *testing.T) {
	b := NewBullet(config.LeftWindowCenter, config.MuzzleY, Left)
	if b.VX != -config.BulletSpeed {
		t.Fatalf("vx = %v, want %v", b.VX, -config.BulletSpeed)
	}
	frames := 0
	for b.Alive {
		prev := b.X
		b.Update()
		if b.X-prev != -config.BulletSpeed {
			t.Fatalf("velocity changed mid-flight: step %v", b.X-prev)
		}
		if b.Alive && b.X < -config.BulletMargin {
			t.Fatalf("bullet alive past margin at x=%v", b.X)
		}
		frames++
		if frames > 1000 {
			t.Fatal("bullet never left the screen")
		}
	}
	if b.X >= -config.BulletMargin {
		t.Fatalf("bullet died at x=%v, before crossing the margin", b.X)
	}
}

func TestBulletRectOverlapsThiefInLane(t *testing.T) {
	th := NewThief(Left, 1, 1)
	th.X = config.ThiefTargetLeft
	b := NewBullet(th.X, config.MuzzleY, Left)
	if !b.Rect().Overlaps(th.Rect()) {
		t.Fatalf("muzzle height misses the thief lane: bullet %v thief %v", b.Rect(), th.Rect())
	}
}
