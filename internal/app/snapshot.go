// internal/app/snapshot.go
package app

import (
	"math"

	"policy-hero/internal/entity"
	"policy-hero/internal/system"
)

// PlayerView is the drawable state of the player.
type PlayerView struct {
	X, Y   float64
	Floor  int
	Facing entity.Direction
	HasGun bool
	Armed  bool
}

// ObjectView is the drawable state of a prep object. Done means secured.
type ObjectView struct {
	X     float64
	Floor int
	Done  bool
}

type BulletView struct {
	X, Y   float64
	Radius int
}

type ThiefView struct {
	X, Y      float64
	Side      entity.Direction
	HP        int
	Attacking bool
}

// Task is one line of the preparation checklist.
type Task struct {
	Label string
	Done  bool
}

// Snapshot is a read-only copy of one tick, handed to renderers.
type Snapshot struct {
	Phase Phase

	Player PlayerView
	Door   ObjectView
	Window ObjectView
	Stove  ObjectView
	Gun    ObjectView

	Bullets []BulletView
	Thieves []ThiefView

	HouseHP    int
	HouseMaxHP int
	Health     float64 // 0..1
	Coverage   float64 // 0..100

	Wave          int
	PrepRemaining int // whole seconds, rounded up
	Message       string
	Checklist     []Task
	Stats         system.RoundStats
}

// Snapshot copies the current state. Message is empty once its timer ran out.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase: g.Phase,
		Player: PlayerView{
			X:      g.Player.X,
			Y:      g.Player.Y(),
			Floor:  g.Player.Floor,
			Facing: g.Player.Facing,
			HasGun: g.Player.HasGun,
			Armed:  g.Player.Armed(),
		},
		Door:   ObjectView{X: g.Door.X, Floor: g.Door.Floor, Done: g.Door.Locked},
		Window: ObjectView{X: g.Window.X, Floor: g.Window.Floor, Done: g.Window.Locked},
		Stove:  ObjectView{X: g.Stove.X, Floor: g.Stove.Floor, Done: !g.Stove.On},
		Gun:    ObjectView{X: g.Gun.X, Floor: g.Gun.Floor, Done: g.Gun.Taken},

		HouseHP:    g.House.HP,
		HouseMaxHP: g.House.MaxHP,
		Health:     g.House.HealthFraction(),
		Coverage:   g.House.Coverage(),

		Wave:          g.WaveSystem.Wave,
		PrepRemaining: max(0, int(math.Ceil(g.PrepTimer))),
		Checklist: []Task{
			{"Lock left door (1F)", g.Door.Locked},
			{"Lock right window (1F)", g.Window.Locked},
			{"Turn off the stove (1F)", !g.Stove.On},
			{"Grab the mystery gun (2F)", g.Player.HasGun},
		},
		Stats: g.Stats(),
	}
	if g.MessageTimer > 0 {
		s.Message = g.Message
	}
	s.Bullets = make([]BulletView, 0, len(g.Bullets))
	for _, b := range g.Bullets {
		s.Bullets = append(s.Bullets, BulletView{X: b.X, Y: b.Y, Radius: b.Radius})
	}
	s.Thieves = make([]ThiefView, 0, len(g.Thieves))
	for _, t := range g.Thieves {
		s.Thieves = append(s.Thieves, ThiefView{X: t.X, Y: t.Y, Side: t.Side, HP: t.HP, Attacking: t.Attacking})
	}
	return s
}

// TasksDone counts completed checklist entries.
func (s Snapshot) TasksDone() int {
	n := 0
	for _, t := range s.Checklist {
		if t.Done {
			n++
		}
	}
	return n
}
