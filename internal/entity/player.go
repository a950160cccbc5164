package entity

import (
	"image"

	"policy-hero/internal/config"
	"policy-hero/internal/utils"
)

// Player is the homeowner moving around inside the house.
type Player struct {
	Floor  int
	X      float64
	Speed  float64
	Facing Direction
	HasGun bool
}

// NewPlayer places the player in the middle of the ground floor.
func NewPlayer() *Player {
	return &Player{
		Floor:  1,
		X:      float64((config.HouseLeft + config.HouseRight) / 2),
		Speed:  config.PlayerSpeed,
		Facing: Right,
	}
}

// Y is the standing line of the player's current floor.
func (p *Player) Y() float64 {
	return FloorY(p.Floor)
}

func (p *Player) MoveLeft() {
	p.X -= p.Speed
	p.Facing = Left
	p.clamp()
}

func (p *Player) MoveRight() {
	p.X += p.Speed
	p.Facing = Right
	p.clamp()
}

// MoveUp and MoveDown switch floors instantly.
func (p *Player) MoveUp()   { p.Floor = 2 }
func (p *Player) MoveDown() { p.Floor = 1 }

// Armed reports whether the weapon is usable, which only happens upstairs.
func (p *Player) Armed() bool {
	return p.HasGun && p.Floor == 2
}

func (p *Player) Rect() image.Rectangle {
	return boxAt(p.X, p.Y(), config.PlayerWidth, config.PlayerHeight)
}

func (p *Player) clamp() {
	p.X = utils.Clamp(p.X, config.InteriorLeft, config.InteriorRight)
}

// FloorY returns the standing line for floor 1 or 2.
func FloorY(floor int) float64 {
	if floor == 2 {
		return config.Floor2Y
	}
	return config.Floor1Y
}
