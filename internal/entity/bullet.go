package entity

import (
	"image"

	"policy-hero/internal/config"
)

// Bullet flies horizontally from a second-floor window.
type Bullet struct {
	X, Y   float64
	VX     float64
	Radius int
	Alive  bool
}

func NewBullet(x, y float64, dir Direction) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		VX:     dir.Sign() * config.BulletSpeed,
		Radius: config.BulletRadius,
		Alive:  true,
	}
}

// Update advances one frame and kills the bullet once it leaves the screen.
func (b *Bullet) Update() {
	b.X += b.VX
	if b.X < -config.BulletMargin || b.X > config.ScreenWidth+config.BulletMargin {
		b.Alive = false
	}
}

func (b *Bullet) Rect() image.Rectangle {
	x0 := int(b.X - float64(b.Radius))
	y0 := int(b.Y - float64(b.Radius))
	return image.Rect(x0, y0, x0+b.Radius*2, y0+b.Radius*2)
}
