package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"policy-hero/internal/app"
	"policy-hero/internal/config"
	"policy-hero/internal/entity"
)

// HouseRenderer draws the cutaway house and everything in it.
type HouseRenderer struct {
	colors     *HouseColors
	shellImage *ebiten.Image // static background, rendered once
}

func NewHouseRenderer(colors *HouseColors) *HouseRenderer {
	r := &HouseRenderer{
		colors:     colors,
		shellImage: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	r.RenderShellImage()
	return r
}

// RenderShellImage redraws the static yard, walls and upstairs windows.
func (r *HouseRenderer) RenderShellImage() {
	img := r.shellImage
	c := r.colors
	img.Fill(c.Background)

	vector.DrawFilledRect(img, 0, config.GroundY, config.ScreenWidth, config.ScreenHeight-config.GroundY, c.Grass, false)

	bodyH := float32(config.Floor1Y - config.Floor2Top + 20)
	vector.DrawFilledRect(img, config.HouseLeft, config.Floor2Top, config.HouseRight-config.HouseLeft, bodyH, c.Body, false)
	vector.StrokeRect(img, config.HouseLeft, config.Floor2Top, config.HouseRight-config.HouseLeft, bodyH, 3, c.Outline, false)
	vector.StrokeLine(img, config.HouseLeft, config.Floor1Top, config.HouseRight, config.Floor1Top, 3, c.Outline, false)

	winY := float32(config.Floor2Y - 120)
	for _, x := range []float32{config.HouseLeft + config.WindowInset, config.HouseRight - config.WindowInset - config.WindowWidth} {
		vector.DrawFilledRect(img, x, winY, config.WindowWidth, config.WindowHeight, c.Glass, false)
		vector.StrokeRect(img, x, winY, config.WindowWidth, config.WindowHeight, c.StrokeWidth, c.Outline, false)
	}
}

// Draw renders one snapshot of the playfield.
func (r *HouseRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	screen.DrawImage(r.shellImage, nil)
	r.drawObjects(screen, s)
	r.drawPlayer(screen, s.Player)

	for _, b := range s.Bullets {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), config.BulletColor, true)
	}
	for _, t := range s.Thieves {
		clr := config.ThiefLeftColor
		if t.Side == entity.Right {
			clr = config.ThiefRightColor
		}
		if t.HP > 1 {
			clr = DarkenColor(clr)
		}
		x := float32(t.X) - config.ThiefWidth/2
		y := float32(t.Y) - config.ThiefHeight
		vector.DrawFilledRect(screen, x, y, config.ThiefWidth, config.ThiefHeight, clr, false)
		vector.StrokeRect(screen, x, y, config.ThiefWidth, config.ThiefHeight, 1, r.colors.Outline, false)
	}
}

func (r *HouseRenderer) drawObjects(screen *ebiten.Image, s app.Snapshot) {
	out := r.colors.Outline

	doorClr := config.DoorOpen
	if s.Door.Done {
		doorClr = config.DoorLocked
	}
	doorY := float32(config.Floor1Y - config.DoorHeight)
	vector.DrawFilledRect(screen, float32(s.Door.X), doorY, config.DoorWidth, config.DoorHeight, doorClr, false)
	vector.StrokeRect(screen, float32(s.Door.X), doorY, config.DoorWidth, config.DoorHeight, 2, out, false)

	winClr := config.WindowOpen
	if s.Window.Done {
		winClr = config.WindowLocked
	}
	winY := float32(config.Floor1Y - 120)
	vector.DrawFilledRect(screen, float32(s.Window.X), winY, config.WindowWidth, config.WindowHeight, winClr, false)
	vector.StrokeRect(screen, float32(s.Window.X), winY, config.WindowWidth, config.WindowHeight, 2, out, false)

	sx := float32(s.Stove.X)
	stoveY := float32(config.Floor1Y - config.StoveHeight)
	vector.DrawFilledRect(screen, sx, stoveY, config.StoveWidth, config.StoveHeight, config.StoveColor, false)
	vector.StrokeRect(screen, sx, stoveY, config.StoveWidth, config.StoveHeight, 2, out, false)
	if !s.Stove.Done {
		// A stepped flame above the burner.
		for i := float32(0); i < 3; i++ {
			w := 24 - i*8
			vector.DrawFilledRect(screen, sx+20-w/2, stoveY-(i+1)*5, w, 5, config.FlameColor, false)
		}
	}

	if !s.Gun.Done {
		gx := float32(s.Gun.X) - 8
		gy := float32(config.Floor2Y - 18)
		vector.DrawFilledRect(screen, gx, gy, 16, 8, config.GunColor, false)
		vector.StrokeRect(screen, gx, gy, 16, 8, 1, out, false)
	}
}

func (r *HouseRenderer) drawPlayer(screen *ebiten.Image, p app.PlayerView) {
	x := float32(p.X) - config.PlayerWidth/2
	y := float32(p.Y) - config.PlayerHeight
	vector.DrawFilledRect(screen, x, y, config.PlayerWidth, config.PlayerHeight, config.PlayerColor, false)

	eyeX := float32(p.X) + 4*float32(p.Facing.Sign())
	vector.DrawFilledCircle(screen, eyeX, y+8, 2, r.colors.Outline, true)

	if p.Armed {
		// Barrel pointing the way the player faces.
		bx := float32(p.X)
		if p.Facing == entity.Left {
			bx -= 14
		}
		vector.DrawFilledRect(screen, bx, y+12, 14, 4, config.GunColor, false)
	}
}
