// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 450
	TPS          = 60
	MaxDeltaTime = 0.06

	PrepDuration        = 30.0
	PrepWarningSeconds  = 10
	BlastDuration       = 2.5
	InteractMessageTime = 1.2
	PhaseMessageTime    = 2.5

	HouseMaxHealth = 100
)

// House layout: a 2D cutaway with two floors.
const (
	Floor1Y    = ScreenHeight - 90  // standing line of the ground floor
	Floor2Y    = ScreenHeight - 220 // standing line of the upper floor
	Floor1Top  = ScreenHeight - 160
	Floor2Top  = ScreenHeight - 350
	GroundY    = Floor1Y + 6
	HouseLeft  = 150
	HouseRight = ScreenWidth - 150

	WallPadding   = 10
	InteriorLeft  = HouseLeft + WallPadding
	InteriorRight = HouseRight - WallPadding

	WindowWidth  = 40
	WindowHeight = 40
	WindowInset  = 8

	DoorX        = HouseLeft + 10
	DoorWidth    = 34
	DoorHeight   = 60
	WindowRightX = HouseRight - 10 - WindowWidth
	StoveX       = (HouseLeft+HouseRight)/2 - 20
	StoveWidth   = 40
	StoveHeight  = 30
	StoveReach   = 20 // stove interaction centre is offset from its left edge
	GunX         = (HouseLeft+HouseRight)/2 - 10

	InteractDistance = 40.0

	// Second-floor firing windows, measured at their centres.
	LeftWindowCenter  = HouseLeft + WindowInset + WindowWidth/2
	RightWindowCenter = HouseRight - WindowInset - WindowWidth/2
)

const (
	PlayerSpeed  = 3.0
	PlayerWidth  = 18
	PlayerHeight = 28

	BulletSpeed  = 7.0
	BulletRadius = 3
	BulletMargin = 20

	ThiefWidth          = 16
	ThiefHeight         = 26
	ThiefSpawnOffset    = 30
	ThiefLaneY          = Floor1Y + 5
	ThiefTargetLeft     = HouseLeft - 8
	ThiefTargetRight    = HouseRight + 8
	ThiefDamage         = 2
	ThiefDamageInterval = 0.5

	// Bullets leave the window at the thieves' chest height so a shot can connect.
	MuzzleY = ThiefLaneY - ThiefHeight/2
)

// Wave tuning.
const (
	WaveMaxQuota         = 8
	WaveBaseInterval     = 0.9
	WaveIntervalStep     = 0.07
	WaveMinInterval      = 0.45
	ThiefBaseSpeed       = 1.0
	ThiefSpeedPerWave    = 0.15
	ThiefMaxSpeedBonus   = 1.8
	ThiefSpeedNoiseLow   = -0.1
	ThiefSpeedNoiseHigh  = 0.2
	ToughThiefBaseChance = 0.15
	ToughThiefChanceStep = 0.05
	ToughThiefMaxChance  = 0.6
	HeavyWaveFrom        = 3 // waves started after this one get the bonus quota
	HeavyWaveBonus       = 4
)

// Title and quiz presentation.
const (
	TypewriterDelay     = 4 // frames per revealed character
	QuizFeedbackSeconds = 3.0
	QuizTitleSpeed      = 12.0
	QuizBounceLimit     = 10.0
	QuizWrapWidth       = 50
	QuizHeroScore       = 8
	QuizGoodScore       = 5

	TermKeyHoldMillis = 120
)

var (
	BackgroundColor = color.RGBA{15, 25, 35, 255}
	GrassColor      = color.RGBA{30, 80, 40, 255}
	HouseBodyColor  = color.RGBA{180, 170, 150, 255}
	WindowGlass     = color.RGBA{150, 200, 240, 255}
	WindowOpen      = color.RGBA{120, 180, 220, 255}
	WindowLocked    = color.RGBA{70, 130, 180, 255}
	DoorOpen        = color.RGBA{60, 60, 60, 255}
	DoorLocked      = color.RGBA{110, 110, 110, 255}
	StoveColor      = color.RGBA{100, 100, 100, 255}
	GunColor        = color.RGBA{80, 80, 80, 255}
	FlameColor      = color.RGBA{255, 140, 0, 255}
	PlayerColor     = color.RGBA{255, 215, 0, 255}
	BulletColor     = color.RGBA{255, 215, 0, 255}
	ThiefLeftColor  = color.RGBA{160, 50, 50, 255}
	ThiefRightColor = color.RGBA{50, 50, 160, 255}
	OutlineColor    = color.RGBA{0, 0, 0, 255}

	HealthBarColor    = color.RGBA{60, 180, 90, 255}
	HealthBarBack     = color.RGBA{40, 60, 40, 255}
	CoverageBarColor  = color.RGBA{255, 140, 0, 255}
	CoverageBarBack   = color.RGBA{60, 50, 40, 255}
	TextLightColor    = color.RGBA{255, 255, 255, 255}
	TextDimColor      = color.RGBA{200, 200, 200, 255}
	TitleColor        = color.RGBA{250, 215, 0, 255}
	DoneColor         = color.RGBA{60, 180, 90, 255}
	WarningColor      = color.RGBA{255, 140, 0, 255}
	AnswerColor       = color.RGBA{0, 255, 255, 255}
	ShadowColor       = color.RGBA{0, 0, 0, 255}
	DimOverlayColor   = color.RGBA{0, 0, 0, 170}
	BlastOverlayColor = color.RGBA{255, 190, 40, 70}
	QuizEndColor      = color.RGBA{0, 0, 50, 255}
	QuizBackground    = color.RGBA{28, 40, 70, 255}
	TitleBackground   = color.RGBA{20, 34, 52, 255}

	// Phase indicator colours, indexed by app.Phase.
	PhaseColors = []color.RGBA{
		{110, 110, 110, 220}, // start
		{70, 130, 180, 220},  // prep
		{220, 60, 60, 220},   // combat
		{255, 140, 0, 220},   // fail
		{255, 215, 0, 220},   // blast
		{60, 180, 90, 220},   // win
	}
)
