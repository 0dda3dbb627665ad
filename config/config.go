package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int     // simulation ticks per second
	Scale  float64 // window scale relative to the logical screen
}

// PhysicsConfig contains the two world scalars every movement rule is built on.
type PhysicsConfig struct {
	GravityStep float64 // pixels per frame, shared by falling and jump ascent
	TileSize    float64 // edge length of one grid cell
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed        float64 // horizontal pixels per frame
	JumpDuration int     // frames of ascent per jump

	// Shooting
	ShootCooldown int // frames between two shots

	Sprite string
}

// EnemyConfig contains configuration shared by all patrolling enemies
type EnemyConfig struct {
	Width  float64
	Height float64
	Speed  float64 // base patrol speed
	Sprite string
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Width  float64
	Height float64
	Speed  float64

	// Spawn offsets relative to the owner's body
	RightOffsetDivisor float64 // facing right: X = owner.X + owner.W/RightOffsetDivisor
	LeftOffset         float64 // facing left: X = owner.X - LeftOffset
	VerticalOffset     float64 // Y = owner.Y + owner.H/2 + VerticalOffset

	Sprite string
}

// EffectsConfig contains render-only effect configuration
type EffectsConfig struct {
	RespawnFlashSeconds  float32 // length of the fade-in after a respawn
	RespawnFlashMinAlpha float32 // alpha the player fades in from
}

// UIConfig contains colors and HUD layout values
type UIConfig struct {
	BackgroundColor color.RGBA
	BlockColor      color.RGBA
	PlayerColor     color.RGBA
	EnemyColor      color.RGBA
	BulletColor     color.RGBA
	HUDTextColor    color.RGBA
	HUDBgColor      color.RGBA
	BannerColor     color.RGBA

	HUDMargin float64

	Background string // background image name in the sprite directory
}

// DebugConfig contains debug options
type DebugConfig struct {
	DrawColliders bool   // outline every resolv object
	SpriteDir     string // directory searched for PNG sprites
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Bullet BulletConfig
var Effects EffectsConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 37, G: 64, B: 138, A: 255}
	Stone        = color.RGBA{R: 110, G: 96, B: 82, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing and patrol heading
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	Reset()
}

// Reset restores every package-level config value to its default.
func Reset() {
	C = &Config{
		Width:  1900,
		Height: 1000,
		TPS:    60,
		Scale:  1.0,
	}

	Physics = PhysicsConfig{
		GravityStep: 10,
		TileSize:    50,
	}

	Player = PlayerConfig{
		Width:         50,
		Height:        70,
		Speed:         5,
		JumpDuration:  20,
		ShootCooldown: 10,
		Sprite:        "dude2.png",
	}

	Enemy = EnemyConfig{
		Width:  70,
		Height: 70,
		Speed:  5,
		Sprite: "enemy.png",
	}

	Bullet = BulletConfig{
		Width:              20,
		Height:             10,
		Speed:              10,
		RightOffsetDivisor: 1.4,
		LeftOffset:         3,
		VerticalOffset:     1,
		Sprite:             "bullet.png",
	}

	Effects = EffectsConfig{
		RespawnFlashSeconds:  0.75,
		RespawnFlashMinAlpha: 0.2,
	}

	UI = UIConfig{
		BackgroundColor: DarkBlue,
		BlockColor:      Stone,
		PlayerColor:     Blue,
		EnemyColor:      LightRed,
		BulletColor:     Yellow,
		HUDTextColor:    White,
		HUDBgColor:      BlackOverlay,
		BannerColor:     Yellow,
		HUDMargin:       10,
		Background:      "bg.png",
	}

	Debug = DebugConfig{
		DrawColliders: false,
		SpriteDir:     "sprites",
	}
}
