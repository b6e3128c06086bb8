package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS render layer; split-screen culling happens inside
// the renderer, not through ECS layers.
const Default ecs.LayerID = 0

// MarbleConfig contains all marble movement values. Speeds are in pixels per
// second, altitude in pixels above the arena floor.
type MarbleConfig struct {
	Radius       float64
	Acceleration float64
	AirControl   float64 // fraction of Acceleration available while airborne
	MaxSpeed     float64
	Friction     float64 // speed lost per second while grounded
	Restitution  float64 // wall bounce

	// Vertical
	Gravity       float64
	JumpSpeed     float64
	DropSpeed     float64 // downward speed applied by a drop

	SquashLerpSpeed float64 // how fast squash/stretch returns to 1

	// Dash
	DashImpulse float64
	MaxDash     float64
	DashDecay   float64 // meter drained per second
}

// PickupConfig contains pickup spawning and falling values
type PickupConfig struct {
	PerType            int
	MinSpawnAltitude   float64
	SpawnAltitudeRange float64
	RotatePerSecond    float64 // degrees
	Gravity            float64
	Size               float64
	ContactRadius      float64
	ContactAltitude    float64 // max altitude difference for a marble to grab it
	RespawnSeconds     float64 // 0 disables respawning
	GlowPeriod         float64 // seconds per glow pulse
}

// DroneConfig contains drone hover values
type DroneConfig struct {
	Anchors       [3][2]float64 // offsets from the owner's marble
	HoverAltitude float64
	FollowRate    float64 // lerp factor per second
	BobAmplitude  float64
	BobPeriod     float64
	Size          float64
}

// ProjectileTypeConfig contains values for one projectile kind
type ProjectileTypeConfig struct {
	Speed     float64
	Lifetime  float64
	Radius    float64
	Knockback float64

	// Mortar arc
	LaunchSpeedZ float64
	Gravity      float64

	// Seeker homing, radians per second
	TurnRate float64
}

// ProjectileConfig maps drone type names to projectile values
type ProjectileConfig struct {
	Rocket ProjectileTypeConfig
	Mortar ProjectileTypeConfig
	Seeker ProjectileTypeConfig

	HitAltitude float64 // max altitude difference for a hit
	HitFlash    int     // frames
}

// ParticleConfig contains wheel particle values
type ParticleConfig struct {
	Deadzone        float64
	DustSpeedScale  float64
	ChargeRateScale float64
	DashRateScale   float64
	DashSizeScale   float64
	JetRate         float64
	BurstCount      int
	Lifetime        float64
	MaxPerEmitter   int
	Drag            float64
	WorldScale      float64 // pixels per emitter unit for speed, size and lift
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HitIntensity  float64 // pixels
	HitDuration   int     // frames
	DropIntensity float64
	DropDuration  int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the marble (0.0-1.0)
	LookAhead       float64 // seconds of velocity to lead by
}

// MatchConfig contains the values a match is started with
type MatchConfig struct {
	LocalPlayerCount     int
	PickupsPerType       int
	PickupRespawnSeconds float64
	Arena                string
}

// HUDConfig contains per-viewport overlay values
type HUDConfig struct {
	Margin         float64
	DashBarWidth   float64
	DashBarHeight  float64
	SlotSize       float64
	SlotGap        float64
	DashBarColor   color.RGBA
	DashBarBgColor color.RGBA
	SlotColor      color.RGBA
	SelectedColor  color.RGBA
}

// PauseConfig contains pause overlay values
type PauseConfig struct {
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
	RosterLineHeight  float64
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DeltaTime returns the fixed step length in seconds.
func (c *Config) DeltaTime() float64 {
	return 1.0 / float64(c.TPS)
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the arena
	Overlay  bool // Draw collision shapes and dash state
}

// PlayerColorsConfig holds the tint of each player slot
type PlayerColorsConfig struct {
	Colors [4]color.RGBA
}

// Global configuration instances
var C *Config
var Marble MarbleConfig
var Pickup PickupConfig
var Drone DroneConfig
var Projectile ProjectileConfig
var Particle ParticleConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var Match MatchConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig
var PlayerColors PlayerColorsConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	FloorColor   = color.RGBA{R: 46, G: 52, B: 64, A: 255}
	WallColor    = color.RGBA{R: 94, G: 102, B: 120, A: 255}
	ShadowColor  = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	DustColor    = color.RGBA{R: 150, G: 140, B: 120, A: 200}
	DividerColor = color.RGBA{R: 10, G: 10, B: 14, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Marble = MarbleConfig{
		Radius:       8,
		Acceleration: 520,
		AirControl:   0.35,
		MaxSpeed:     200,
		Friction:     140,
		Restitution:  0.6,

		Gravity:   600,
		JumpSpeed: 220,
		DropSpeed: 420,

		SquashLerpSpeed: 0.2,

		DashImpulse: 340,
		MaxDash:     1.0,
		DashDecay:   0.6,
	}

	Pickup = PickupConfig{
		PerType:            5,
		MinSpawnAltitude:   25,
		SpawnAltitudeRange: 75,
		RotatePerSecond:    90,
		Gravity:            40,
		Size:               10,
		ContactRadius:      12,
		ContactAltitude:    14,
		RespawnSeconds:     8,
		GlowPeriod:         0.8,
	}

	Drone = DroneConfig{
		Anchors: [3][2]float64{
			{-16, -14},
			{16, -14},
			{0, 18},
		},
		HoverAltitude: 16,
		FollowRate:    8,
		BobAmplitude:  2,
		BobPeriod:     1.2,
		Size:          6,
	}

	Projectile = ProjectileConfig{
		Rocket: ProjectileTypeConfig{
			Speed:     360,
			Lifetime:  1.5,
			Radius:    3,
			Knockback: 260,
		},
		Mortar: ProjectileTypeConfig{
			Speed:        170,
			Lifetime:     3,
			Radius:       5,
			Knockback:    380,
			LaunchSpeedZ: 260,
			Gravity:      420,
		},
		Seeker: ProjectileTypeConfig{
			Speed:     230,
			Lifetime:  3.5,
			Radius:    3,
			Knockback: 320,
			TurnRate:  4,
		},
		HitAltitude: 16,
		HitFlash:    8,
	}

	Particle = ParticleConfig{
		Deadzone:        0.25,
		DustSpeedScale:  5,
		ChargeRateScale: 2,
		DashRateScale:   100,
		DashSizeScale:   0.3,
		JetRate:         60,
		BurstCount:      12,
		Lifetime:        0.5,
		MaxPerEmitter:   64,
		Drag:            3,
		WorldScale:      8,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:  4.0,
		HitDuration:   10,
		DropIntensity: 2.0,
		DropDuration:  6,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		LookAhead:       0.25,
	}

	Match = MatchConfig{
		LocalPlayerCount:     2,
		PickupsPerType:       Pickup.PerType,
		PickupRespawnSeconds: Pickup.RespawnSeconds,
		Arena:                "crater",
	}

	HUD = HUDConfig{
		Margin:         4,
		DashBarWidth:   40,
		DashBarHeight:  4,
		SlotSize:       8,
		SlotGap:        3,
		DashBarColor:   LightBlue,
		DashBarBgColor: BlackOverlay,
		SlotColor:      color.RGBA{R: 60, G: 60, B: 80, A: 200},
		SelectedColor:  Yellow,
	}

	Pause = PauseConfig{
		MenuOptions:       []string{"RESUME", "RESTART MATCH", "SETTINGS", "LOBBY", "EXIT"},
		MenuItemHeight:    20,
		MenuItemGap:       8,
		RosterLineHeight:  14,
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}

	PlayerColors = PlayerColorsConfig{
		Colors: [4]color.RGBA{
			{R: 235, G: 80, B: 80, A: 255},
			{R: 80, G: 150, B: 240, A: 255},
			{R: 110, G: 210, B: 100, A: 255},
			{R: 240, G: 200, B: 70, A: 255},
		},
	}
}
