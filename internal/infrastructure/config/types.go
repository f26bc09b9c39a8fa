package config

import (
	"fmt"

	"github.com/younwookim/motionctl/internal/domain/entity"
	"github.com/younwookim/motionctl/internal/domain/motion"
)

// Physics backends
const (
	BackendTile     = "tile"
	BackendChipmunk = "chipmunk"
)

// MotionConfig is the root config for motion.json / motion.yaml
type MotionConfig struct {
	Display  DisplayConfig   `json:"display" yaml:"display"`
	Physics  PhysicsSettings `json:"physics" yaml:"physics"`
	Player   PlayerConfig    `json:"player" yaml:"player"`
	Movement MovementConfig  `json:"movement" yaml:"movement"`
	Jump     JumpConfig      `json:"jump" yaml:"jump"`
	Dash     DashConfig      `json:"dash" yaml:"dash"`
	Ground   GroundConfig    `json:"ground" yaml:"ground"`
	Attack   AttackConfig    `json:"attack" yaml:"attack"`
	Input    InputConfig     `json:"input" yaml:"input"`
	Logging  LoggingConfig   `json:"logging" yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

type PhysicsSettings struct {
	Backend      string  `json:"backend" yaml:"backend"`
	Gravity      float64 `json:"gravity" yaml:"gravity"` // px/s², positive is down on screen
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
	Iterations   int     `json:"iterations" yaml:"iterations"` // chipmunk solver iterations
}

type PlayerConfig struct {
	Hitbox Rect `json:"hitbox" yaml:"hitbox"`
}

type Rect struct {
	OffsetX int `json:"offsetX" yaml:"offsetX"`
	OffsetY int `json:"offsetY" yaml:"offsetY"`
	Width   int `json:"width" yaml:"width"`
	Height  int `json:"height" yaml:"height"`
}

type MovementConfig struct {
	WalkSpeed float64 `json:"walkSpeed" yaml:"walkSpeed"`
}

type JumpConfig struct {
	Force             float64 `json:"force" yaml:"force"`
	FallMultiplier    float64 `json:"fallMultiplier" yaml:"fallMultiplier"`
	LowJumpMultiplier float64 `json:"lowJumpMultiplier" yaml:"lowJumpMultiplier"`
}

type DashConfig struct {
	Speed       float64 `json:"speed" yaml:"speed"`
	Duration    float64 `json:"duration" yaml:"duration"`
	ArmingDelay float64 `json:"armingDelay" yaml:"armingDelay"`
}

// GroundConfig describes the ground check circle, offset from the hitbox
// center in world units (y-up)
type GroundConfig struct {
	OffsetX float64  `json:"offsetX" yaml:"offsetX"`
	OffsetY float64  `json:"offsetY" yaml:"offsetY"`
	Radius  float64  `json:"radius" yaml:"radius"`
	Layers  []string `json:"layers" yaml:"layers"`
}

type AttackConfig struct {
	LockUntilFinished bool `json:"lockUntilFinished" yaml:"lockUntilFinished"`
}

// InputConfig controls axis smoothing, in axis units per second
type InputConfig struct {
	Sensitivity float64 `json:"sensitivity" yaml:"sensitivity"`
	Gravity     float64 `json:"gravity" yaml:"gravity"`
	DeadZone    float64 `json:"deadZone" yaml:"deadZone"`
	Snap        bool    `json:"snap" yaml:"snap"`
}

type LoggingConfig struct {
	Level       string `json:"level" yaml:"level"`
	Format      string `json:"format" yaml:"format"` // "console" or "json"
	Development bool   `json:"development" yaml:"development"`
}

// Default returns the built-in configuration. Loaded files are decoded on
// top of it, so omitted fields keep these values.
func Default() MotionConfig {
	return MotionConfig{
		Display: DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Scale: 2, Framerate: 60},
		Physics: PhysicsSettings{Backend: BackendTile, Gravity: 800, MaxFallSpeed: 400, Iterations: 10},
		Player: PlayerConfig{
			Hitbox: Rect{OffsetX: 0, OffsetY: 0, Width: 12, Height: 24},
		},
		Movement: MovementConfig{WalkSpeed: 120},
		Jump:     JumpConfig{Force: 300, FallMultiplier: 2.5, LowJumpMultiplier: 2.0},
		Dash:     DashConfig{Speed: 400, Duration: 0.3, ArmingDelay: 0.15},
		Ground:   GroundConfig{OffsetX: 0, OffsetY: -12, Radius: 3, Layers: []string{"ground"}},
		Input:    InputConfig{Sensitivity: 3, Gravity: 3, DeadZone: 0.001, Snap: true},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// Tuning converts the config into controller tuning
func (c *MotionConfig) Tuning() (motion.Tuning, error) {
	mask, err := entity.ParseMask(c.Ground.Layers)
	if err != nil {
		return motion.Tuning{}, fmt.Errorf("ground layers: %w", err)
	}

	return motion.Tuning{
		WalkSpeed:               c.Movement.WalkSpeed,
		JumpForce:               c.Jump.Force,
		DashSpeed:               c.Dash.Speed,
		DashDuration:            c.Dash.Duration,
		DashArmingDelay:         c.Dash.ArmingDelay,
		FallMultiplier:          c.Jump.FallMultiplier,
		LowJumpMultiplier:       c.Jump.LowJumpMultiplier,
		GroundOffset:            motion.Vec2{X: c.Ground.OffsetX, Y: c.Ground.OffsetY},
		GroundRadius:            c.Ground.Radius,
		GroundMask:              motion.LayerMask(mask),
		LockAttackUntilFinished: c.Attack.LockUntilFinished,
	}, nil
}
