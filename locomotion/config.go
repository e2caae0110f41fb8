package locomotion

import "github.com/chewxy/math32"

// Config holds every tunable of the controller. Values are read at the start of each tick and are not
// validated: out of range values produce degenerate motion but never a failed tick.
type Config struct {
	// WalkSpeed and SprintSpeed are in metres per second.
	WalkSpeed   float32 `toml:"walk_speed" yaml:"walk_speed"`
	SprintSpeed float32 `toml:"sprint_speed" yaml:"sprint_speed"`
	// Acceleration and Deceleration are the rates, in metres per second per second, at which the smoothed
	// speed approaches the target speed.
	Acceleration float32 `toml:"acceleration" yaml:"acceleration"`
	Deceleration float32 `toml:"deceleration" yaml:"deceleration"`

	// RotationSharpness controls how fast the body turns to face its movement direction. Higher is snappier.
	RotationSharpness float32 `toml:"rotation_sharpness" yaml:"rotation_sharpness"`

	JumpHeight float32 `toml:"jump_height" yaml:"jump_height"`
	// Gravity is the signed vertical acceleration, negative pointing down.
	Gravity float32 `toml:"gravity" yaml:"gravity"`
	// GroundedStickForce is the small negative vertical velocity held while grounded.
	GroundedStickForce float32 `toml:"grounded_stick_force" yaml:"grounded_stick_force"`
	// TerminalFallSpeed is the lowest vertical velocity allowed. It is negative.
	TerminalFallSpeed float32 `toml:"terminal_fall_speed" yaml:"terminal_fall_speed"`

	// KeepFacingOnBackpedal stops the body from turning around when only moving backwards.
	KeepFacingOnBackpedal bool    `toml:"keep_facing_on_backpedal" yaml:"keep_facing_on_backpedal"`
	BackpedalMultiplier   float32 `toml:"backpedal_multiplier" yaml:"backpedal_multiplier"`
	// InputDeadzone is how far below zero the forward axis must be to count as moving backwards.
	InputDeadzone float32 `toml:"input_deadzone" yaml:"input_deadzone"`
	// LateralDeadzone is the sideways input below which backwards movement counts as backwards only.
	LateralDeadzone float32 `toml:"lateral_deadzone" yaml:"lateral_deadzone"`

	// CoyoteTime is how long, in seconds, a jump is still accepted after leaving the ground.
	CoyoteTime float32 `toml:"coyote_time" yaml:"coyote_time"`
	// JumpBuffer is how long, in seconds, an early jump press is remembered.
	JumpBuffer float32 `toml:"jump_buffer" yaml:"jump_buffer"`
	// MaxAirControl is the fraction of horizontal velocity applied while airborne.
	MaxAirControl float32 `toml:"max_air_control" yaml:"max_air_control"`

	// SlopeSlideForce pushes the body down surfaces steeper than the mover's slope limit.
	SlopeSlideForce float32 `toml:"slope_slide_force" yaml:"slope_slide_force"`

	ProbeRadius   float32 `toml:"probe_radius" yaml:"probe_radius"`
	ProbeDistance float32 `toml:"probe_distance" yaml:"probe_distance"`
	ProbeMask     uint32  `toml:"probe_mask" yaml:"probe_mask"`

	// Debug enables per-tick trace logging.
	Debug bool `toml:"debug" yaml:"debug"`
}

// DefaultConfig returns the configuration with all assists enabled.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:         2.6,
		SprintSpeed:       5.2,
		Acceleration:      12,
		Deceleration:      14,
		RotationSharpness: 12,

		JumpHeight:         1.2,
		Gravity:            -30,
		GroundedStickForce: -2,
		TerminalFallSpeed:  -50,

		KeepFacingOnBackpedal: true,
		BackpedalMultiplier:   0.6,
		InputDeadzone:         0.1,
		LateralDeadzone:       0.3,

		CoyoteTime:    0.12,
		JumpBuffer:    0.12,
		MaxAirControl: 0.6,

		SlopeSlideForce: 12,

		ProbeRadius:   0.3,
		ProbeDistance: 0.25,
		ProbeMask:     ^uint32(0),
	}
}

// Simple returns a configuration with every assist disabled: no grace periods, no backpedal decoupling,
// full air control, no slope sliding and no terminal fall speed.
func Simple() Config {
	c := DefaultConfig()
	c.CoyoteTime, c.JumpBuffer = 0, 0
	c.KeepFacingOnBackpedal = false
	c.BackpedalMultiplier = 1
	c.MaxAirControl = 1
	c.SlopeSlideForce = 0
	c.TerminalFallSpeed = math32.Inf(-1)
	return c
}

// JumpVelocity returns the upward velocity needed to reach JumpHeight under Gravity.
func (c Config) JumpVelocity() float32 {
	return math32.Sqrt(2 * c.JumpHeight * math32.Abs(c.Gravity))
}

// MaxSpeed returns the largest speed the smoothed speed may reach.
func (c Config) MaxSpeed() float32 {
	return math32.Max(c.WalkSpeed, c.SprintSpeed)
}
