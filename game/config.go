package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every tunable of the simulation. Zero value is not
// playable; start from Default and override.
type Config struct {
	// HalfExtent defines the square playfield bounds test: a position is
	// inside iff both components are strictly within (-HalfExtent, HalfExtent)
	HalfExtent float64 `yaml:"playfield_half_extent"`

	// GravityStep is the per-tick downward displacement of the bird
	GravityStep float64 `yaml:"gravity_step"`

	// DriftStep is the per-tick leftward displacement of every ball
	DriftStep float64 `yaml:"drift_step"`

	// LiftStep is the instantaneous upward displacement applied by a tap
	LiftStep float64 `yaml:"lift_step"`

	// SpawnDenom is the per-tick spawn odds: one chance in SpawnDenom
	SpawnDenom int `yaml:"spawn_chance_denominator"`

	// SpawnX is the fixed horizontal spawn coordinate at the right edge
	SpawnX float64 `yaml:"spawn_x"`

	// Capacity bounds the ball collection; the oldest ball is evicted
	// whenever a tick ends with more than Capacity balls
	Capacity int `yaml:"obstacle_capacity"`

	// CollisionRadius is the survival distance: the bird dies when any
	// ball comes this close or closer
	CollisionRadius float64 `yaml:"collision_radius"`

	// TickDelayMS is the delay between scheduled ticks in milliseconds
	TickDelayMS int `yaml:"tick_delay_ms"`

	// BallDiameter and BirdDiameter are draw sizes in playfield units
	BallDiameter int `yaml:"ball_diameter"`
	BirdDiameter int `yaml:"bird_diameter"`

	// Immediate schedules the first tick at Start instead of waiting for
	// the first tap
	Immediate bool `yaml:"immediate_start"`
}

// Default returns the standard tuning.
func Default() Config {
	return Config{
		HalfExtent:      200,
		GravityStep:     5,
		DriftStep:       3,
		LiftStep:        30,
		SpawnDenom:      15,
		SpawnX:          199,
		Capacity:        30,
		CollisionRadius: 15,
		TickDelayMS:     50,
		BallDiameter:    20,
		BirdDiameter:    10,
	}
}

// Load reads a YAML file and merges it over the defaults, so partial files
// only override what they name.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("game: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("game: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects tunings the tick algorithm cannot run with.
func (c Config) Validate() error {
	switch {
	case c.HalfExtent <= 0:
		return fmt.Errorf("game: playfield_half_extent must be positive, got %v", c.HalfExtent)
	case c.SpawnDenom <= 0:
		return fmt.Errorf("game: spawn_chance_denominator must be positive, got %d", c.SpawnDenom)
	case c.Capacity <= 0:
		return fmt.Errorf("game: obstacle_capacity must be positive, got %d", c.Capacity)
	case c.CollisionRadius < 0:
		return fmt.Errorf("game: collision_radius must not be negative, got %v", c.CollisionRadius)
	case c.TickDelayMS <= 0:
		return fmt.Errorf("game: tick_delay_ms must be positive, got %d", c.TickDelayMS)
	case c.BallDiameter <= 0 || c.BirdDiameter <= 0:
		return fmt.Errorf("game: diameters must be positive, got ball %d bird %d", c.BallDiameter, c.BirdDiameter)
	}
	return nil
}

// Tick returns the tick delay as a duration.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickDelayMS) * time.Millisecond
}
