// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cubewalk/internal/engine/collision"
)

// ErrInvalid is returned by Validate for settings the camera or renderer
// cannot work with.
var ErrInvalid = errors.New("invalid config")

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds first-person camera settings.
type CameraConfig struct {
	Sensitivity float32    `yaml:"sensitivity"` // radians per pixel
	MoveSpeed   float32    `yaml:"move_speed"`  // units per second
	Radius      float32    `yaml:"radius"`      // collision radius
	Start       [3]float32 `yaml:"start"`
}

// SceneConfig holds demo scene settings.
type SceneConfig struct {
	SpinSpeed         float32 `yaml:"spin_speed"`         // radians per second
	CollisionResponse string  `yaml:"collision_response"` // "block" or "push"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FOV:        45,
			Near:       0.1,
			Far:        100,

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Sensitivity: 0.003,
			MoveSpeed:   2.5,
			Radius:      collision.Radius,
			Start:       [3]float32{0, 0, 5},
		},
		Scene: SceneConfig{
			SpinSpeed:         0.8,
			CollisionResponse: collision.Block.String(),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Aspect returns the initial window aspect ratio.
func (c *Config) Aspect() float32 {
	return float32(c.Graphics.Width) / float32(c.Graphics.Height)
}

// Response returns the parsed collision response.
func (c *Config) Response() (collision.Response, error) {
	return collision.ParseResponse(c.Scene.CollisionResponse)
}

// Validate checks the settings the projection and collision code rely on.
func (c *Config) Validate() error {
	g := c.Graphics
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, g.Width, g.Height)
	case g.FOV <= 0 || g.FOV >= 180:
		return fmt.Errorf("%w: fov_degrees %v must be in (0, 180)", ErrInvalid, g.FOV)
	case g.Near <= 0:
		return fmt.Errorf("%w: near %v must be positive", ErrInvalid, g.Near)
	case g.Far <= g.Near:
		return fmt.Errorf("%w: far %v must be greater than near %v", ErrInvalid, g.Far, g.Near)
	}

	if c.Camera.Radius < 0 {
		return fmt.Errorf("%w: camera radius %v must not be negative", ErrInvalid, c.Camera.Radius)
	}
	if c.Camera.MoveSpeed < 0 {
		return fmt.Errorf("%w: move_speed %v must not be negative", ErrInvalid, c.Camera.MoveSpeed)
	}
	if _, err := c.Response(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
