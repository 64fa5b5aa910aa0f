// Package config loads the demo configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/leterax/go-walker/pkg/controller"
	"github.com/leterax/go-walker/pkg/world"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Controller controller.Config `yaml:"controller"`
	World      world.Config      `yaml:"world"`
	Window     WindowConfig      `yaml:"window"`
	Input      InputConfig       `yaml:"input"`
	Logging    LoggingConfig     `yaml:"logging"`
}

type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	VSync  bool    `yaml:"vsync"`
	FOV    float32 `yaml:"fov"`
}

type InputConfig struct {
	GamepadDeadzone float32 `yaml:"gamepad_deadzone"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Controller: controller.DefaultConfig(),
		World:      world.DefaultConfig(),
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Go-Walker",
			VSync:  true,
			FOV:    75,
		},
		Input: InputConfig{
			GamepadDeadzone: 0.15,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the controller and world rely on.
func (c *Config) Validate() error {
	ctl := c.Controller
	switch {
	case ctl.EyeHeight <= 0:
		return fmt.Errorf("%w: controller.eye_height must be positive", ErrInvalid)
	case ctl.BaseSpeed <= 0:
		return fmt.Errorf("%w: controller.base_speed must be positive", ErrInvalid)
	case ctl.RunMultiplier <= 0:
		return fmt.Errorf("%w: controller.run_multiplier must be positive", ErrInvalid)
	case ctl.Gravity >= 0:
		return fmt.Errorf("%w: controller.gravity must be negative", ErrInvalid)
	case ctl.JumpStrength < 0:
		return fmt.Errorf("%w: controller.jump_strength must not be negative", ErrInvalid)
	case ctl.Boundary <= 0:
		return fmt.Errorf("%w: controller.boundary must be positive", ErrInvalid)
	case ctl.PlayerRadius < 0:
		return fmt.Errorf("%w: controller.player_radius must not be negative", ErrInvalid)
	case ctl.LookSensitivity < 0:
		return fmt.Errorf("%w: controller.look_sensitivity must not be negative", ErrInvalid)
	case ctl.HeadBob.Frequency < 0 || ctl.HeadBob.AmplitudeX < 0 || ctl.HeadBob.AmplitudeY < 0 || ctl.HeadBob.RunRate < 0:
		return fmt.Errorf("%w: controller.head_bob values must not be negative", ErrInvalid)
	case controller.OutOfBounds(ctl.SpawnPosition(), ctl.Boundary):
		return fmt.Errorf("%w: controller.spawn lies outside the boundary", ErrInvalid)
	case c.World.ObstacleCount < 0:
		return fmt.Errorf("%w: world.obstacle_count must not be negative", ErrInvalid)
	case c.World.HalfExtent <= 0 || c.World.Spread <= 0:
		return fmt.Errorf("%w: world.half_extent and world.spread must be positive", ErrInvalid)
	case c.World.ClearRadius < ctl.PlayerRadius:
		return fmt.Errorf("%w: world.clear_radius %v is smaller than controller.player_radius %v, spawn could be blocked",
			ErrInvalid, c.World.ClearRadius, ctl.PlayerRadius)
	case c.World.Spread > ctl.Boundary:
		return fmt.Errorf("%w: world.spread %v exceeds controller.boundary %v", ErrInvalid, c.World.Spread, ctl.Boundary)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Input.GamepadDeadzone < 0 || c.Input.GamepadDeadzone >= 1:
		return fmt.Errorf("%w: input.gamepad_deadzone must be in [0, 1)", ErrInvalid)
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	return nil
}
