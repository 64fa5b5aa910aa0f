package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leterax/go-walker/pkg/controller"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  error
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Controller != controller.DefaultConfig() {
					t.Errorf("Controller = %+v, want defaults", cfg.Controller)
				}
				if cfg.Window.Width != 1280 || cfg.Logging.Level != "info" {
					t.Errorf("Window/Logging = %+v / %+v", cfg.Window, cfg.Logging)
				}
			},
		},
		{
			name: "partial override",
			content: `controller:
  base_speed: 0.2
  eye_height: 1.8
  spawn:
    x: 4
    z: -4
  head_bob:
    frequency: 12
world:
  obstacle_count: 10
  seed: 7
logging:
  level: debug
`,
			validate: func(t *testing.T, cfg *Config) {
				ctl := cfg.Controller
				if ctl.BaseSpeed != 0.2 || ctl.EyeHeight != 1.8 {
					t.Errorf("BaseSpeed/EyeHeight = %v/%v", ctl.BaseSpeed, ctl.EyeHeight)
				}
				if ctl.Spawn != (controller.Spawn{X: 4, Z: -4}) {
					t.Errorf("Spawn = %+v", ctl.Spawn)
				}
				if ctl.HeadBob.Frequency != 12 || ctl.HeadBob.AmplitudeY != controller.DefaultBobAmplitudeY {
					t.Errorf("HeadBob = %+v", ctl.HeadBob)
				}
				if ctl.RunMultiplier != controller.DefaultRunMultiplier {
					t.Errorf("RunMultiplier = %v, want default", ctl.RunMultiplier)
				}
				if cfg.World.ObstacleCount != 10 || cfg.World.Seed != 7 {
					t.Errorf("World = %+v", cfg.World)
				}
				if cfg.Logging.Level != "debug" {
					t.Errorf("Logging.Level = %q", cfg.Logging.Level)
				}
			},
		},
		{
			name:    "positive gravity",
			content: "controller:\n  gravity: 0.01\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "spawn outside boundary",
			content: "controller:\n  boundary: 10\n  spawn:\n    x: 11\nworld:\n  spread: 5\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "spread wider than boundary",
			content: "world:\n  spread: 100\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "bad deadzone",
			content: "input:\n  gamepad_deadzone: 1\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "clearing narrower than the player",
			content: "controller:\n  player_radius: 0.4\nworld:\n  clear_radius: 0\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "clearing as wide as the player",
			content: "controller:\n  player_radius: 0.4\nworld:\n  clear_radius: 0.4\n",
			validate: func(t *testing.T, cfg *Config) {
				if cfg.World.ClearRadius != 0.4 {
					t.Errorf("World.ClearRadius = %v", cfg.World.ClearRadius)
				}
			},
		},
		{
			name:    "negative player radius",
			content: "controller:\n  player_radius: -1\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "negative look sensitivity",
			content: "controller:\n  look_sensitivity: -0.002\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "negative head-bob amplitude",
			content: "controller:\n  head_bob:\n    amplitude_y: -0.1\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "zero obstacle size",
			content: "world:\n  half_extent: 0\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "unknown log level",
			content: "logging:\n  level: loud\n",
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
	if _, err := Load(writeConfig(t, "controller: [1, 2")); err == nil {
		t.Error("Load() of malformed YAML succeeded")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}
