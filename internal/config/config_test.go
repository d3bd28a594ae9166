package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/cubewalk/internal/engine/collision"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.FOV != 45 || cfg.Graphics.Near != 0.1 || cfg.Graphics.Far != 100 {
		t.Errorf("unexpected projection defaults: %+v", cfg.Graphics)
	}
	if cfg.Graphics.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %s", cfg.Graphics.ScreenshotDir)
	}

	// Test camera defaults
	if cfg.Camera.Sensitivity != 0.003 {
		t.Errorf("expected sensitivity 0.003, got %f", cfg.Camera.Sensitivity)
	}
	if cfg.Camera.Radius != collision.Radius {
		t.Errorf("expected radius %f, got %f", collision.Radius, cfg.Camera.Radius)
	}
	if cfg.Camera.Start != [3]float32{0, 0, 5} {
		t.Errorf("expected start (0,0,5), got %v", cfg.Camera.Start)
	}

	// Test scene defaults
	if r, err := cfg.Response(); err != nil || r != collision.Block {
		t.Errorf("expected block response, got %v (%v)", r, err)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fov_degrees: 70
  near: 0.05
  far: 250

camera:
  sensitivity: 0.002
  move_speed: 4
  radius: 0.3
  start: [1, 0, 8]

scene:
  spin_speed: 0
  collision_response: push

logging:
  level: "debug"
  log_file: "cubewalk.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.FOV != 70 || cfg.Graphics.Near != 0.05 || cfg.Graphics.Far != 250 {
		t.Errorf("unexpected projection settings: %+v", cfg.Graphics)
	}

	if cfg.Camera.MoveSpeed != 4 {
		t.Errorf("expected move speed 4, got %f", cfg.Camera.MoveSpeed)
	}
	if cfg.Camera.Start != [3]float32{1, 0, 8} {
		t.Errorf("expected start (1,0,8), got %v", cfg.Camera.Start)
	}

	if cfg.Scene.SpinSpeed != 0 {
		t.Errorf("expected spin speed 0, got %f", cfg.Scene.SpinSpeed)
	}
	if r, _ := cfg.Response(); r != collision.Push {
		t.Errorf("expected push response, got %v", r)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "cubewalk.log" {
		t.Errorf("expected log file 'cubewalk.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"zero height", func(c *Config) { c.Graphics.Height = 0 }},
		{"zero fov", func(c *Config) { c.Graphics.FOV = 0 }},
		{"fov 180", func(c *Config) { c.Graphics.FOV = 180 }},
		{"zero near", func(c *Config) { c.Graphics.Near = 0 }},
		{"near equals far", func(c *Config) { c.Graphics.Far = c.Graphics.Near }},
		{"far before near", func(c *Config) { c.Graphics.Far = 0.01 }},
		{"negative radius", func(c *Config) { c.Camera.Radius = -1 }},
		{"negative speed", func(c *Config) { c.Camera.MoveSpeed = -1 }},
		{"unknown response", func(c *Config) { c.Scene.CollisionResponse = "bounce" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestAspect(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Width = 1600
	cfg.Graphics.Height = 800
	if cfg.Aspect() != 2 {
		t.Errorf("expected aspect 2, got %f", cfg.Aspect())
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "camera flags",
			setup: func() {
				*flagSensitivity = 0.01
				*flagSpeed = 6
			},
			verify: func(cfg *Config) {
				if cfg.Camera.Sensitivity != 0.01 {
					t.Errorf("expected sensitivity 0.01, got %f", cfg.Camera.Sensitivity)
				}
				if cfg.Camera.MoveSpeed != 6 {
					t.Errorf("expected move speed 6, got %f", cfg.Camera.MoveSpeed)
				}
			},
			teardown: func() {
				*flagSensitivity = 0
				*flagSpeed = 0
			},
		},
		{
			name:  "push flag",
			setup: func() { *flagPush = true },
			verify: func(cfg *Config) {
				if r, _ := cfg.Response(); r != collision.Push {
					t.Errorf("expected push response, got %v", r)
				}
			},
			teardown: func() { *flagPush = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("graphics:\n  near: 10\n  far: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid from Load, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.CollisionResponse = "push"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Scene.CollisionResponse != "push" {
		t.Errorf("expected saved response 'push', got %q", loaded.Scene.CollisionResponse)
	}
}

func TestSaveToRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 0
	if err := cfg.SaveTo(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}
