// Package config holds the viewer settings read from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window Window `toml:"window"`
	Assets Assets `toml:"assets"`
	Camera Camera `toml:"camera"`
	Scene  Scene  `toml:"scene"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	VSync      bool   `toml:"vsync"`
	Fullscreen bool   `toml:"fullscreen"`
}

type Assets struct {
	// Root resolves every relative path below and inside material descriptions.
	Root            string `toml:"root"`
	Model           string `toml:"model"`
	Materials       string `toml:"materials"`
	DefaultMaterial string `toml:"default_material"`
}

// Camera angles are in degrees.
type Camera struct {
	Position    [3]float32 `toml:"position"`
	Yaw         float32    `toml:"yaw"`
	Pitch       float32    `toml:"pitch"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	FOV         float32    `toml:"fov"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
}

type Scene struct {
	Scale      float32    `toml:"scale"`
	RotateX    float32    `toml:"rotate_x"`
	ClearColor [4]float32 `toml:"clear_color"`
	// Skybox draws the first material cubemap behind the scene.
	Skybox     bool       `toml:"skybox"`
}

type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Directional Lightmapping",
			VSync:  true,
		},
		Assets: Assets{
			Root:            "assets",
			Model:           "models/tutorial.glb",
			Materials:       "materials",
			DefaultMaterial: "default",
		},
		Camera: Camera{
			Position:    [3]float32{0, 5, 0},
			Yaw:         -180,
			Speed:       6,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         500,
		},
		Scene: Scene{
			Scale:      0.01,
			RotateX:    -90,
			ClearColor: [4]float32{0.3, 0.3, 0.4, 1},
			Skybox:     true,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over Default. Keys not known to Config are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML into cfg, leaving absent keys untouched.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Validate reports every out-of-range setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Assets.Model == "" {
		errs = append(errs, errors.New("assets.model is empty"))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%g far=%g need 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FOV < 1 || c.Camera.FOV > 45 {
		errs = append(errs, fmt.Errorf("camera.fov %g outside [1, 45]", c.Camera.FOV))
	}
	if c.Scene.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scene.scale %g must be positive", c.Scene.Scale))
	}
	return errors.Join(errs...)
}
