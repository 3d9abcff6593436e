package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 800
vsync = false

[assets]
model = "models/room.obj"

[camera]
position = [1.0, 2.0, 3.0]
fov = 30.0

[log]
level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "models/room.obj", cfg.Assets.Model)
	assert.Equal(t, "materials", cfg.Assets.Materials)
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(30), cfg.Camera.FOV)
	assert.Equal(t, float32(500), cfg.Camera.Far)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, float32(-90), cfg.Scene.RotateX)
	assert.True(t, cfg.Scene.Skybox)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[window]\nwidht = 3\n"), 0o644))
	_, err = Load(unknown)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[window\n"), 0o644))
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Camera.Near = 10
	cfg.Camera.Far = 5
	cfg.Camera.FOV = 90
	cfg.Scene.Scale = 0
	cfg.Assets.Model = ""

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"window size", "assets.model", "clip planes", "camera.fov", "scene.scale"} {
		assert.ErrorContains(t, err, want)
	}
}
