package main

import (
	"lightmap-viewer/core"
	"lightmap-viewer/materials"
	"lightmap-viewer/scene"
)

// KeySource reports whether a key is currently held (*core.Window).
type KeySource interface {
	IsKeyPressed(key int) bool
}

var moveKeys = []struct {
	key int
	dir scene.Movement
}{
	{core.KeyW, scene.MoveForward},
	{core.KeyS, scene.MoveBackward},
	{core.KeyA, scene.MoveLeft},
	{core.KeyD, scene.MoveRight},
	{core.KeyE, scene.MoveUp},
	{core.KeyQ, scene.MoveDown},
}

// lightmapOnlyUniform switches the RNM shader between lit and lightmap-only output.
const lightmapOnlyUniform = "renderLightmapOnly"

// InputController turns polled key state into camera motion and toggles.
type InputController struct {
	LightmapOnly bool

	toggleWasDown bool
}

// Update moves the camera for held keys and handles ESC and the F1 toggle.
// It returns true when the viewer should close.
func (ic *InputController) Update(keys KeySource, cam *scene.Camera, lib *materials.Library, dt float32) (quit bool) {
	if keys.IsKeyPressed(core.KeyEscape) {
		return true
	}
	for _, mk := range moveKeys {
		if keys.IsKeyPressed(mk.key) {
			cam.ProcessKeyboard(mk.dir, dt)
		}
	}

	down := keys.IsKeyPressed(core.KeyF1)
	if down && !ic.toggleWasDown {
		ic.LightmapOnly = !ic.LightmapOnly
		ApplyLightmapOnly(lib, ic.LightmapOnly)
	}
	ic.toggleWasDown = down
	return false
}

// ApplyLightmapOnly sets renderLightmapOnly on every loaded material.
func ApplyLightmapOnly(lib *materials.Library, on bool) {
	var v int32
	if on {
		v = 1
	}
	lib.Each(func(m *materials.Material) {
		m.SetInt(lightmapOnlyUniform, v)
	})
}
