package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a camera translation direction.
type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

const (
	maxPitch = 89
	minFOV   = 1
	maxFOV   = 45
)

// CameraConfig holds the initial state of a Camera. Angles are in degrees.
type CameraConfig struct {
	Position    mgl32.Vec3
	WorldUp     mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	FOV         float32
	Near        float32
	Far         float32
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    mgl32.Vec3{0, 5, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -180,
		Speed:       6,
		Sensitivity: 0.1,
		FOV:         45,
		Near:        0.1,
		Far:         500,
	}
}

// Camera is a first-person fly camera driven by yaw and pitch.
type Camera struct {
	Pos     mgl32.Vec3
	Front   mgl32.Vec3
	Up      mgl32.Vec3
	Right   mgl32.Vec3
	WorldUp mgl32.Vec3

	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	FOV         float32
	Near        float32
	Far         float32
}

func NewCamera(cfg CameraConfig) *Camera {
	c := &Camera{
		Pos:         cfg.Position,
		WorldUp:     cfg.WorldUp,
		Yaw:         cfg.Yaw,
		Pitch:       mgl32.Clamp(cfg.Pitch, -maxPitch, maxPitch),
		Speed:       cfg.Speed,
		Sensitivity: cfg.Sensitivity,
		FOV:         mgl32.Clamp(cfg.FOV, minFOV, maxFOV),
		Near:        cfg.Near,
		Far:         cfg.Far,
	}
	if c.WorldUp.Len() == 0 {
		c.WorldUp = mgl32.Vec3{0, 1, 0}
	}
	c.updateVectors()
	return c
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.Front), c.Up)
}

func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.Pos
}

// ProcessKeyboard moves the camera along its own axes, scaled by dt seconds.
func (c *Camera) ProcessKeyboard(dir Movement, dt float32) {
	v := c.Speed * dt
	switch dir {
	case MoveForward:
		c.Pos = c.Pos.Add(c.Front.Mul(v))
	case MoveBackward:
		c.Pos = c.Pos.Sub(c.Front.Mul(v))
	case MoveLeft:
		c.Pos = c.Pos.Sub(c.Right.Mul(v))
	case MoveRight:
		c.Pos = c.Pos.Add(c.Right.Mul(v))
	case MoveUp:
		c.Pos = c.Pos.Add(c.WorldUp.Mul(v))
	case MoveDown:
		c.Pos = c.Pos.Sub(c.WorldUp.Mul(v))
	}
}

// ProcessMouseMovement turns the camera by a cursor offset in pixels.
// Positive dy looks up. Pitch stays within ±89 degrees.
func (c *Camera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.Sensitivity, -maxPitch, maxPitch)
	c.updateVectors()
}

// ProcessMouseScroll zooms by narrowing the field of view.
func (c *Camera) ProcessMouseScroll(dy float32) {
	c.FOV = mgl32.Clamp(c.FOV-dy, minFOV, maxFOV)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
