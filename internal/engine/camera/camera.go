// Package camera provides the first-person camera used to walk the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cubewalk/pkg/math"
)

// MaxPitch is the pitch limit in radians. It stays just short of 90 degrees
// so the LookAt basis never degenerates.
const MaxPitch = math32.Pi/2 - 0.01

// Config holds camera construction parameters. Angles are in radians.
type Config struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	Position   math.Vec3
	Yaw, Pitch float32

	Sensitivity float32 // radians per pixel of mouse motion
	MoveSpeed   float32 // units per second
}

// DefaultConfig returns the demo camera: 45 degree FOV, standing 5 units
// back from the origin looking down -Z.
func DefaultConfig(aspect float32) Config {
	return Config{
		FOV:         math32.Pi / 4,
		Aspect:      aspect,
		Near:        0.1,
		Far:         100,
		Position:    math.Vec3{X: 0, Y: 0, Z: 5},
		Sensitivity: 0.003,
		MoveSpeed:   2.5,
	}
}

// MoveResolver decides whether a single-axis camera step may be committed.
// from is the camera position before the step; step has exactly one
// non-zero horizontal component.
type MoveResolver interface {
	Resolve(from, step math.Vec3) bool
}

// FirstPersonCamera looks around with yaw/pitch and walks on the XZ plane.
type FirstPersonCamera struct {
	Position math.Vec3

	// Yaw rotates around world Y, Pitch tilts up/down. Both radians.
	Yaw   float32
	Pitch float32

	Sensitivity float32
	MoveSpeed   float32

	fov, near, far float32

	// Derived by Recalculate
	forward    math.Vec3
	view       math.Mat4
	projection math.Mat4
}

// NewFirstPersonCamera creates a camera from cfg. The caller must ensure
// 0 < Near < Far and Aspect > 0.
func NewFirstPersonCamera(cfg Config) *FirstPersonCamera {
	c := &FirstPersonCamera{
		Position:    cfg.Position,
		Yaw:         cfg.Yaw,
		Pitch:       clampPitch(cfg.Pitch),
		Sensitivity: cfg.Sensitivity,
		MoveSpeed:   cfg.MoveSpeed,
		fov:         cfg.FOV,
		near:        cfg.Near,
		far:         cfg.Far,
	}
	c.projection = math.Perspective(cfg.FOV, cfg.Aspect, cfg.Near, cfg.Far)
	c.Recalculate()
	return c
}

// Rotate applies a mouse delta in pixels. Moving the mouse down (positive dy)
// looks down.
func (c *FirstPersonCamera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clampPitch(c.Pitch - dy*c.Sensitivity)
}

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < -MaxPitch {
		return -MaxPitch
	}
	return p
}

// Recalculate derives the forward vector and view matrix from the current
// position, yaw and pitch.
func (c *FirstPersonCamera) Recalculate() {
	c.forward = Forward(c.Yaw, c.Pitch)
	c.view = math.LookAt(c.Position, c.Position.Add(c.forward), math.Up)
}

// Forward returns the unit look direction for yaw/pitch.
// Forward(0, 0) is (0, 0, -1).
func Forward(yaw, pitch float32) math.Vec3 {
	cosPitch := math32.Cos(pitch)
	return math.Vec3{
		X: cosPitch * math32.Sin(yaw),
		Y: math32.Sin(pitch),
		Z: -cosPitch * math32.Cos(yaw),
	}
}

// MoveDirection combines forward/back and strafe input (each in [-1, 1])
// into a unit direction on the XZ plane. X of the result is world X, Y is
// world Z. Zero input yields the zero vector.
func (c *FirstPersonCamera) MoveDirection(forward, right float32) math.Vec2 {
	sinYaw := math32.Sin(c.Yaw)
	cosYaw := math32.Cos(c.Yaw)

	fwd := math.Vec2{X: sinYaw, Y: -cosYaw}
	side := math.Vec2{X: cosYaw, Y: sinYaw}

	return fwd.Scale(forward).Add(side.Scale(right)).Normalize()
}

// Move walks the camera for dt seconds. X and Z are resolved separately so
// a blocked axis does not stop motion along the other one. Y never changes.
// A nil resolver allows every step.
func (c *FirstPersonCamera) Move(forward, right, dt float32, r MoveResolver) {
	dir := c.MoveDirection(forward, right)
	if dir == (math.Vec2{}) {
		return
	}
	d := dir.Scale(c.MoveSpeed * dt)

	if d.X != 0 {
		step := math.Vec3{X: d.X}
		if r == nil || r.Resolve(c.Position, step) {
			c.Position.X += d.X
		}
	}
	if d.Y != 0 {
		step := math.Vec3{Z: d.Y}
		if r == nil || r.Resolve(c.Position, step) {
			c.Position.Z += d.Y
		}
	}
}

// Resize rebuilds the projection for a new aspect ratio.
func (c *FirstPersonCamera) Resize(aspect float32) {
	c.projection = math.Perspective(c.fov, aspect, c.near, c.far)
}

// Forward returns the look direction computed by the last Recalculate.
func (c *FirstPersonCamera) Forward() math.Vec3 {
	return c.forward
}

// ViewMatrix returns the view matrix computed by the last Recalculate.
func (c *FirstPersonCamera) ViewMatrix() math.Mat4 {
	return c.view
}

// ProjectionMatrix returns the perspective projection.
func (c *FirstPersonCamera) ProjectionMatrix() math.Mat4 {
	return c.projection
}
