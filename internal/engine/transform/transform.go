// Package transform holds per-object placement in the world.
package transform

import (
	"github.com/Faultbox/cubewalk/pkg/math"
)

// Transform places an object in world space. Rotation is yaw-only,
// around the world Y axis.
//
// The model matrix is derived state: every mutator recomputes it, so
// ModelMatrix always equals Translate(position) * RotateY(rotationY) * Scale(scale).
type Transform struct {
	position  math.Vec3
	rotationY float32 // radians
	scale     math.Vec3
	model     math.Mat4
}

// New creates a transform at position with unit scale and no rotation.
func New(position math.Vec3) *Transform {
	t := &Transform{
		position: position,
		scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
	t.Recalculate()
	return t
}

// Recalculate rebuilds the model matrix from position, rotation and scale.
func (t *Transform) Recalculate() {
	rotScale := math.RotateY(t.rotationY).Mul(math.ScaleVec(t.scale))
	t.model = math.TranslateVec(t.position).Mul(rotScale)
}

// ModelMatrix returns the local-to-world matrix.
func (t *Transform) ModelMatrix() math.Mat4 {
	return t.model
}

// Position returns the world position.
func (t *Transform) Position() math.Vec3 {
	return t.position
}

// RotationY returns the yaw in radians.
func (t *Transform) RotationY() float32 {
	return t.rotationY
}

// Scale returns the per-axis scale.
func (t *Transform) Scale() math.Vec3 {
	return t.scale
}

// SetPosition moves the transform to p.
func (t *Transform) SetPosition(p math.Vec3) {
	t.position = p
	t.Recalculate()
}

// Translate offsets the position by d.
func (t *Transform) Translate(d math.Vec3) {
	t.position = t.position.Add(d)
	t.Recalculate()
}

// SetRotationY sets the yaw in radians.
func (t *Transform) SetRotationY(angle float32) {
	t.rotationY = angle
	t.Recalculate()
}

// RotateY adds angle radians to the yaw.
func (t *Transform) RotateY(angle float32) {
	t.rotationY += angle
	t.Recalculate()
}

// SetScale sets the per-axis scale.
func (t *Transform) SetScale(s math.Vec3) {
	t.scale = s
	t.Recalculate()
}
