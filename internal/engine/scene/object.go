package scene

import (
	"github.com/google/uuid"

	"github.com/Faultbox/cubewalk/internal/engine/collision"
	"github.com/Faultbox/cubewalk/internal/engine/transform"
	"github.com/Faultbox/cubewalk/pkg/math"
)

// Geometry is mesh data shared between objects. It is owned by the renderer.
type Geometry interface {
	Draw()
}

// Uniforms are the per-object values a material uploads before drawing.
type Uniforms struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4

	LightPosView math.Vec3 // light position in view space
	IsLight      bool
}

// Material binds a shader and its uniforms. It is owned by the renderer.
type Material interface {
	Apply(u Uniforms)
}

// GameObject is a unit cube placed in the world.
type GameObject struct {
	ID        uuid.UUID
	Name      string
	Transform *transform.Transform

	// Shared, not owned.
	Geometry Geometry
	Material Material

	// IsLight marks the point-light marker: drawn unlit and never collided with.
	IsLight bool

	CollisionResponse collision.Response

	SpinSpeed float32 // radians per second around Y
}

// NewGameObject creates an object at the origin with unit scale.
func NewGameObject(name string, geometry Geometry, material Material) *GameObject {
	return &GameObject{
		ID:        uuid.New(),
		Name:      name,
		Transform: transform.New(math.Vec3{}),
		Geometry:  geometry,
		Material:  material,
	}
}

// Update spins the object and rebuilds its model matrix.
func (o *GameObject) Update(dt float32) {
	if o.SpinSpeed != 0 {
		o.Transform.RotateY(o.SpinSpeed * dt)
	}
	o.Transform.Recalculate()
}

// Center implements collision.Body.
func (o *GameObject) Center() math.Vec3 {
	return o.Transform.Position()
}

// Extent implements collision.Body.
func (o *GameObject) Extent() math.Vec3 {
	return o.Transform.Scale()
}

// Solid implements collision.Body. Light markers are not solid.
func (o *GameObject) Solid() bool {
	return !o.IsLight
}

// Response implements collision.Body.
func (o *GameObject) Response() collision.Response {
	return o.CollisionResponse
}

// Push implements collision.Body.
func (o *GameObject) Push(d math.Vec3) {
	o.Transform.Translate(d)
}
