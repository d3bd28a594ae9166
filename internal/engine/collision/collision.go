// Package collision implements axis-aligned overlap tests between the
// camera and scene objects, and what happens when the camera runs into one.
package collision

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/cubewalk/pkg/math"
)

// Radius is how "fat" the camera is, added to every box half-extent.
const Radius float32 = 0.2

// Response selects what a body does when the camera walks into it.
type Response int

const (
	// Block rejects the camera step.
	Block Response = iota
	// Push moves the body along with the camera step.
	Push
)

func (r Response) String() string {
	switch r {
	case Block:
		return "block"
	case Push:
		return "push"
	default:
		return fmt.Sprintf("Response(%d)", int(r))
	}
}

// ParseResponse converts "block" or "push" to a Response.
func ParseResponse(s string) (Response, error) {
	switch s {
	case "block":
		return Block, nil
	case "push":
		return Push, nil
	default:
		return Block, fmt.Errorf("unknown collision response %q", s)
	}
}

// Body is a unit cube placed by its center and per-axis scale.
type Body interface {
	Center() math.Vec3
	Extent() math.Vec3 // per-axis scale of the unit cube
	Solid() bool       // false bodies are never collided with
	Response() Response
	Push(d math.Vec3)
}

// World is an ordered set of bodies.
type World interface {
	Len() int
	At(i int) Body
}

// Contains reports whether p lies inside b's box grown by radius on every side.
// Boundary points count as inside.
func Contains(b Body, p math.Vec3, radius float32) bool {
	ext := b.Extent()
	d := p.Sub(b.Center())

	return math32.Abs(d.X) <= 0.5*ext.X+radius &&
		math32.Abs(d.Y) <= 0.5*ext.Y+radius &&
		math32.Abs(d.Z) <= 0.5*ext.Z+radius
}

// FindBlocking returns the first solid body in w containing the camera at
// (x, y, z), or nil. The camera's y never changes while walking.
func FindBlocking(x, z, y float32, w World, radius float32) Body {
	p := math.Vec3{X: x, Y: y, Z: z}
	for i := 0; i < w.Len(); i++ {
		b := w.At(i)
		if !b.Solid() {
			continue
		}
		if Contains(b, p, radius) {
			return b
		}
	}
	return nil
}

// BoxesOverlap reports whether the boxes of a and b intersect.
// Boxes that only touch do not overlap.
func BoxesOverlap(a, b Body) bool {
	d := a.Center().Sub(b.Center()).Abs()
	ea, eb := a.Extent(), b.Extent()

	return d.X < 0.5*(ea.X+eb.X) &&
		d.Y < 0.5*(ea.Y+eb.Y) &&
		d.Z < 0.5*(ea.Z+eb.Z)
}

// overlapsAny reports whether b overlaps any other solid body in w.
func overlapsAny(b Body, w World) bool {
	for i := 0; i < w.Len(); i++ {
		other := w.At(i)
		if other == b || !other.Solid() {
			continue
		}
		if BoxesOverlap(b, other) {
			return true
		}
	}
	return false
}
