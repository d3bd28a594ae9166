package collision

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cubewalk/internal/logger"
	"github.com/Faultbox/cubewalk/pkg/math"
)

// Resolver gates single-axis camera steps against a World.
type Resolver struct {
	World  World
	Radius float32
}

// NewResolver creates a resolver using the default camera radius.
func NewResolver(w World) *Resolver {
	return &Resolver{World: w, Radius: Radius}
}

// Resolve reports whether the camera may move from `from` by step.
//
// A Block body rejects the step. A Push body is moved by step and the
// camera follows, unless the body would end up inside another solid body or
// the camera would still be blocked afterwards; then the push is undone and
// the step rejected.
func (r *Resolver) Resolve(from, step math.Vec3) bool {
	to := from.Add(step)
	hit := FindBlocking(to.X, to.Z, from.Y, r.World, r.Radius)
	if hit == nil {
		return true
	}

	switch hit.Response() {
	case Push:
		hit.Push(step)
		if overlapsAny(hit, r.World) || FindBlocking(to.X, to.Z, from.Y, r.World, r.Radius) != nil {
			hit.Push(step.Scale(-1))
			return false
		}
		logger.Debug("pushed body",
			zap.Float32("x", hit.Center().X),
			zap.Float32("z", hit.Center().Z),
		)
		return true
	default:
		return false
	}
}
