// Package scene holds the objects that make up the demo world and advances
// them once per frame.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cubewalk/internal/engine/collision"
	"github.com/Faultbox/cubewalk/internal/logger"
)

// Scene is an ordered collection of objects. Insertion order is draw order.
// Objects are never removed.
type Scene struct {
	objects []*GameObject
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends obj to the scene.
func (s *Scene) Add(obj *GameObject) {
	s.objects = append(s.objects, obj)
	logger.Debug("object added",
		zap.String("id", obj.ID.String()),
		zap.String("name", obj.Name),
		zap.Bool("light", obj.IsLight),
		zap.Stringer("response", obj.CollisionResponse),
	)
}

// Objects returns the scene objects in draw order.
func (s *Scene) Objects() []*GameObject {
	return s.objects
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// At returns the i-th object as a collision body.
func (s *Scene) At(i int) collision.Body {
	return s.objects[i]
}

// Light returns the first light marker, or nil if the scene has none.
func (s *Scene) Light() *GameObject {
	for _, obj := range s.objects {
		if obj.IsLight {
			return obj
		}
	}
	return nil
}

// Update advances every object by dt seconds and rebuilds all model
// matrices, whether or not anything changed.
func (s *Scene) Update(dt float32) {
	for _, obj := range s.objects {
		obj.Update(dt)
	}
}
