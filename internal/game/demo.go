package game

import (
	"fmt"

	"github.com/Faultbox/cubewalk/internal/engine/collision"
	"github.com/Faultbox/cubewalk/internal/engine/scene"
	"github.com/Faultbox/cubewalk/pkg/math"
)

// Demo layout, in world units.
var (
	spinningCubePos = math.Vec3{X: 0, Y: 0, Z: -5}
	lightPos        = math.Vec3{X: 2, Y: 0, Z: -3}
	lightScale      = math.Vec3{X: 0.2, Y: 0.2, Z: 0.2}

	// Around the light, on the XZ plane.
	surroundOffsets = []math.Vec2{
		{X: 3, Y: 0},
		{X: -4, Y: 0},
		{X: 0, Y: 4},
		{X: 0, Y: -4},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: 1, Y: -1},
		{X: -1, Y: -1},
	}
)

// buildDemoScene fills s with the spinning cube, the light marker and the
// cubes around it, and returns the light marker.
func buildDemoScene(s *scene.Scene, assets Assets, spin float32, response collision.Response) *scene.GameObject {
	cube := scene.NewGameObject("spinning-cube", assets.Geometry, assets.Material)
	cube.Transform.SetPosition(spinningCubePos)
	cube.SpinSpeed = spin
	cube.CollisionResponse = response
	s.Add(cube)

	light := scene.NewGameObject("light", assets.Geometry, assets.Material)
	light.Transform.SetPosition(lightPos)
	light.Transform.SetScale(lightScale)
	light.IsLight = true
	s.Add(light)

	for i, off := range surroundOffsets {
		c := scene.NewGameObject(fmt.Sprintf("cube-%d", i), assets.Geometry, assets.Material)
		c.Transform.SetPosition(math.Vec3{X: lightPos.X + off.X, Y: 0, Z: lightPos.Z + off.Y})
		c.CollisionResponse = response
		s.Add(c)
	}
	return light
}
