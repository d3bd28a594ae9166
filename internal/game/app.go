package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cubewalk/internal/config"
	"github.com/Faultbox/cubewalk/internal/engine/camera"
	"github.com/Faultbox/cubewalk/internal/engine/collision"
	"github.com/Faultbox/cubewalk/internal/engine/input"
	"github.com/Faultbox/cubewalk/internal/engine/scene"
	"github.com/Faultbox/cubewalk/internal/logger"
	"github.com/Faultbox/cubewalk/pkg/math"
)

// ErrBadAspect is returned by Initialize for a non-positive aspect ratio.
var ErrBadAspect = errors.New("aspect ratio must be positive")

// RenderCommand is what a Tick hands to the renderer.
type RenderCommand = scene.RenderCommand

// Input is the per-frame view of keyboard and mouse state.
// *input.State implements it.
type Input interface {
	input.KeyReader
	ConsumeMouseDelta() (dx, dy float32)
	Captured() bool
}

// Assets are the GPU resources shared by every cube. Either may be nil when
// nothing is drawn, as in tests.
type Assets struct {
	Geometry scene.Geometry
	Material scene.Material
}

// App owns the camera and scene and advances them one frame at a time.
type App struct {
	camera   *camera.FirstPersonCamera
	scene    *scene.Scene
	resolver *collision.Resolver
	light    *scene.GameObject

	// Reused between ticks
	items []scene.DrawItem
}

// Initialize validates cfg and builds the camera and the demo scene.
func Initialize(cfg *config.Config, aspect float32, assets Assets) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if aspect <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadAspect, aspect)
	}
	response, err := cfg.Response()
	if err != nil {
		return nil, err
	}

	camCfg := camera.Config{
		FOV:         math.DegToRad(cfg.Graphics.FOV),
		Aspect:      aspect,
		Near:        cfg.Graphics.Near,
		Far:         cfg.Graphics.Far,
		Position:    math.Vec3{X: cfg.Camera.Start[0], Y: cfg.Camera.Start[1], Z: cfg.Camera.Start[2]},
		Sensitivity: cfg.Camera.Sensitivity,
		MoveSpeed:   cfg.Camera.MoveSpeed,
	}

	a := &App{
		camera: camera.NewFirstPersonCamera(camCfg),
		scene:  scene.New(),
	}
	a.light = buildDemoScene(a.scene, assets, cfg.Scene.SpinSpeed, response)
	a.resolver = &collision.Resolver{World: a.scene, Radius: cfg.Camera.Radius}

	logger.Info("scene initialized",
		zap.Int("objects", a.scene.Len()),
		zap.Stringer("response", response),
		zap.Float32("aspect", aspect),
	)
	return a, nil
}

// Tick advances the demo by dt seconds and returns what to draw.
// The returned command's Items are reused by the next Tick.
func (a *App) Tick(dt float32, in Input) RenderCommand {
	// Mouse look. Deltas are always drained so motion while the pointer is
	// free never turns into a jump later.
	dx, dy := in.ConsumeMouseDelta()
	if in.Captured() {
		a.camera.Rotate(dx, dy)
	}

	forward := input.Axis(in, input.KeyW, input.KeyS)
	right := input.Axis(in, input.KeyD, input.KeyA)
	a.camera.Move(forward, right, dt, a.resolver)

	// View must be current before the light is moved into view space.
	a.camera.Recalculate()
	a.scene.Update(dt)

	var lightPosView math.Vec3
	if a.light != nil {
		lightPosView = a.camera.ViewMatrix().TransformPoint(a.light.Transform.Position())
	}

	a.items = a.scene.AppendDrawItems(a.items[:0])
	return RenderCommand{
		View:         a.camera.ViewMatrix(),
		Projection:   a.camera.ProjectionMatrix(),
		LightPosView: lightPosView,
		Items:        a.items,
	}
}

// Resize rebuilds the projection for a new window aspect ratio.
func (a *App) Resize(aspect float32) {
	if aspect <= 0 {
		return
	}
	a.camera.Resize(aspect)
}

// Camera returns the first-person camera.
func (a *App) Camera() *camera.FirstPersonCamera {
	return a.camera
}

// Scene returns the demo scene.
func (a *App) Scene() *scene.Scene {
	return a.scene
}
