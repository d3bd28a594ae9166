// Package renderer draws a scene.RenderCommand with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubewalk/internal/engine/scene"
	"github.com/Faultbox/cubewalk/internal/engine/shader"
	"github.com/Faultbox/cubewalk/internal/engine/shader/shaders"
	"github.com/Faultbox/cubewalk/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	// Shared by every cube in the scene
	cube     *Mesh
	material *Material
}

// New creates a renderer and uploads the cube mesh and shader.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(shaders.CubeVertexShader, shaders.CubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create cube shader: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.cube = NewMesh(CubeVertices, CubeIndices)
	r.material = NewMaterial(r.program)

	r.log.Debug("cube mesh created",
		zap.Uint32("vao", r.cube.vao),
		zap.Int32("indices", r.cube.indexCount),
	)
	return r, nil
}

// Cube returns the shared cube geometry.
func (r *Renderer) Cube() scene.Geometry {
	return r.cube
}

// Material returns the shared cube material.
func (r *Renderer) Material() scene.Material {
	return r.material
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.cube != nil {
		r.cube.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render clears the frame and draws every item in cmd in order.
func (r *Renderer) Render(cmd *scene.RenderCommand) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for _, item := range cmd.Items {
		if item.Material == nil || item.Geometry == nil {
			continue
		}
		item.Material.Apply(cmd.Uniforms(item))
		item.Geometry.Draw()
	}
}

// ReadPixels reads the current back buffer as bottom-up RGBA rows.
// Call it after Render and before the buffers are swapped.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
