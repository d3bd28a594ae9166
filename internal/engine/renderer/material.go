package renderer

import (
	"github.com/Faultbox/cubewalk/internal/engine/scene"
	"github.com/Faultbox/cubewalk/internal/engine/shader"
)

// Uniform names in the cube shader.
const (
	uniformModelView  = "u_modelViewMatrix"
	uniformProjection = "u_projectionMatrix"
	uniformLightPos   = "u_lightPosView"
	uniformIsLight    = "u_isLight"
)

// Material uploads per-object uniforms to a shader program.
// It implements scene.Material.
type Material struct {
	program *shader.Program
}

// NewMaterial creates a material drawing with program.
func NewMaterial(program *shader.Program) *Material {
	return &Material{program: program}
}

// Apply binds the program and uploads u. Model and view are combined on
// the CPU so the shader works in view space.
func (m *Material) Apply(u scene.Uniforms) {
	m.program.Use()
	m.program.SetMat4(uniformModelView, u.View.Mul(u.Model))
	m.program.SetMat4(uniformProjection, u.Projection)
	m.program.SetVec3(uniformLightPos, u.LightPosView)
	m.program.SetBool(uniformIsLight, u.IsLight)
}
