// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader transforms cube vertices into clip space and passes the
// view-space position on for lighting.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader shades cubes with a single point light in view space.
//
//go:embed cube.frag
var CubeFragmentShader string
