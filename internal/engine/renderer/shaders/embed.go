// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader transforms mesh vertices and passes their position on as color.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader is the fragment shader for mesh rendering.
//
//go:embed mesh.frag
var MeshFragmentShader string
