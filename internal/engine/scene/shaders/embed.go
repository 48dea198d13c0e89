// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader is the vertex shader for shaded mesh rendering.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader is the fragment shader for shaded mesh rendering.
//
//go:embed mesh.frag
var MeshFragmentShader string

// GridVertexShader is the vertex shader for the floor grid.
//
//go:embed grid.vert
var GridVertexShader string

// GridFragmentShader is the fragment shader for the floor grid.
//
//go:embed grid.frag
var GridFragmentShader string

// PickingVertexShader is the vertex shader for ID picking.
//
//go:embed picking.vert
var PickingVertexShader string

// PickingFragmentShader is the fragment shader for ID picking.
//
//go:embed picking.frag
var PickingFragmentShader string
