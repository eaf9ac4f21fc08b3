package shader

import "strings"

// Uniform names shared by the sources below and the renderer.
const (
	UniformModel      = "model"
	UniformProjection = "projection"
	UniformColor      = "color"
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core

layout(location = 0) in vec2 vertex;

uniform mat4 model;
uniform mat4 projection;

void main() {
    gl_Position = projection * model * vec4(vertex.xy, 0.0, 1.0);
}
`

const fragmentShaderSourceGL = `#version 410 core

out vec4 outColor;

uniform vec3 color;

void main() {
    outColor = vec4(color, 1.0);
}
`

func GetVertexShader() string {
	return vertexShaderSourceGL
}

func GetFragmentShader() string {
	return fragmentShaderSourceGL
}

// Uniforms lists every uniform the program declares, in upload order.
func Uniforms() []string {
	return []string{UniformProjection, UniformColor, UniformModel}
}

// Declares reports whether source declares a uniform with the given name.
func Declares(source, uniform string) bool {
	for _, line := range strings.Split(source, "\n") {
		fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		if len(fields) == 3 && fields[0] == "uniform" && fields[2] == uniform {
			return true
		}
	}
	return false
}
