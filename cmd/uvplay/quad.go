package main

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/uvplay/internal/engine/player"
	"github.com/Faultbox/uvplay/internal/engine/shader"
	"github.com/Faultbox/uvplay/pkg/uv"
)

const quadVertexShader = `#version 410 core
layout(location = 0) in vec2 inPos;
layout(location = 1) in vec2 inUV;

uniform vec2 uvOffset;
uniform vec2 uvScale;

out vec2 texCoord;

void main() {
    texCoord = inUV * uvScale + uvOffset;
    gl_Position = vec4(inPos, 0.0, 1.0);
}
`

const quadFragmentShader = `#version 410 core
in vec2 texCoord;

uniform sampler2D _MainTex;

out vec4 fragColor;

void main() {
    fragColor = texture(_MainTex, texCoord);
}
`

// quadSurface is a GL quad that implements both player.Surface and
// player.Mesh: the vertex UV buffer is dynamic so mesh-UV playback can
// rewrite it, and the shader's offset/scale uniforms back the
// material-offset strategy.
type quadSurface struct {
	program uint32
	vao     uint32
	uvVBO   uint32

	locOffset int32
	locScale  int32

	// uvs is the player's working copy, separate from the GL buffer until
	// SetUVs commits it.
	uvs []uv.Point
}

// quadUVs is the initial UV layout: one axis-aligned unit quad.
var quadUVs = []uv.Point{
	{U: 0, V: 0}, {U: 0, V: 1}, {U: 1, V: 1}, {U: 1, V: 0},
}

// newQuadSurface builds the textured quad and its shader program.
func newQuadSurface() (*quadSurface, error) {
	program, err := shader.CompileProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling quad shader: %w", err)
	}

	q := &quadSurface{
		program:   program,
		locOffset: shader.MustUniform(program, "uvOffset"),
		locScale:  shader.MustUniform(program, "uvScale"),
		uvs:       append([]uv.Point(nil), quadUVs...),
	}

	positions := []float32{
		-0.8, -0.8, // LL
		-0.8, 0.8, // UL
		0.8, 0.8, // UR
		0.8, -0.8, // LR
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	var posVBO uint32
	gl.GenBuffers(1, &posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(0)

	// UV buffer is dynamic: mesh-UV playback rewrites it every frame.
	gl.GenBuffers(1, &q.uvVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.uvVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(q.uvs)*8, unsafe.Pointer(&q.uvs[0]), gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(1)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	// Identity texture transform until the player writes one.
	gl.UseProgram(program)
	gl.Uniform2f(q.locOffset, 0, 0)
	gl.Uniform2f(q.locScale, 1, 1)

	return q, nil
}

// HasTextureProperty reports whether the shader declares the named sampler.
func (q *quadSurface) HasTextureProperty(name string) bool {
	return shader.Uniform(q.program, name) >= 0
}

// SetTextureTransform applies the material-offset strategy via uniforms.
func (q *quadSurface) SetTextureTransform(_ string, offset, scale uv.Point) {
	gl.UseProgram(q.program)
	gl.Uniform2f(q.locOffset, offset.U, offset.V)
	gl.Uniform2f(q.locScale, scale.U, scale.V)
}

// Mesh exposes the quad's UV layout to the player.
func (q *quadSurface) Mesh() player.Mesh { return q }

// UVs returns the working UV copy.
func (q *quadSurface) UVs() []uv.Point { return q.uvs }

// SetUVs commits the working copy to the GL buffer in one write.
func (q *quadSurface) SetUVs(uvs []uv.Point) {
	q.uvs = uvs
	gl.BindBuffer(gl.ARRAY_BUFFER, q.uvVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(uvs)*8, unsafe.Pointer(&uvs[0]))
}

// ResetUVs restores the unit quad layout and identity texture transform,
// used when switching back to material-offset preview.
func (q *quadSurface) ResetUVs() {
	q.SetUVs(append([]uv.Point(nil), quadUVs...))
	q.SetTextureTransform("", uv.Point{U: 0, V: 0}, uv.Point{U: 1, V: 1})
}

// Draw renders the quad with the given texture bound.
func (q *quadSurface) Draw(texID uint32) {
	gl.UseProgram(q.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.Uniform1i(shader.Uniform(q.program, "_MainTex"), 0)
	gl.BindVertexArray(q.vao)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
