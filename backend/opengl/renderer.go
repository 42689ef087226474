// Package opengl provides a GLFW + OpenGL 4.1 backend for the overlay
// package: a Platform that pushes GLFW input into imgui and a Renderer
// that translates imgui draw data into GL draw calls. Driver composes the
// two into the overlay's renderer contract.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

// Renderer translates imgui draw data into OpenGL 4.1 draw calls.
type Renderer struct {
	io imgui.IO

	shader   uint32
	vao      uint32
	vbo, ebo uint32
	fontTex  uint32
	projLoc  int32
	texLoc   int32
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;

void main() {
    FragColor = Color * texture(fontTexture, TexCoord);
}
` + "\x00"

// NewRenderer creates a renderer bound to io. GL resources are not
// allocated until createDeviceObjects runs (Driver.Init), which requires a
// current GL context.
func NewRenderer(io imgui.IO) *Renderer {
	return &Renderer{io: io}
}

func (r *Renderer) createDeviceObjects() error {
	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout comes from imgui: Pos (2 floats) + UV (2 floats) +
	// Color (normalized uint8x4).
	vertexSize, posOffset, uvOffset, colorOffset := imgui.VertexBufferLayout()
	stride := int32(vertexSize)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, uintptr(posOffset))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, uintptr(uvOffset))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, uintptr(colorOffset))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.createFontTexture()

	return nil
}

// createFontTexture uploads the imgui font atlas and registers its texture
// ID back into the atlas so draw commands reference it.
func (r *Renderer) createFontTexture() {
	image := r.io.Fonts().TextureDataRGBA32()

	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)

	r.io.Fonts().SetTextureID(imgui.TextureID(r.fontTex))
}

// FontTextureID returns the OpenGL texture ID of the uploaded font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// render draws one frame of imgui draw data into the current framebuffer.
func (r *Renderer) render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData) {
	displayWidth, displayHeight := displaySize[0], displaySize[1]
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	// Clip rects arrive in display coordinates; scale to framebuffer
	// pixels for high-DPI displays.
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbWidth / displayWidth,
		Y: fbHeight / displayHeight,
	})

	// Save GL state
	var lastProgram, lastTexture, lastVAO, lastArrayBuffer int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVAO)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, displayWidth, displayHeight, 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset uintptr

		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
				continue
			}

			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))

			// Clip rect is (minX, minY, maxX, maxY); GL scissor origin
			// is bottom-left, so flip Y.
			clipRect := cmd.ClipRect()
			gl.Scissor(
				int32(clipRect.X),
				int32(fbHeight)-int32(clipRect.W),
				int32(clipRect.Z-clipRect.X),
				int32(clipRect.W-clipRect.Y),
			)

			gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, indexBufferOffset)
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	// Restore GL state
	gl.BindVertexArray(uint32(lastVAO))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.UseProgram(uint32(lastProgram))
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	restoreCapability(gl.BLEND, blendEnabled)
	restoreCapability(gl.DEPTH_TEST, depthEnabled)
	restoreCapability(gl.CULL_FACE, cullEnabled)
	restoreCapability(gl.SCISSOR_TEST, scissorEnabled)
}

// Dispose releases the renderer's GL resources.
func (r *Renderer) Dispose() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
		r.io.Fonts().SetTextureID(0)
		r.fontTex = 0
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
		r.shader = 0
	}
}

func restoreCapability(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// orthoMatrix builds a column-major orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left),
		-(top + bottom) / (top - bottom),
		-(far + near) / (far - near),
		1,
	}
}

func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertex, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", log)
	}

	return program, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
