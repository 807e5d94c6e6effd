package main

import (
	"image"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/lumen/engine/assets"
	"github.com/hubastard/lumen/engine/colors"
	"github.com/hubastard/lumen/engine/core"
	glbackend "github.com/hubastard/lumen/engine/gfx/gl"
	"github.com/hubastard/lumen/engine/scene"
)

const cubesVS = `
#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec2 aUV;
uniform mat4 mvp;
out vec2 vUV;
void main() {
    vUV = aUV;
    gl_Position = mvp * vec4(aPos, 1.0);
}
`

const cubesFS = `
#version 410 core
in vec2 vUV;
uniform sampler2D tex;
uniform vec4 tint;
out vec4 FragColor;
void main() {
    FragColor = mix(texture(tex, vUV), tint, 0.3);
}
`

// Position (xyz) + uv per vertex, four vertices per face.
var cubeVertices = []float32{
	// left
	-0.5, -0.5, -0.5, 0, 0,
	-0.5, -0.5, 0.5, 0, 1,
	-0.5, 0.5, 0.5, 1, 1,
	-0.5, 0.5, -0.5, 1, 0,
	// right
	0.5, -0.5, -0.5, 0, 0,
	0.5, -0.5, 0.5, 0, 1,
	0.5, 0.5, 0.5, 1, 1,
	0.5, 0.5, -0.5, 1, 0,
	// front
	-0.5, -0.5, 0.5, 0, 0,
	-0.5, 0.5, 0.5, 0, 1,
	0.5, 0.5, 0.5, 1, 1,
	0.5, -0.5, 0.5, 1, 0,
	// back
	-0.5, -0.5, -0.5, 0, 0,
	-0.5, 0.5, -0.5, 0, 1,
	0.5, 0.5, -0.5, 1, 1,
	0.5, -0.5, -0.5, 1, 0,
	// top
	-0.5, 0.5, -0.5, 0, 0,
	-0.5, 0.5, 0.5, 0, 1,
	0.5, 0.5, 0.5, 1, 1,
	0.5, 0.5, -0.5, 1, 0,
	// bottom
	-0.5, -0.5, -0.5, 0, 0,
	-0.5, -0.5, 0.5, 0, 1,
	0.5, -0.5, 0.5, 1, 1,
	0.5, -0.5, -0.5, 1, 0,
}

var cubeIndices = []uint8{
	0, 1, 2, 2, 3, 0,
	4, 5, 6, 6, 7, 4,
	8, 9, 10, 10, 11, 8,
	12, 13, 14, 14, 15, 12,
	16, 17, 18, 18, 19, 16,
	20, 21, 22, 22, 23, 20,
}

var cubePositions = []mgl32.Vec3{
	{0, 0, 0},
	{2, 5, -15},
	{-1.5, -2.2, -2.5},
	{-3.8, -2, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3, -7.5},
	{1.3, -2, -2.5},
	{1.5, 2, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1, -1.5},
}

var spinAxis = mgl32.Vec3{3, 5, 7}.Normalize()

// cubesPlugin draws spinning textured cubes through the shared camera.
type cubesPlugin struct {
	prog    *glbackend.Program
	tex     *glbackend.Texture2D
	vao     uint32
	buffers [2]uint32

	camera  *scene.CameraController
	tracker *core.WindowInfoTracker
	clock   *core.Clock
}

func cubesFactory(texturePath, shaderDir string) core.PluginFactory {
	return func(ctx *core.Context) (core.Plugin, error) {
		img, err := cubeTexture(texturePath)
		if err != nil {
			return nil, err
		}
		vs, fs, err := cubeShaders(shaderDir)
		if err != nil {
			return nil, err
		}
		prog, err := glbackend.NewProgram(vs, fs)
		if err != nil {
			return nil, err
		}

		p := &cubesPlugin{
			prog:    prog,
			camera:  core.MustLookup[*scene.CameraController](ctx.Services()),
			tracker: core.MustLookup[*core.WindowInfoTracker](ctx.Services()),
			clock:   core.MustLookup[*core.Clock](ctx.Services()),
		}

		gl.GenVertexArrays(1, &p.vao)
		gl.BindVertexArray(p.vao)
		gl.GenBuffers(2, &p.buffers[0])
		gl.BindBuffer(gl.ARRAY_BUFFER, p.buffers[0])
		gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

		const stride = 5 * 4
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))

		// Bound while the VAO is, so the VAO remembers it.
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.buffers[1])
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(cubeIndices), gl.Ptr(cubeIndices), gl.STATIC_DRAW)
		gl.BindVertexArray(0)

		p.tex = glbackend.NewTexture2D(img)
		prog.Use()
		prog.SetInt("tex", 0)
		prog.SetVec4("tint", mgl32.Vec4(colors.SkyBlue))
		return p, nil
	}
}

func cubeTexture(path string) (*image.RGBA, error) {
	if path == "" {
		return assets.Checkerboard(256, 8, colors.White.NRGBA(), colors.DarkGray.NRGBA()), nil
	}
	return assets.LoadImage(path, true)
}

func cubeShaders(dir string) (vs, fs string, err error) {
	if dir == "" {
		return cubesVS, cubesFS, nil
	}
	if vs, err = assets.LoadShader(dir, "cubes.vert"); err != nil {
		return "", "", err
	}
	if fs, err = assets.LoadShader(dir, "cubes.frag"); err != nil {
		return "", "", err
	}
	return vs, fs, nil
}

func (p *cubesPlugin) Render(*core.Context) {
	projection := mgl32.Perspective(math.Pi*0.3, p.tracker.Aspect(), 0.1, 100)
	vp := projection.Mul4(p.camera.Camera().LookAt())
	t := p.clock.Time()

	p.prog.Use()
	p.tex.Bind(0)
	gl.BindVertexArray(p.vao)
	for i, pos := range cubePositions {
		spin := mgl32.HomogRotate3D(t*(float32(i)*0.8+1), spinAxis)
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(spin)
		p.prog.SetMat4("mvp", vp.Mul4(model))
		gl.DrawElements(gl.TRIANGLES, int32(len(cubeIndices)), gl.UNSIGNED_BYTE, unsafe.Pointer(uintptr(0)))
	}
	gl.BindVertexArray(0)
}

func (p *cubesPlugin) Close() error {
	gl.DeleteBuffers(2, &p.buffers[0])
	gl.DeleteVertexArrays(1, &p.vao)
	p.tex.Delete()
	p.prog.Delete()
	return nil
}
