package main

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/hubastard/lumen/engine/core"
	glbackend "github.com/hubastard/lumen/engine/gfx/gl"
)

const triangleVS = `
#version 410 core
layout(location = 0) in vec2 aPos;
out vec2 vPos;
void main() {
    vPos = aPos;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
`

const triangleFS = `
#version 410 core
in vec2 vPos;
out vec4 FragColor;
void main() {
    FragColor = vec4((vPos.x + 1.0) / 2.0, (vPos.y + 1.0) / 2.0, 0.9, 1.0);
}
`

// trianglePlugin draws a static screen-space triangle behind the scene.
type trianglePlugin struct {
	prog *glbackend.Program
	vao  uint32
	vbo  uint32
}

func newTrianglePlugin(*core.Context) (core.Plugin, error) {
	prog, err := glbackend.NewProgram(triangleVS, triangleFS)
	if err != nil {
		return nil, err
	}
	p := &trianglePlugin{prog: prog}

	verts := []float32{
		0.0, 0.5,
		0.5, -0.5,
		-0.5, -0.5,
	}
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return p, nil
}

func (p *trianglePlugin) Render(*core.Context) {
	p.prog.Use()
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

func (p *trianglePlugin) Close() error {
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	p.prog.Delete()
	return nil
}
