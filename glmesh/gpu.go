//go:build !tinygo && cgo

package glmesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// Upload creates the VAO/VBO/EBO for the mesh and copies the vertex and
// index data to GPU memory. Requires a current GL context. Calling Upload
// twice is an error; the buffers are static for the life of the scene.
func (m *Mesh) Upload() error {
	if m.uploaded {
		return fmt.Errorf("mesh %q already uploaded", m.name)
	}
	if len(m.indices) == 0 {
		return fmt.Errorf("mesh %q has no geometry", m.name)
	}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(m.vertices), gl.Ptr(m.vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(m.indices), gl.Ptr(m.indices), gl.STATIC_DRAW)

	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, Stride, 0)
	// normal
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, Stride, 3*4)
	// uv
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, Stride, 6*4)

	gl.BindVertexArray(0)
	if err := glgl.Err(); err != nil {
		return fmt.Errorf("uploading mesh %q: %w", m.name, err)
	}
	m.uploaded = true
	return nil
}

// Draw renders the mesh with the currently bound program and uniform state.
func (m *Mesh) Draw() {
	if !m.uploaded {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(m.indices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GL buffers. The mesh data remains and may be uploaded
// again on a fresh context.
func (m *Mesh) Delete() {
	if !m.uploaded {
		return
	}
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo, m.ebo = 0, 0, 0
	m.uploaded = false
}
