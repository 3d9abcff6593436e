package opengl

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"lightmap-viewer/core"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IndexCount  int32
	VertexCount int32
	HasIndices  bool
}

// vertexAttrib describes one shader input location of core.Vertex.
type vertexAttrib struct {
	location uint32
	size     int32
	offset   uintptr
}

// vertexLayout matches the layout(location = N) inputs of the shaders:
// 0 position, 1 normal, 2 uv, 3 lightmap uv, 4 tangent, 5 bitangent.
var vertexLayout = func() []vertexAttrib {
	var v core.Vertex
	return []vertexAttrib{
		{0, 3, unsafe.Offsetof(v.Position)},
		{1, 3, unsafe.Offsetof(v.Normal)},
		{2, 2, unsafe.Offsetof(v.UV)},
		{3, 2, unsafe.Offsetof(v.LightmapUV)},
		{4, 3, unsafe.Offsetof(v.Tangent)},
		{5, 3, unsafe.Offsetof(v.Bitangent)},
	}
}()

// UploadMesh copies vertices and indices into new GPU buffers.
// It returns nil for an empty mesh.
func (d *Device) UploadMesh(data core.MeshData) *GPUMesh {
	if len(data.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))
	gpu := &GPUMesh{
		IndexCount:  int32(len(data.Indices)),
		VertexCount: int32(len(data.Vertices)),
		HasIndices:  len(data.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(data.Vertices)*int(stride),
		gl.Ptr(data.Vertices),
		gl.STATIC_DRAW)

	for _, a := range vertexLayout {
		gl.EnableVertexAttribArray(a.location)
		gl.VertexAttribPointerWithOffset(a.location, a.size, gl.FLOAT, false, stride, a.offset)
	}

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(data.Indices)*4,
			gl.Ptr(data.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	d.meshes[gpu] = struct{}{}
	return gpu
}

// Draw issues one draw call for the mesh, indexed when it has indices.
func (m *GPUMesh) Draw() {
	gl.BindVertexArray(m.VAO)
	if m.HasIndices {
		gl.DrawElements(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.VertexCount)
	}
	gl.BindVertexArray(0)
}

// ReleaseMesh frees the buffers of m.
func (d *Device) ReleaseMesh(m *GPUMesh) {
	if _, ok := d.meshes[m]; !ok {
		return
	}
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
	if m.HasIndices {
		gl.DeleteBuffers(1, &m.EBO)
	}
	delete(d.meshes, m)
}
