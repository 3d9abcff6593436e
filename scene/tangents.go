package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"lightmap-viewer/core"
)

// ComputeTangents generates per-vertex tangent and bitangent vectors from the
// surface UVs. Triangles with a degenerate UV area contribute nothing; a
// vertex left without a usable tangent gets one approximated from its normal.
func ComputeTangents(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Tangent = mgl32.Vec3{}
		m.Vertices[i].Bitangent = mgl32.Vec3{}
	}

	accum := func(i0, i1, i2 uint32) {
		n := uint32(len(m.Vertices))
		if i0 >= n || i1 >= n || i2 >= n {
			return
		}
		v0 := m.Vertices[i0]
		v1 := m.Vertices[i1]
		v2 := m.Vertices[i2]

		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v0.Position)

		du1 := v1.UV[0] - v0.UV[0]
		dv1 := v1.UV[1] - v0.UV[1]
		du2 := v2.UV[0] - v0.UV[0]
		dv2 := v2.UV[1] - v0.UV[1]

		denom := du1*dv2 - du2*dv1
		if denom == 0 {
			return
		}
		r := 1.0 / denom

		t := e1.Mul(dv2 * r).Sub(e2.Mul(dv1 * r))
		b := e2.Mul(du1 * r).Sub(e1.Mul(du2 * r))

		for _, i := range [3]uint32{i0, i1, i2} {
			m.Vertices[i].Tangent = m.Vertices[i].Tangent.Add(t)
			m.Vertices[i].Bitangent = m.Vertices[i].Bitangent.Add(b)
		}
	}

	if len(m.Indices) > 0 {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			accum(m.Indices[i], m.Indices[i+1], m.Indices[i+2])
		}
	} else {
		for i := 0; i+2 < len(m.Vertices); i += 3 {
			accum(uint32(i), uint32(i+1), uint32(i+2))
		}
	}

	// Gram-Schmidt orthogonalize each tangent frame against its normal.
	for i := range m.Vertices {
		v := &m.Vertices[i]
		n := v.Normal
		t := v.Tangent.Sub(n.Mul(n.Dot(v.Tangent)))
		if t.LenSqr() < 1e-8 {
			ApproximateTangent(v)
			continue
		}
		v.Tangent = t.Normalize()

		b := v.Bitangent
		if b.LenSqr() < 1e-8 {
			b = n.Cross(v.Tangent)
		}
		v.Bitangent = b.Normalize()
	}
}

// ApproximateTangent derives a tangent frame from the normal alone, for
// vertices with no UV-derived tangent.
func ApproximateTangent(v *core.Vertex) {
	up := mgl32.Vec3{0, 1, 0}
	if math32.Abs(v.Normal[1]) >= 0.999 {
		up = mgl32.Vec3{1, 0, 0}
	}
	v.Tangent = up.Cross(v.Normal).Normalize()
	v.Bitangent = v.Normal.Cross(v.Tangent)
}
