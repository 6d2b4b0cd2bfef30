package meshdag

import "github.com/go-gl/mathgl/mgl32"

// InvalidIndex marks a cluster/group reference that does not apply
// (a leaf's generatingGroupIndex, a root cluster's groupIndex).
const InvalidIndex = ^uint32(0)

// Vertex is a raw geometric vertex: position and normal only. UVs and
// other attributes are out of scope (spec.md §3).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// RawMesh is the build's only input: an indexed triangle mesh plus its
// enclosing AABB. Mesh ingestion (file parsing, vertex dedup) happens
// upstream of this package; RawMesh is the handoff point.
type RawMesh struct {
	Vertices []Vertex
	Indices  []uint32 // 3 per triangle, indices into Vertices
	Bounds   AABB
}

// NumTris returns the number of triangles in the mesh.
func (m *RawMesh) NumTris() int {
	return len(m.Indices) / 3
}
