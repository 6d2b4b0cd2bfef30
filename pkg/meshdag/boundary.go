package meshdag

import "github.com/go-gl/mathgl/mgl32"

// boundaryQuantScale is the quantization scale used to key vertex
// positions when detecting boundary edges (spec.md §4.D). It is a
// tolerance parameter: consistent within a build, not part of the
// external contract.
const boundaryQuantScale = 1e4

type posKey struct {
	x, y, z int64
}

func quantizePos(p mgl32.Vec3, scale float32) posKey {
	return posKey{
		x: int64(p.X() * scale),
		y: int64(p.Y() * scale),
		z: int64(p.Z() * scale),
	}
}

type edgeKey struct {
	a, b posKey
}

func makeEdgeKey(p0, p1 mgl32.Vec3, scale float32) edgeKey {
	a := quantizePos(p0, scale)
	b := quantizePos(p1, scale)
	if posKeyLess(b, a) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

func posKeyLess(a, b posKey) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.z < b.z
}

// ComputeBoundaryEdges rebuilds c.BoundaryEdges: one flag per directed
// edge (3 per triangle), true iff the undirected edge (keyed by
// quantized vertex position, guarding against float inequality between
// coincident positions from different cluster-local vertices) has
// exactly one incident triangle in this cluster (spec.md §4.D).
func (c *Cluster) ComputeBoundaryEdges() {
	numTris := c.NumTris()
	c.BoundaryEdges = make([]bool, numTris*3)

	counts := make(map[edgeKey]int, numTris*3)
	for t := 0; t < numTris; t++ {
		for e := 0; e < 3; e++ {
			i0 := c.Indices[t*3+e]
			i1 := c.Indices[t*3+(e+1)%3]
			key := makeEdgeKey(c.Vertices[i0].Position, c.Vertices[i1].Position, boundaryQuantScale)
			counts[key]++
		}
	}

	for t := 0; t < numTris; t++ {
		for e := 0; e < 3; e++ {
			i0 := c.Indices[t*3+e]
			i1 := c.Indices[t*3+(e+1)%3]
			key := makeEdgeKey(c.Vertices[i0].Position, c.Vertices[i1].Position, boundaryQuantScale)
			c.BoundaryEdges[t*3+e] = counts[key] == 1
		}
	}
}
