package meshgen

import (
	"github.com/chazu/clusterlod/pkg/meshdag"
	"github.com/go-gl/mathgl/mgl32"
)

// Icosphere builds a unit-radius sphere by subdividing a regular
// icosahedron subdivisions times, projecting each new vertex onto the
// unit sphere. subdivisions=0 returns the bare 20-triangle icosahedron.
// Used as a property-test fixture alternative to the sdfx marching-cubes
// path (spec.md §8, "random perturbation of subdivided icosahedra").
func Icosphere(subdivisions int) *meshdag.RawMesh {
	verts, tris := icosahedron()

	for s := 0; s < subdivisions; s++ {
		verts, tris = subdivide(verts, tris)
	}

	mesh := &meshdag.RawMesh{Bounds: meshdag.EmptyAABB()}
	for _, v := range verts {
		n := v.Normalize()
		mesh.Vertices = append(mesh.Vertices, meshdag.Vertex{Position: n, Normal: n})
		mesh.Bounds.Expand(n)
	}
	for _, tri := range tris {
		mesh.Indices = append(mesh.Indices, tri[0], tri[1], tri[2])
	}
	return mesh
}

func icosahedron() ([]mgl32.Vec3, [][3]uint32) {
	t := float32(1.6180339887) // golden ratio

	verts := []mgl32.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range verts {
		verts[i] = verts[i].Normalize()
	}

	tris := [][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return verts, tris
}

// subdivide splits every triangle into four, welding the new midpoint
// vertices by an edge-key cache so shared edges produce one vertex, not
// one per triangle.
func subdivide(verts []mgl32.Vec3, tris [][3]uint32) ([]mgl32.Vec3, [][3]uint32) {
	midpointCache := make(map[[2]uint32]uint32)

	midpoint := func(a, b uint32) uint32 {
		key := [2]uint32{a, b}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if idx, ok := midpointCache[key]; ok {
			return idx
		}
		mid := verts[a].Add(verts[b]).Mul(0.5).Normalize()
		idx := uint32(len(verts))
		verts = append(verts, mid)
		midpointCache[key] = idx
		return idx
	}

	var newTris [][3]uint32
	for _, tri := range tris {
		a, b, c := tri[0], tri[1], tri[2]
		ab := midpoint(a, b)
		bc := midpoint(b, c)
		ca := midpoint(c, a)
		newTris = append(newTris,
			[3]uint32{a, ab, ca},
			[3]uint32{b, bc, ab},
			[3]uint32{c, ca, bc},
			[3]uint32{ab, bc, ca},
		)
	}
	return verts, newTris
}
