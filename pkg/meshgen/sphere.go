package meshgen

import (
	"github.com/chazu/clusterlod/pkg/meshdag"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/go-gl/mathgl/mgl32"
)

// weldScale quantizes marching-cubes output positions before welding;
// finer than the build's own merge scale (1e5) since marching cubes already
// produces near-exact shared vertices across triangle boundaries.
const weldScale = 1e6

// Sphere renders a signed-distance-field sphere of the given radius at
// meshCells marching-cubes resolution and welds its triangle soup into
// a meshdag.RawMesh with per-vertex normals averaged from the adjacent
// face normals (spec.md §6's raw mesh contract: position + normal,
// deduplicated).
func Sphere(radius float64, meshCells int) *meshdag.RawMesh {
	sdf3, err := sdf.Sphere3D(radius)
	if err != nil {
		panic(err)
	}
	renderer := render.NewMarchingCubesUniform(meshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	return weldTriangleSoup(triangles)
}

func weldTriangleSoup(triangles []*sdf.Triangle3) *meshdag.RawMesh {
	mesh := &meshdag.RawMesh{Bounds: meshdag.EmptyAABB()}
	weldMap := make(map[posKey]uint32)
	var normalSums []mgl32.Vec3

	for _, tri := range triangles {
		n := tri.Normal()
		faceNormal := mgl32.Vec3{float32(n.X), float32(n.Y), float32(n.Z)}

		var triIdx [3]uint32
		for j := 0; j < 3; j++ {
			p := tri[j]
			pos := mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
			key := quantize(pos)

			idx, ok := weldMap[key]
			if !ok {
				idx = uint32(len(mesh.Vertices))
				mesh.Vertices = append(mesh.Vertices, meshdag.Vertex{Position: pos})
				normalSums = append(normalSums, mgl32.Vec3{})
				weldMap[key] = idx
				mesh.Bounds.Expand(pos)
			}
			normalSums[idx] = normalSums[idx].Add(faceNormal)
			triIdx[j] = idx
		}

		if triIdx[0] == triIdx[1] || triIdx[1] == triIdx[2] || triIdx[0] == triIdx[2] {
			continue // degenerate triangle from marching cubes, drop it
		}
		mesh.Indices = append(mesh.Indices, triIdx[0], triIdx[1], triIdx[2])
	}

	for i, n := range normalSums {
		if l := n.Len(); l > 1e-8 {
			mesh.Vertices[i].Normal = n.Mul(1.0 / l)
		}
	}

	return mesh
}

type posKey struct {
	x, y, z int64
}

func quantize(p mgl32.Vec3) posKey {
	return posKey{
		x: int64(p.X() * weldScale),
		y: int64(p.Y() * weldScale),
		z: int64(p.Z() * weldScale),
	}
}
