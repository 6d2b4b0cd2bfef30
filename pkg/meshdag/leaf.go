package meshdag

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// triInfo pairs an original triangle index with its Morton code for
// spatial sort (spec.md §4.A, §4.C).
type triInfo struct {
	triIndex   int
	mortonCode uint32
}

func sortedMortonTriangles(numTris int, centroid func(t int) mgl32.Vec3, bounds AABB) []triInfo {
	infos := make([]triInfo, numTris)
	for t := 0; t < numTris; t++ {
		normalized := normalizeToBounds(centroid(t), bounds)
		infos[t] = triInfo{triIndex: t, mortonCode: mortonEncode(normalized)}
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].mortonCode < infos[j].mortonCode
	})
	return infos
}

// buildLeafClusters partitions mesh's triangles into clusters of at most
// clusterSize triangles via Morton-code spatial sort (spec.md §4.C).
// Appends the new clusters to dag and returns their indices.
func buildLeafClusters(dag *DAG, mesh *RawMesh, clusterSize int) []uint32 {
	numTris := mesh.NumTris()
	if numTris == 0 {
		return nil
	}

	infos := sortedMortonTriangles(numTris, func(t int) mgl32.Vec3 {
		p0 := mesh.Vertices[mesh.Indices[t*3+0]].Position
		p1 := mesh.Vertices[mesh.Indices[t*3+1]].Position
		p2 := mesh.Vertices[mesh.Indices[t*3+2]].Position
		return p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
	}, mesh.Bounds)

	var newIndices []uint32
	for start := 0; start < numTris; start += clusterSize {
		end := start + clusterSize
		if end > numTris {
			end = numTris
		}

		cluster := newCluster()
		globalToLocal := make(map[uint32]uint32)

		for i := start; i < end; i++ {
			origTri := infos[i].triIndex
			for v := 0; v < 3; v++ {
				globalIdx := mesh.Indices[origTri*3+v]
				localIdx, ok := globalToLocal[globalIdx]
				if !ok {
					localIdx = uint32(len(cluster.Vertices))
					cluster.Vertices = append(cluster.Vertices, mesh.Vertices[globalIdx])
					globalToLocal[globalIdx] = localIdx
				}
				cluster.Indices = append(cluster.Indices, localIdx)
			}
		}

		cluster.MipLevel = 0
		cluster.LODError = 0
		cluster.ComputeBoundsAndMetrics()
		cluster.ComputeBoundaryEdges()

		idx := dag.addCluster(cluster)
		newIndices = append(newIndices, idx)
	}

	return newIndices
}
