package meshdag

import "github.com/go-gl/mathgl/mgl32"

func triCentroidFn(c *Cluster) func(t int) mgl32.Vec3 {
	return func(t int) mgl32.Vec3 {
		p0 := c.Vertices[c.Indices[t*3+0]].Position
		p1 := c.Vertices[c.Indices[t*3+1]].Position
		p2 := c.Vertices[c.Indices[t*3+2]].Position
		return p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
	}
}

// splitCluster re-cuts merged back into clusters of at most clusterSize
// triangles (spec.md §4.F), Morton-sorting by centroid normalized to
// merged's own AABB. If merged already fits, it is returned unchanged.
func splitCluster(merged Cluster, clusterSize int) []Cluster {
	numTris := merged.NumTris()
	if numTris <= clusterSize {
		return []Cluster{merged}
	}

	sorted := sortedMortonTriangles(numTris, triCentroidFn(&merged), merged.Bounds)

	var result []Cluster
	for start := 0; start < numTris; start += clusterSize {
		end := start + clusterSize
		if end > numTris {
			end = numTris
		}

		cluster := newCluster()
		remap := make(map[uint32]uint32)

		for i := start; i < end; i++ {
			origTri := sorted[i].triIndex
			for v := 0; v < 3; v++ {
				srcIdx := merged.Indices[origTri*3+v]
				localIdx, ok := remap[srcIdx]
				if !ok {
					localIdx = uint32(len(cluster.Vertices))
					cluster.Vertices = append(cluster.Vertices, merged.Vertices[srcIdx])
					remap[srcIdx] = localIdx
				}
				cluster.Indices = append(cluster.Indices, localIdx)
			}
		}

		cluster.ComputeBoundsAndMetrics()
		cluster.ComputeBoundaryEdges()
		result = append(result, cluster)
	}

	return result
}
