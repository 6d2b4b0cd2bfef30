package meshdag

// mergeWeldScale is the quantization scale used to weld vertices during
// a merge (spec.md §4.E). Tighter than the boundary-detection scale
// since merge welding must not accidentally fuse genuinely distinct
// nearby vertices.
const mergeWeldScale = 1e5

// mergeClusters unions the geometry of the given children (indices into
// dag.Clusters) into a single cluster, welding vertices by quantized
// position. Normals of welded vertices are summed, not averaged, then
// renormalized once at the end (spec.md §4.E). The merger does not
// simplify; the result's boundary edges are exactly the group's outer
// silhouette, which the simplifier will lock.
func mergeClusters(dag *DAG, children []uint32) Cluster {
	merged := newCluster()
	weldMap := make(map[posKey]uint32)

	for _, ci := range children {
		src := dag.Cluster(ci)
		remap := make([]uint32, len(src.Vertices))

		for v, vert := range src.Vertices {
			key := quantizePos(vert.Position, mergeWeldScale)
			if existing, ok := weldMap[key]; ok {
				remap[v] = existing
				merged.Vertices[existing].Normal = merged.Vertices[existing].Normal.Add(vert.Normal)
			} else {
				newIdx := uint32(len(merged.Vertices))
				merged.Vertices = append(merged.Vertices, vert)
				weldMap[key] = newIdx
				remap[v] = newIdx
			}
		}

		for _, idx := range src.Indices {
			merged.Indices = append(merged.Indices, remap[idx])
		}
	}

	for i := range merged.Vertices {
		n := merged.Vertices[i].Normal
		if l := n.Len(); l > 1e-8 {
			merged.Vertices[i].Normal = n.Mul(1.0 / l)
		}
		// else: leave as-is, length underflowed; caller never dereferences
		// magnitude of a degenerate normal.
	}

	merged.ComputeBoundsAndMetrics()
	merged.ComputeBoundaryEdges()
	return merged
}
