package meshdag

// Cluster is a connected or disconnected patch of at most Config.ClusterSize
// triangles, with its own local vertex table (spec.md §3).
type Cluster struct {
	Vertices []Vertex
	Indices  []uint32 // 3 per triangle, local to Vertices

	Bounds       AABB
	SphereBounds BoundingSphere
	LODBounds    BoundingSphere // shared by all siblings of the generating group

	LODError    float32 // max geometric error introduced producing this cluster
	EdgeLength  float32 // mean edge length
	SurfaceArea float32
	MipLevel    int32 // 0 = leaf, increases toward root

	GroupIndex           uint32 // group that contains this cluster as a child
	GeneratingGroupIndex uint32 // group whose merge+simplify+split produced this cluster

	// BoundaryEdges flags, per directed edge (3 per triangle): true iff the
	// undirected edge has exactly one incident triangle in this cluster.
	BoundaryEdges []bool
}

// NumTris returns the number of triangles (Indices) / 3.
func (c *Cluster) NumTris() int {
	return len(c.Indices) / 3
}

// IsLeaf reports whether this cluster was produced directly from the raw
// mesh rather than by simplifying a group. spec.md §9 explicitly rejects
// overloading EdgeLength's sign as a leaf marker; MipLevel is the only
// signal.
func (c *Cluster) IsLeaf() bool {
	return c.MipLevel == 0
}

// newCluster returns a Cluster with invalid DAG linkage, ready to be
// populated by the leaf clusterer, merger, or splitter.
func newCluster() Cluster {
	return Cluster{
		GroupIndex:           InvalidIndex,
		GeneratingGroupIndex: InvalidIndex,
	}
}

// ComputeBoundsAndMetrics recomputes Bounds, SphereBounds, SurfaceArea,
// and EdgeLength from the current Vertices/Indices (spec.md §4.B). If
// LODBounds has not yet been set (radius <= 0), it defaults to
// SphereBounds — the leaf-level behavior; internal levels overwrite
// LODBounds explicitly from their generating group.
func (c *Cluster) ComputeBoundsAndMetrics() {
	bounds := EmptyAABB()
	for _, v := range c.Vertices {
		bounds.Expand(v.Position)
	}
	c.Bounds = bounds
	if bounds.Empty() {
		c.SphereBounds = BoundingSphere{}
		c.SurfaceArea = 0
		c.EdgeLength = 0
		return
	}
	c.SphereBounds = BoundingSphereFromAABB(bounds)

	numTris := c.NumTris()
	var totalArea, totalEdgeLen float32
	var edgeCount int
	for t := 0; t < numTris; t++ {
		p0 := c.Vertices[c.Indices[t*3+0]].Position
		p1 := c.Vertices[c.Indices[t*3+1]].Position
		p2 := c.Vertices[c.Indices[t*3+2]].Position

		cross := p1.Sub(p0).Cross(p2.Sub(p0))
		totalArea += cross.Len() * 0.5

		totalEdgeLen += p0.Sub(p1).Len()
		totalEdgeLen += p1.Sub(p2).Len()
		totalEdgeLen += p2.Sub(p0).Len()
		edgeCount += 3
	}
	c.SurfaceArea = totalArea
	if edgeCount > 0 {
		c.EdgeLength = totalEdgeLen / float32(edgeCount)
	} else {
		c.EdgeLength = 0
	}

	if c.LODBounds.Radius <= 0 {
		c.LODBounds = c.SphereBounds
	}
}
