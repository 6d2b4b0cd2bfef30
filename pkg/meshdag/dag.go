package meshdag

// DAG is the flat, append-only store of clusters and groups produced by
// Build. Entities reference each other by integer index; there are no
// cyclic owning references (spec.md §3, §9). It becomes read-only the
// instant Build returns.
type DAG struct {
	Clusters []Cluster
	Groups   []ClusterGroup

	// TotalBounds is the input mesh's AABB, stored once.
	TotalBounds AABB
}

// newDAG returns an empty DAG.
func newDAG() *DAG {
	return &DAG{}
}

// addCluster appends c to the store and returns its new index. Indices
// are never reused or reassigned.
func (d *DAG) addCluster(c Cluster) uint32 {
	idx := uint32(len(d.Clusters))
	d.Clusters = append(d.Clusters, c)
	return idx
}

// addGroup appends g to the store and returns its new index.
func (d *DAG) addGroup(g ClusterGroup) uint32 {
	idx := uint32(len(d.Groups))
	d.Groups = append(d.Groups, g)
	return idx
}

// Cluster returns a pointer to the cluster at idx for in-place mutation
// during the build. Callers outside this package should treat the
// returned pointer as read-only once Build has returned.
func (d *DAG) Cluster(idx uint32) *Cluster {
	return &d.Clusters[idx]
}

// Group returns a pointer to the group at idx.
func (d *DAG) Group(idx uint32) *ClusterGroup {
	return &d.Groups[idx]
}

// RootGroups returns the indices of all groups with IsRoot set.
func (d *DAG) RootGroups() []uint32 {
	var roots []uint32
	for i, g := range d.Groups {
		if g.IsRoot {
			roots = append(roots, uint32(i))
		}
	}
	return roots
}

// MaxMipLevel returns the highest MipLevel among all clusters, or 0 for
// an empty DAG.
func (d *DAG) MaxMipLevel() int32 {
	var maxLevel int32
	for _, c := range d.Clusters {
		if c.MipLevel > maxLevel {
			maxLevel = c.MipLevel
		}
	}
	return maxLevel
}

// ClustersPerLevel returns, for each mip level from 0 to MaxMipLevel,
// the number of clusters at that level.
func (d *DAG) ClustersPerLevel() []int {
	counts := make([]int, d.MaxMipLevel()+1)
	for _, c := range d.Clusters {
		counts[c.MipLevel]++
	}
	return counts
}

// TrianglesPerLevel returns, for each mip level, the sum of NumTris over
// clusters at that level.
func (d *DAG) TrianglesPerLevel() []int {
	tris := make([]int, d.MaxMipLevel()+1)
	for _, c := range d.Clusters {
		tris[c.MipLevel] += c.NumTris()
	}
	return tris
}
