package meshdag

import (
	"sort"

	"github.com/samber/lo"
)

// ClusterGroup is the unit of joint simplification: a set of sibling
// clusters simplified together, plus the parent clusters that resulted
// (spec.md §3).
type ClusterGroup struct {
	Children       []uint32 // cluster indices at level L
	ParentClusters []uint32 // cluster indices at level L+1

	Bounds    BoundingSphere
	LODBounds BoundingSphere

	ParentLODError float32 // monotonic error bound, see invariant 2
	MipLevel       int32   // level of Children
	IsRoot         bool
}

// groupClusters partitions one level's clusters into groups (spec.md
// §4.H, groupClusters). Each group's Bounds/LODBounds are the merge of
// its children's spheres, and ParentLODError starts as the max child
// lodError (later raised to the simplifier's actual error). Children
// have their GroupIndex set to the new group.
func groupClusters(dag *DAG, level []uint32, totalBounds AABB, minGroupSize, maxGroupSize int, mipLevel int32) []uint32 {
	if len(level) == 0 {
		return nil
	}
	if len(level) <= maxGroupSize {
		return []uint32{buildGroup(dag, level, mipLevel)}
	}

	sorted := make([]uint32, len(level))
	copy(sorted, level)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci := dag.Cluster(sorted[i]).Bounds.Center()
		cj := dag.Cluster(sorted[j]).Bounds.Center()
		mi := mortonEncode(normalizeToBounds(ci, totalBounds))
		mj := mortonEncode(normalizeToBounds(cj, totalBounds))
		return mi < mj
	})

	numGroups := len(sorted) / maxGroupSize
	targetSize := len(sorted) / numGroups
	if targetSize < minGroupSize {
		targetSize = minGroupSize
	}

	var groups []uint32
	start := 0
	for start < len(sorted) {
		end := start + targetSize
		if end > len(sorted) {
			end = len(sorted)
		}
		if remainder := len(sorted) - end; remainder > 0 && remainder < minGroupSize {
			end = len(sorted)
		}
		groups = append(groups, buildGroup(dag, sorted[start:end], mipLevel))
		start = end
	}
	return groups
}

// buildGroup appends a new group spanning children to dag, computes its
// bounds from the children's spheres, and back-links each child's
// GroupIndex.
func buildGroup(dag *DAG, children []uint32, mipLevel int32) uint32 {
	g := ClusterGroup{
		Children: append([]uint32(nil), children...),
		MipLevel: mipLevel,
	}

	childClusters := lo.Map(children, func(ci uint32, _ int) *Cluster { return dag.Cluster(ci) })
	spheres := lo.Map(childClusters, func(c *Cluster, _ int) BoundingSphere { return c.SphereBounds })
	lodSpheres := lo.Map(childClusters, func(c *Cluster, _ int) BoundingSphere { return c.LODBounds })

	g.Bounds = SpheresFromList(spheres)
	g.LODBounds = SpheresFromList(lodSpheres)
	g.ParentLODError = lo.MaxBy(childClusters, func(a, b *Cluster) bool { return a.LODError > b.LODError }).LODError

	idx := dag.addGroup(g)
	for _, ci := range children {
		dag.Cluster(ci).GroupIndex = idx
	}
	return idx
}
