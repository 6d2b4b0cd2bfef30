// Package spatialindex wraps a DAG's cluster bounding boxes in an
// R-tree for region and overlap queries, independent of the DAG's own
// level/group linkage. It is a read-only view built once after a build
// completes.
package spatialindex

import (
	"github.com/chazu/clusterlod/pkg/meshdag"
	"github.com/dhconnelly/rtreego"
)

const (
	dimensions      = 3
	minBranchFactor = 4
	maxBranchFactor = 16
)

// clusterEntry adapts a single cluster's AABB to rtreego.Spatial.
type clusterEntry struct {
	clusterIndex uint32
	rect         rtreego.Rect
}

func (e *clusterEntry) Bounds() rtreego.Rect {
	return e.rect
}

// Index is an R-tree over every cluster's bounding box in a DAG.
type Index struct {
	tree *rtreego.Rtree
}

// Build inserts every cluster's AABB from dag into a fresh R-tree.
// Clusters with empty bounds are skipped; degenerate (zero-volume)
// bounds are padded by rectFromAABB and indexed, since rtreego requires
// strictly positive rectangle side lengths.
func Build(dag *meshdag.DAG) *Index {
	tree := rtreego.NewTree(dimensions, minBranchFactor, maxBranchFactor)
	for i, c := range dag.Clusters {
		rect, ok := rectFromAABB(c.Bounds)
		if !ok {
			continue
		}
		tree.Insert(&clusterEntry{clusterIndex: uint32(i), rect: rect})
	}
	return &Index{tree: tree}
}

// rectFromAABB converts a meshdag.AABB to an rtreego.Rect, padding any
// zero-extent axis with a minimal epsilon so degenerate (e.g. planar)
// clusters remain representable.
func rectFromAABB(b meshdag.AABB) (rtreego.Rect, bool) {
	if b.Empty() {
		return rtreego.Rect{}, false
	}
	const epsilon = 1e-6

	size := b.Size()
	lengths := [dimensions]float64{
		float64(size.X()),
		float64(size.Y()),
		float64(size.Z()),
	}
	for i := range lengths {
		if lengths[i] < epsilon {
			lengths[i] = epsilon
		}
	}

	point := rtreego.Point{float64(b.Min.X()), float64(b.Min.Y()), float64(b.Min.Z())}
	rect, err := rtreego.NewRect(point, lengths[:])
	if err != nil {
		return rtreego.Rect{}, false
	}
	return rect, true
}

// QueryAABB returns the indices of every cluster whose bounding box
// overlaps box.
func (idx *Index) QueryAABB(box meshdag.AABB) []uint32 {
	rect, ok := rectFromAABB(box)
	if !ok {
		return nil
	}
	results := idx.tree.SearchIntersect(rect)

	indices := make([]uint32, 0, len(results))
	for _, r := range results {
		indices = append(indices, r.(*clusterEntry).clusterIndex)
	}
	return indices
}

// Size returns the number of clusters indexed.
func (idx *Index) Size() int {
	return idx.tree.Size()
}
