package meshdag

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// gridMesh builds a flat n x n grid of unit quads (2 triangles each) in the
// z=0 plane, used to exercise clustering/grouping at a known triangle count.
func gridMesh(n int) *RawMesh {
	mesh := &RawMesh{Bounds: EmptyAABB()}
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			p := mgl32.Vec3{float32(x), float32(y), 0}
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: p, Normal: mgl32.Vec3{0, 0, 1}})
			mesh.Bounds.Expand(p)
		}
	}
	stride := n + 1
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i0 := uint32(y*stride + x)
			i1 := i0 + 1
			i2 := uint32((y+1)*stride + x)
			i3 := i2 + 1
			mesh.Indices = append(mesh.Indices, i0, i1, i2, i1, i3, i2)
		}
	}
	return mesh
}

func TestBuildLeafClustersTriangleConservation(t *testing.T) {
	mesh := gridMesh(10) // 200 triangles
	dag := newDAG()
	dag.TotalBounds = mesh.Bounds

	indices := buildLeafClusters(dag, mesh, 32)

	total := 0
	for _, ci := range indices {
		c := dag.Cluster(ci)
		if c.NumTris() > 32 {
			t.Errorf("leaf cluster exceeds target size: %d", c.NumTris())
		}
		if !c.IsLeaf() || c.LODError != 0 {
			t.Error("leaf clusters must have MipLevel 0 and LODError 0")
		}
		total += c.NumTris()
	}
	if total != mesh.NumTris() {
		t.Errorf("expected %d total triangles across leaves, got %d", mesh.NumTris(), total)
	}
}

func TestBuildLeafClustersEmptyMesh(t *testing.T) {
	mesh := &RawMesh{Bounds: EmptyAABB()}
	dag := newDAG()
	indices := buildLeafClusters(dag, mesh, 128)
	if indices != nil {
		t.Errorf("expected no leaf clusters for an empty mesh, got %d", len(indices))
	}
}

func TestBuildLeafClustersLastRunNonemptyAndShort(t *testing.T) {
	mesh := gridMesh(3) // 18 triangles
	dag := newDAG()
	dag.TotalBounds = mesh.Bounds

	indices := buildLeafClusters(dag, mesh, 5)
	if len(indices) != 4 { // 5+5+5+3
		t.Fatalf("expected 4 clusters, got %d", len(indices))
	}
	last := dag.Cluster(indices[len(indices)-1])
	if last.NumTris() != 3 {
		t.Errorf("expected last cluster to hold the 3-triangle remainder, got %d", last.NumTris())
	}
}
