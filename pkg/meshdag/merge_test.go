package meshdag

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func twoTriangleClusters() (dag *DAG, children []uint32) {
	dag = newDAG()

	a := newCluster()
	a.Vertices = []Vertex{
		{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}},
	}
	a.Indices = []uint32{0, 1, 2}
	a.ComputeBoundsAndMetrics()
	a.ComputeBoundaryEdges()

	b := newCluster()
	b.Vertices = []Vertex{
		{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{1, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}},
	}
	b.Indices = []uint32{0, 1, 2}
	b.ComputeBoundsAndMetrics()
	b.ComputeBoundaryEdges()

	children = []uint32{dag.addCluster(a), dag.addCluster(b)}
	return
}

func TestMergeClustersWeldsSharedVertices(t *testing.T) {
	dag, children := twoTriangleClusters()
	merged := mergeClusters(dag, children)

	if merged.NumTris() != 2 {
		t.Fatalf("expected 2 triangles after merge, got %d", merged.NumTris())
	}
	// The two input triangles share the edge (1,0,0)-(0,1,0): 2 welded
	// vertices out of an unwelded total of 6.
	if len(merged.Vertices) != 4 {
		t.Errorf("expected 4 welded vertices, got %d", len(merged.Vertices))
	}
}

func TestMergeClustersNormalsAreUnitLength(t *testing.T) {
	dag, children := twoTriangleClusters()
	merged := mergeClusters(dag, children)
	for i, v := range merged.Vertices {
		l := v.Normal.Len()
		if l < 0.99 || l > 1.01 {
			t.Errorf("vertex %d normal not unit length: %f", i, l)
		}
	}
}

func TestMergeClustersBoundaryIsOuterSilhouette(t *testing.T) {
	dag, children := twoTriangleClusters()
	merged := mergeClusters(dag, children)

	boundaryCount := 0
	for _, b := range merged.BoundaryEdges {
		if b {
			boundaryCount++
		}
	}
	// A 2-triangle quad has 4 outer edges and 1 shared interior edge
	// (counted twice, both non-boundary).
	if boundaryCount != 4 {
		t.Errorf("expected 4 boundary edges on merged quad, got %d", boundaryCount)
	}
}
