package meshdag

import "testing"

func TestSplitClusterUnderLimitUnchanged(t *testing.T) {
	c := singleTriangleCluster()
	result := splitCluster(c, 10)
	if len(result) != 1 {
		t.Fatalf("expected single cluster passthrough, got %d", len(result))
	}
	if result[0].NumTris() != 1 {
		t.Errorf("expected passthrough cluster to retain its triangle, got %d tris", result[0].NumTris())
	}
}

func TestSplitClusterRespectsLimit(t *testing.T) {
	mesh := gridMesh(10) // 200 triangles
	dag := newDAG()
	dag.TotalBounds = mesh.Bounds
	leaves := buildLeafClusters(dag, mesh, 200)
	merged := mergeClusters(dag, leaves)

	result := splitCluster(merged, 16)

	total := 0
	for _, c := range result {
		if c.NumTris() > 16 {
			t.Errorf("split cluster exceeds limit: %d", c.NumTris())
		}
		if c.NumTris() == 0 {
			t.Error("split should never produce an empty cluster chunk")
		}
		total += c.NumTris()
	}
	if total != merged.NumTris() {
		t.Errorf("split clusters cover %d triangles, want %d", total, merged.NumTris())
	}
}
