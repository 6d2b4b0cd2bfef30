package meshdag

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func singleTriangleCluster() Cluster {
	c := newCluster()
	c.Vertices = []Vertex{
		{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}},
	}
	c.Indices = []uint32{0, 1, 2}
	c.ComputeBoundsAndMetrics()
	c.ComputeBoundaryEdges()
	return c
}

func TestNewClusterHasInvalidLinkage(t *testing.T) {
	c := newCluster()
	if c.GroupIndex != InvalidIndex || c.GeneratingGroupIndex != InvalidIndex {
		t.Fatal("newCluster should start with invalid group linkage")
	}
}

func TestIsLeafByMipLevelOnly(t *testing.T) {
	c := singleTriangleCluster()
	if !c.IsLeaf() {
		t.Error("cluster with MipLevel 0 should be a leaf")
	}
	c.MipLevel = 1
	if c.IsLeaf() {
		t.Error("cluster with MipLevel 1 should not be a leaf")
	}
}

func TestComputeBoundsAndMetricsSingleTriangle(t *testing.T) {
	c := singleTriangleCluster()
	if c.NumTris() != 1 {
		t.Fatalf("expected 1 triangle, got %d", c.NumTris())
	}
	if c.SurfaceArea <= 0.49 || c.SurfaceArea >= 0.51 {
		t.Errorf("expected surface area ~0.5, got %f", c.SurfaceArea)
	}
	if c.LODBounds.Radius != c.SphereBounds.Radius {
		t.Error("leaf cluster should default lodBounds to sphereBounds")
	}
}

func TestComputeBoundsAndMetricsDoesNotOverwriteExplicitLODBounds(t *testing.T) {
	c := singleTriangleCluster()
	override := BoundingSphere{Center: mgl32.Vec3{9, 9, 9}, Radius: 100}
	c.LODBounds = override
	c.ComputeBoundsAndMetrics()
	if c.LODBounds != override {
		t.Error("ComputeBoundsAndMetrics must not overwrite an already-set lodBounds")
	}
}

func TestComputeBoundsAndMetricsEmptyCluster(t *testing.T) {
	c := newCluster()
	c.ComputeBoundsAndMetrics()
	if !c.Bounds.Empty() {
		t.Error("empty cluster should have an empty bounds")
	}
	if c.SurfaceArea != 0 || c.EdgeLength != 0 {
		t.Error("empty cluster should have zero area and edge length")
	}
}
