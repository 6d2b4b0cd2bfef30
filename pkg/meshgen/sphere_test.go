package meshgen

import "testing"

func TestSphereProducesWatertightishMesh(t *testing.T) {
	mesh := Sphere(10, 24)
	if mesh.NumTris() == 0 {
		t.Fatal("expected a non-empty sphere mesh")
	}
	if len(mesh.Vertices) == 0 {
		t.Fatal("expected welded vertices")
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(mesh.Vertices))
		}
	}
	t.Logf("sphere mesh: %d triangles, %d vertices", mesh.NumTris(), len(mesh.Vertices))
}

func TestSphereWeldingDedupesSharedVertices(t *testing.T) {
	mesh := Sphere(5, 16)
	// A marching-cubes sphere has far fewer unique vertices than 3*triangles.
	if len(mesh.Vertices) >= mesh.NumTris()*3 {
		t.Errorf("expected welding to reduce vertex count below unwelded soup: %d vertices for %d triangles",
			len(mesh.Vertices), mesh.NumTris())
	}
}

func TestSphereNormalsAreUnitLength(t *testing.T) {
	mesh := Sphere(5, 16)
	for i, v := range mesh.Vertices {
		l := v.Normal.Len()
		if l < 0.9 || l > 1.1 {
			t.Errorf("vertex %d normal not approximately unit length: %f", i, l)
		}
	}
}
