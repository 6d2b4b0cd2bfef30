package meshdag

import "testing"

func hasSeverity(errs []ValidationError, sev ValidationSeverity) bool {
	for _, e := range errs {
		if e.Severity == sev {
			return true
		}
	}
	return false
}

func TestValidateCleanBuildHasNoErrors(t *testing.T) {
	mesh := gridMesh(14)
	dag, err := Build(mesh, DefaultConfig())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	errs := Validate(dag)
	if hasSeverity(errs, SeverityError) {
		t.Errorf("expected no validation errors on a clean build, got %v", errs)
	}
}

func TestValidateClusterSizeBoundCatchesViolation(t *testing.T) {
	dag := newDAG()
	c := singleTriangleCluster()
	// Duplicate indices/vertices to exceed a tiny bound artificially.
	for i := 0; i < 5; i++ {
		c.Indices = append(c.Indices, c.Indices[:3]...)
	}
	dag.addCluster(c)

	errs := ValidateWithClusterSize(dag, 1)
	if !hasSeverity(errs, SeverityError) {
		t.Error("expected a cluster size bound violation to be reported")
	}
}

func TestValidateIndexOutOfRangeCaught(t *testing.T) {
	dag := newDAG()
	c := singleTriangleCluster()
	c.Indices[0] = 999
	dag.addCluster(c)

	errs := Validate(dag)
	if !hasSeverity(errs, SeverityError) {
		t.Error("expected an out-of-range index to be reported")
	}
}

func TestValidateNoRootGroupCaught(t *testing.T) {
	dag := newDAG()
	c := singleTriangleCluster()
	dag.addCluster(c)
	dag.addGroup(ClusterGroup{Children: []uint32{0}, IsRoot: false})
	dag.Cluster(0).GroupIndex = 0

	errs := Validate(dag)
	found := false
	for _, e := range errs {
		if e.Severity == SeverityError && e.GroupIndex == InvalidIndex && e.ClusterIndex == InvalidIndex {
			found = true
		}
	}
	if !found {
		t.Error("expected a DAG-level error when no group has IsRoot set")
	}
}

func TestValidateMonotoneErrorCaughtOnViolation(t *testing.T) {
	dag := newDAG()
	c := singleTriangleCluster()
	c.LODError = 5
	dag.addCluster(c)
	dag.addGroup(ClusterGroup{Children: []uint32{0}, ParentLODError: 1, IsRoot: true})
	dag.Cluster(0).GroupIndex = 0

	errs := Validate(dag)
	if !hasSeverity(errs, SeverityError) {
		t.Error("expected monotone error violation (parentLODError < child lodError) to be reported")
	}
}
