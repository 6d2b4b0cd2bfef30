package meshdag

import (
	"math"

	"github.com/chazu/clusterlod/internal/buildlog"
	"github.com/go-gl/mathgl/mgl32"
)

// BuildOption configures a single call to Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	logger *buildlog.Logger
}

// WithLogger attaches a build logger. If omitted, Build logs nowhere.
func WithLogger(l *buildlog.Logger) BuildOption {
	return func(o *buildOptions) { o.logger = l }
}

// Build runs the full leaf-cluster -> group -> merge -> simplify ->
// split pipeline (spec.md §4.H) and returns the finished, read-only
// DAG. Returns a *MalformedInputError if mesh violates a precondition;
// an empty (zero-triangle) mesh succeeds with an empty DAG.
func Build(mesh *RawMesh, cfg Config, opts ...BuildOption) (*DAG, error) {
	o := buildOptions{logger: buildlog.Noop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	if err := validateRawMesh(mesh); err != nil {
		log.BuildFailed(err)
		return nil, err
	}

	dag := newDAG()
	dag.TotalBounds = mesh.Bounds

	log.BuildStarted(mesh.NumTris(), len(mesh.Vertices))

	if mesh.NumTris() == 0 {
		log.BuildFinished(0, 0, 0)
		return dag, nil
	}

	level := buildLeafClusters(dag, mesh, cfg.ClusterSize)

	if len(level) == 1 {
		promoteSingleClusterAsRoot(dag, level[0])
		log.RootsPromoted(1, "single leaf cluster, no groups")
		log.BuildFinished(len(dag.Clusters), len(dag.Groups), dag.MaxMipLevel())
		return dag, nil
	}

	for len(level) > 1 {
		mipLevel := dag.Cluster(level[0]).MipLevel
		log.LevelStarted(mipLevel, len(level))

		groups := groupClusters(dag, level, dag.TotalBounds, cfg.MinGroupSize, cfg.MaxGroupSize, mipLevel)

		var nextLevel []uint32
		for _, gi := range groups {
			g := dag.Group(gi)

			merged := mergeClusters(dag, g.Children)

			totalTris := 0
			for _, ci := range g.Children {
				totalTris += dag.Cluster(ci).NumTris()
			}
			targetTris := totalTris / 2
			if targetTris < cfg.MinClusterSize {
				targetTris = cfg.MinClusterSize
			}
			if targetTris < 1 {
				targetTris = 1
			}

			err := simplifyCluster(&merged, targetTris, true)

			parentError := g.ParentLODError
			if err > parentError {
				parentError = err
			}
			if err <= 0 {
				fallback := merged.EdgeLength * 0.01
				if fallback < 1e-6 {
					fallback = 1e-6
				}
				if fallback > parentError {
					parentError = fallback
				}
			}
			g.ParentLODError = parentError

			log.GroupReduced(mipLevel, totalTris, merged.NumTris(), err)

			parents := splitCluster(merged, cfg.ClusterSize)
			for i := range parents {
				pc := parents[i]
				pc.MipLevel = mipLevel + 1
				pc.LODError = g.ParentLODError
				pc.LODBounds = g.LODBounds
				pc.GeneratingGroupIndex = gi

				pcIdx := dag.addCluster(pc)
				g.ParentClusters = append(g.ParentClusters, pcIdx)
				nextLevel = append(nextLevel, pcIdx)
			}
		}

		if len(nextLevel) == 0 {
			for _, ci := range level {
				dag.Cluster(ci).GeneratingGroupIndex = InvalidIndex
			}
			for _, gi := range groups {
				dag.Group(gi).IsRoot = true
			}
			log.RootsPromoted(len(groups), "no parents produced, promoting groups")
			break
		}

		if len(nextLevel) <= 1 {
			for _, gi := range groups {
				dag.Group(gi).IsRoot = true
			}
			log.RootsPromoted(len(groups), "single output cluster, promoting groups")
			break
		}

		level = nextLevel
	}

	log.BuildFinished(len(dag.Clusters), len(dag.Groups), dag.MaxMipLevel())
	return dag, nil
}

// promoteSingleClusterAsRoot handles the degenerate case where leaf
// clustering already produced exactly one cluster: no group is ever
// formed, so the cluster is promoted directly (spec.md §4.H, "if
// |level| = 1 and no groups exist").
func promoteSingleClusterAsRoot(dag *DAG, clusterIdx uint32) {
	c := dag.Cluster(clusterIdx)
	g := ClusterGroup{
		Children:       []uint32{clusterIdx},
		ParentClusters: []uint32{clusterIdx},
		Bounds:         c.SphereBounds,
		LODBounds:      c.LODBounds,
		ParentLODError: c.LODError,
		MipLevel:       c.MipLevel,
		IsRoot:         true,
	}
	gi := dag.addGroup(g)
	c.GroupIndex = gi
}

// validateRawMesh checks the preconditions from spec.md §6.
func validateRawMesh(mesh *RawMesh) error {
	if len(mesh.Indices)%3 != 0 {
		return &MalformedInputError{Kind: IndexCountNotTriangular, Index: len(mesh.Indices)}
	}
	numVerts := len(mesh.Vertices)
	for i, idx := range mesh.Indices {
		if int(idx) >= numVerts {
			return &MalformedInputError{Kind: IndexOutOfRange, Index: i, Msg: "index references nonexistent vertex"}
		}
	}
	for i, v := range mesh.Vertices {
		if !finiteVec3(v.Position) || !finiteVec3(v.Normal) {
			return &MalformedInputError{Kind: NonFiniteComponent, Index: i}
		}
	}
	if !mesh.Bounds.Valid() && !mesh.Bounds.Empty() {
		return &MalformedInputError{Kind: InvalidBounds, Index: -1, Msg: "bounds is neither valid nor empty"}
	}
	return nil
}

func finiteVec3(v mgl32.Vec3) bool {
	for _, c := range [3]float32{v.X(), v.Y(), v.Z()} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
