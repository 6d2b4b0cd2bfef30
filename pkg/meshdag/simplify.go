package meshdag

import (
	"container/heap"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// collapseSentinel marks a candidate collapse that must not happen
// (both endpoints locked). Any popped candidate at or above this cost
// terminates the main loop (spec.md §4.G).
const collapseSentinel = 1e29

// collapseCandidate is one entry in the simplifier's min-heap: an
// edge collapse (v0 -> v1 merged to a placement), its quadric cost, and
// the generation sum at construction time for staleness detection.
type collapseCandidate struct {
	v0, v1    uint32
	cost      float64
	placement mgl64.Vec3
	genSum    uint32
}

type candidateHeap []collapseCandidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(collapseCandidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// unionFind maps each vertex to the root vertex it has collapsed into,
// with path compression (spec.md §4.G).
type unionFind struct {
	parent []uint32
}

func newUnionFind(n int) unionFind {
	parent := make([]uint32, n)
	for i := range parent {
		parent[i] = uint32(i)
	}
	return unionFind{parent: parent}
}

func (u *unionFind) find(v uint32) uint32 {
	for u.parent[v] != v {
		u.parent[v] = u.parent[u.parent[v]]
		v = u.parent[v]
	}
	return v
}

func (u *unionFind) union(child, root uint32) {
	u.parent[child] = root
}

// simplifyCluster reduces c toward targetNumTris using Garland-Heckbert
// quadric error metrics, returning the geometric error introduced
// (spec.md §4.G). If lockBoundary is set, every vertex incident to a
// boundary edge is never moved. Never fails: if the heap empties before
// the target is reached, it returns with whatever reduction was
// achieved.
func simplifyCluster(c *Cluster, targetNumTris int, lockBoundary bool) float32 {
	numTris := c.NumTris()
	if numTris <= targetNumTris {
		return 0
	}
	numVerts := len(c.Vertices)

	quadrics := make([]quadric, numVerts)
	for t := 0; t < numTris; t++ {
		i0, i1, i2 := c.Indices[t*3+0], c.Indices[t*3+1], c.Indices[t*3+2]
		p0 := vec64(c.Vertices[i0].Position)
		p1 := vec64(c.Vertices[i1].Position)
		p2 := vec64(c.Vertices[i2].Position)

		normal := p1.Sub(p0).Cross(p2.Sub(p0))
		length := normal.Len()
		if length < 1e-12 {
			continue // degenerate triangle contributes nothing
		}
		normal = normal.Mul(1.0 / length)
		d := -normal.Dot(p0)
		area := length * 0.5
		q := quadricFromPlane(normal, d, area)

		quadrics[i0] = quadrics[i0].add(q)
		quadrics[i1] = quadrics[i1].add(q)
		quadrics[i2] = quadrics[i2].add(q)
	}

	locked := make([]bool, numVerts)
	if lockBoundary && len(c.BoundaryEdges) > 0 {
		for t := 0; t < numTris; t++ {
			for e := 0; e < 3; e++ {
				if c.BoundaryEdges[t*3+e] {
					locked[c.Indices[t*3+e]] = true
					locked[c.Indices[t*3+(e+1)%3]] = true
				}
			}
		}
	}

	uf := newUnionFind(numVerts)
	gen := make([]uint32, numVerts)
	triAlive := make([]bool, numTris)
	for t := range triAlive {
		triAlive[t] = true
	}
	currentTriCount := numTris

	vertTris := make([][]uint32, numVerts)
	for t := 0; t < numTris; t++ {
		for v := 0; v < 3; v++ {
			vi := c.Indices[t*3+v]
			vertTris[vi] = append(vertTris[vi], uint32(t))
		}
	}

	computeCollapse := func(v0, v1 uint32) collapseCandidate {
		cc := collapseCandidate{v0: v0, v1: v1, genSum: gen[v0] + gen[v1]}

		if locked[v0] && locked[v1] {
			cc.cost = collapseSentinel
			cc.placement = vec64(c.Vertices[v0].Position)
			return cc
		}

		combined := quadrics[v0].add(quadrics[v1])

		if !locked[v0] && !locked[v1] {
			if pos, ok := combined.solveOptimal(); ok {
				cost := combined.evaluate(pos)
				if cost < 0 {
					cost = 0
				}
				cc.cost = cost
				cc.placement = pos
				return cc
			}
		}

		p0 := vec64(c.Vertices[v0].Position)
		p1 := vec64(c.Vertices[v1].Position)
		mid := p0.Add(p1).Mul(0.5)

		c0 := combined.evaluate(p0)
		c1 := combined.evaluate(p1)

		switch {
		case locked[v0]:
			cc.cost, cc.placement = c0, p0
		case locked[v1]:
			cc.cost, cc.placement = c1, p1
		default:
			cm := combined.evaluate(mid)
			switch {
			case c0 <= c1 && c0 <= cm:
				cc.cost, cc.placement = c0, p0
			case c1 <= cm:
				cc.cost, cc.placement = c1, p1
			default:
				cc.cost, cc.placement = cm, mid
			}
		}
		if cc.cost < 0 {
			cc.cost = 0
		}
		return cc
	}

	edgeKeyFn := func(a, b uint32) uint64 {
		if a > b {
			a, b = b, a
		}
		return uint64(a)<<32 | uint64(b)
	}

	h := &candidateHeap{}
	heap.Init(h)
	seenEdges := make(map[uint64]bool)
	for t := 0; t < numTris; t++ {
		i0, i1, i2 := c.Indices[t*3+0], c.Indices[t*3+1], c.Indices[t*3+2]
		pairs := [3][2]uint32{{i0, i1}, {i1, i2}, {i2, i0}}
		for _, p := range pairs {
			key := edgeKeyFn(p[0], p[1])
			if !seenEdges[key] {
				seenEdges[key] = true
				heap.Push(h, computeCollapse(p[0], p[1]))
			}
		}
	}

	maxError := 0.0

	wouldFlip := func(root, movedRoot uint32, placement mgl64.Vec3) bool {
		for _, t := range vertTris[root] {
			if !triAlive[t] {
				continue
			}
			ti0 := uf.find(c.Indices[t*3+0])
			ti1 := uf.find(c.Indices[t*3+1])
			ti2 := uf.find(c.Indices[t*3+2])
			if ti0 == ti1 || ti1 == ti2 || ti0 == ti2 {
				continue // degenerate already
			}
			if ti0 == movedRoot || ti1 == movedRoot || ti2 == movedRoot {
				continue // contains both endpoints, will collapse away
			}

			before := [3]mgl64.Vec3{
				vec64(c.Vertices[ti0].Position),
				vec64(c.Vertices[ti1].Position),
				vec64(c.Vertices[ti2].Position),
			}
			after := before
			roots := [3]uint32{ti0, ti1, ti2}
			for v := 0; v < 3; v++ {
				if roots[v] == root {
					after[v] = placement
				}
			}
			nb := before[1].Sub(before[0]).Cross(before[2].Sub(before[0]))
			na := after[1].Sub(after[0]).Cross(after[2].Sub(after[0]))
			if nb.Dot(na) < 0 {
				return true
			}
		}
		return false
	}

	for currentTriCount > targetNumTris && h.Len() > 0 {
		cand := heap.Pop(h).(collapseCandidate)

		rv0 := uf.find(cand.v0)
		rv1 := uf.find(cand.v1)
		if rv0 == rv1 {
			continue // already collapsed together
		}
		if cand.v0 != rv0 || cand.v1 != rv1 {
			continue // stale: one side has since collapsed elsewhere
		}
		if cand.genSum != gen[rv0]+gen[rv1] {
			continue // stale: a neighbor changed underneath
		}
		if cand.cost >= collapseSentinel {
			break // no more legal collapses
		}

		if wouldFlip(rv1, rv0, cand.placement) || wouldFlip(rv0, rv1, cand.placement) {
			continue // face-flip: reject, do not requeue
		}

		if cand.cost > maxError {
			maxError = cand.cost
		}

		c.Vertices[rv0].Position = vec32(cand.placement)
		sumNormal := c.Vertices[rv0].Normal.Add(c.Vertices[rv1].Normal)
		if l := sumNormal.Len(); l > 1e-8 {
			c.Vertices[rv0].Normal = sumNormal.Mul(1.0 / l)
		} else {
			c.Vertices[rv0].Normal = sumNormal
		}
		if locked[rv1] {
			locked[rv0] = true
		}

		quadrics[rv0] = quadrics[rv0].add(quadrics[rv1])
		uf.union(rv1, rv0)
		gen[rv0]++

		vertTris[rv0] = append(vertTris[rv0], vertTris[rv1]...)
		vertTris[rv1] = nil

		for _, t := range vertTris[rv0] {
			if !triAlive[t] {
				continue
			}
			for v := 0; v < 3; v++ {
				c.Indices[t*3+uint32(v)] = uf.find(c.Indices[t*3+uint32(v)])
			}
			ti0, ti1, ti2 := c.Indices[t*3+0], c.Indices[t*3+1], c.Indices[t*3+2]
			if ti0 == ti1 || ti1 == ti2 || ti0 == ti2 {
				triAlive[t] = false
				currentTriCount--
			}
		}

		// Neighbors are collected in triangle-list order (not map order) so
		// that heap push order, and with it the build, is deterministic.
		seenNeighbor := make(map[uint32]bool)
		var neighbors []uint32
		for _, t := range vertTris[rv0] {
			if !triAlive[t] {
				continue
			}
			for v := 0; v < 3; v++ {
				nv := uf.find(c.Indices[uint32(t)*3+uint32(v)])
				if nv != rv0 && !seenNeighbor[nv] {
					seenNeighbor[nv] = true
					neighbors = append(neighbors, nv)
				}
			}
		}
		for _, nv := range neighbors {
			heap.Push(h, computeCollapse(rv0, nv))
		}
	}

	compactCluster(c, &uf, triAlive, numTris)

	return float32(math.Sqrt(math.Max(maxError, 0)))
}

// compactCluster rewrites c's geometry to only the surviving (live,
// non-degenerate) triangles, translating every vertex through its
// union-find root and deduplicating on root index (spec.md §4.G,
// "Compaction").
func compactCluster(c *Cluster, uf *unionFind, triAlive []bool, numTris int) {
	newVerts := make([]Vertex, 0, len(c.Vertices))
	newIndices := make([]uint32, 0, len(c.Indices))
	compactMap := make(map[uint32]uint32)

	for t := 0; t < numTris; t++ {
		if !triAlive[t] {
			continue
		}
		var tri [3]uint32
		for v := 0; v < 3; v++ {
			root := uf.find(c.Indices[uint32(t)*3+uint32(v)])
			newIdx, ok := compactMap[root]
			if !ok {
				newIdx = uint32(len(newVerts))
				newVerts = append(newVerts, c.Vertices[root])
				compactMap[root] = newIdx
			}
			tri[v] = newIdx
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			continue
		}
		newIndices = append(newIndices, tri[0], tri[1], tri[2])
	}

	c.Vertices = newVerts
	c.Indices = newIndices
	c.ComputeBoundsAndMetrics()
	c.ComputeBoundaryEdges()
}

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X()), float64(v.Y()), float64(v.Z())}
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
