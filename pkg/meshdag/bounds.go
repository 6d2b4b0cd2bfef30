package meshdag

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box. The empty box is defined so that
// the first Expand call initializes it correctly (spec.md §4.B).
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyAABB returns an AABB with min = +math.MaxFloat32, max =
// -math.MaxFloat32 componentwise (the largest finite float32 values).
func EmptyAABB() AABB {
	inf := float32(math.MaxFloat32)
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Expand grows the box to include p.
func (b *AABB) Expand(p mgl32.Vec3) {
	b.Min = componentMin(b.Min, p)
	b.Max = componentMax(b.Max, p)
}

// ExpandBox grows the box to include other.
func (b *AABB) ExpandBox(other AABB) {
	b.Min = componentMin(b.Min, other.Min)
	b.Max = componentMax(b.Max, other.Max)
}

// Center returns the box's midpoint.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extent returns the box's half-extents.
func (b AABB) Extent() mgl32.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Size returns the box's full extents (Max - Min).
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Valid reports whether the box encloses at least one point (min <= max
// componentwise). An empty AABB (see EmptyAABB) is not Valid.
func (b AABB) Valid() bool {
	return b.Min.X() <= b.Max.X() && b.Min.Y() <= b.Max.Y() && b.Min.Z() <= b.Max.Z()
}

// Empty reports whether the box has never been expanded.
func (b AABB) Empty() bool {
	return b.Min.X() > b.Max.X()
}

func componentMin(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min32(a.X(), b.X()), min32(a.Y(), b.Y()), min32(a.Z(), b.Z())}
}

func componentMax(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max32(a.X(), b.X()), max32(a.Y(), b.Y()), max32(a.Z(), b.Z())}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// BoundingSphere is used for LOD projected-error tests (spec.md §4.B).
type BoundingSphere struct {
	Center mgl32.Vec3
	Radius float32
}

// BoundingSphereFromAABB builds the sphere that circumscribes box.
func BoundingSphereFromAABB(box AABB) BoundingSphere {
	return BoundingSphere{
		Center: box.Center(),
		Radius: box.Extent().Len(),
	}
}

// MergeSpheres returns the minimum enclosing sphere of a and b using the
// classical containment test: if one sphere contains the other, return
// it unchanged; otherwise grow a new sphere along the connecting axis.
// Fails safe (returns the non-degenerate input) when either radius is 0.
func MergeSpheres(a, b BoundingSphere) BoundingSphere {
	if a.Radius <= 0 {
		return b
	}
	if b.Radius <= 0 {
		return a
	}
	d := b.Center.Sub(a.Center)
	dist := d.Len()
	if dist+b.Radius <= a.Radius {
		return a // b fully inside a
	}
	if dist+a.Radius <= b.Radius {
		return b // a fully inside b
	}
	newRadius := (dist + a.Radius + b.Radius) * 0.5
	var center mgl32.Vec3
	if dist > 1e-12 {
		center = a.Center.Add(d.Mul((newRadius - a.Radius) / dist))
	} else {
		center = a.Center
	}
	return BoundingSphere{Center: center, Radius: newRadius}
}

// SpheresFromList left-folds MergeSpheres over spheres. Not globally
// optimal but stable and monotone (spec.md §4.B).
func SpheresFromList(spheres []BoundingSphere) BoundingSphere {
	if len(spheres) == 0 {
		return BoundingSphere{}
	}
	result := spheres[0]
	for _, s := range spheres[1:] {
		result = MergeSpheres(result, s)
	}
	return result
}

// BoundingSphereFromPoints computes a simple (non-optimal) bounding
// sphere: center is the centroid, radius is the maximum distance from
// the centroid to any point. Not called by the build itself or by
// pkg/meshgen (see original_source's BoundingSphere::fromPoints).
func BoundingSphereFromPoints(points []mgl32.Vec3) BoundingSphere {
	if len(points) == 0 {
		return BoundingSphere{}
	}
	var c mgl32.Vec3
	for _, p := range points {
		c = c.Add(p)
	}
	c = c.Mul(1.0 / float32(len(points)))
	var r float32
	for _, p := range points {
		if d := p.Sub(c).Len(); d > r {
			r = d
		}
	}
	return BoundingSphere{Center: c, Radius: r}
}
