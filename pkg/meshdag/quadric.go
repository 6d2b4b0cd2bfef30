package meshdag

import "github.com/go-gl/mathgl/mgl64"

// quadric is the Garland-Heckbert quadric error metric: a symmetric 4x4
// matrix stored as its 10 unique upper-triangle coefficients, in
// double precision (spec.md §4.G).
//
//	[ a b c d ]
//	[ b e f g ]
//	[ c f h i ]
//	[ d g i j ]
type quadric struct {
	a, b, c, d float64
	e, f, g    float64
	h, i       float64
	j          float64
}

// quadricFromPlane builds the fundamental quadric for the plane with
// unit normal n and offset d (ax+by+cz+d=0), scaled by weight (the
// generating triangle's area).
func quadricFromPlane(n mgl64.Vec3, d, weight float64) quadric {
	a, b, c := n.X(), n.Y(), n.Z()
	q := quadric{
		a: a * a, b: a * b, c: a * c, d: a * d,
		e: b * b, f: b * c, g: b * d,
		h: c * c, i: c * d,
		j: d * d,
	}
	return q.scale(weight)
}

func (q quadric) scale(s float64) quadric {
	return quadric{
		a: q.a * s, b: q.b * s, c: q.c * s, d: q.d * s,
		e: q.e * s, f: q.f * s, g: q.g * s,
		h: q.h * s, i: q.i * s,
		j: q.j * s,
	}
}

func (q quadric) add(o quadric) quadric {
	return quadric{
		a: q.a + o.a, b: q.b + o.b, c: q.c + o.c, d: q.d + o.d,
		e: q.e + o.e, f: q.f + o.f, g: q.g + o.g,
		h: q.h + o.h, i: q.i + o.i,
		j: q.j + o.j,
	}
}

// evaluate returns v^T Q v for the homogeneous point [v, 1].
func (q quadric) evaluate(v mgl64.Vec3) float64 {
	x, y, z := v.X(), v.Y(), v.Z()
	return q.a*x*x + 2*q.b*x*y + 2*q.c*x*z + 2*q.d*x +
		q.e*y*y + 2*q.f*y*z + 2*q.g*y +
		q.h*z*z + 2*q.i*z +
		q.j
}

// solveOptimal solves the 3x3 linear system for the point minimizing
// v^T Q v, returning false if the system is singular (|det| < 1e-12).
func (q quadric) solveOptimal() (mgl64.Vec3, bool) {
	a00, a01, a02, a03 := q.a, q.b, q.c, q.d
	a11, a12, a13 := q.e, q.f, q.g
	a22, a23 := q.h, q.i

	det := a00*(a11*a22-a12*a12) -
		a01*(a01*a22-a12*a02) +
		a02*(a01*a12-a11*a02)

	if abs64(det) < 1e-12 {
		return mgl64.Vec3{}, false
	}

	invDet := 1.0 / det
	x := ((-a03)*(a11*a22-a12*a12) - a01*((-a13)*a22-a12*(-a23)) + a02*((-a13)*a12-a11*(-a23))) * invDet
	y := (a00*((-a13)*a22-a12*(-a23)) - (-a03)*(a01*a22-a12*a02) + a02*(a01*(-a23)-(-a13)*a02)) * invDet
	z := (a00*(a11*(-a23)-(-a13)*a12) - a01*(a01*(-a23)-(-a13)*a02) + (-a03)*(a01*a12-a11*a02)) * invDet

	return mgl64.Vec3{x, y, z}, true
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
