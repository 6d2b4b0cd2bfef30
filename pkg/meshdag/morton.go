package meshdag

import "github.com/go-gl/mathgl/mgl32"

// mortonEncode interleaves the bits of a normalized 3D position (each
// coordinate expected in [0, 1]) into a 30-bit spatial key: quantize
// each coordinate to 10 bits via clamp-and-multiply by 1023, then spread
// the bits so that sorting by the result yields a space-filling-curve
// order (spec.md §4.A).
func mortonEncode(normalizedPos mgl32.Vec3) uint32 {
	x := quantize10(normalizedPos.X())
	y := quantize10(normalizedPos.Y())
	z := quantize10(normalizedPos.Z())
	return expandBits(x) | (expandBits(y) << 1) | (expandBits(z) << 2)
}

func quantize10(v float32) uint32 {
	if v < 0 {
		v = 0
	}
	if v > 1023 {
		v = 1023
	}
	scaled := v * 1023.0
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 1023 {
		scaled = 1023
	}
	return uint32(scaled)
}

// expandBits spreads the low 10 bits of v so there are two zero bits
// between each original bit, making room to interleave with two other
// coordinates.
func expandBits(v uint32) uint32 {
	v = (v | (v << 16)) & 0x030000FF
	v = (v | (v << 8)) & 0x0300F00F
	v = (v | (v << 4)) & 0x030C30C3
	v = (v | (v << 2)) & 0x09249249
	return v
}

// normalizeToBounds maps p into [0,1]^3 relative to bounds, replacing any
// zero-extent axis with a size of 1 to avoid division by zero.
func normalizeToBounds(p mgl32.Vec3, bounds AABB) mgl32.Vec3 {
	size := bounds.Size()
	sx, sy, sz := size.X(), size.Y(), size.Z()
	if sx < 1e-8 {
		sx = 1
	}
	if sy < 1e-8 {
		sy = 1
	}
	if sz < 1e-8 {
		sz = 1
	}
	rel := p.Sub(bounds.Min)
	return mgl32.Vec3{rel.X() / sx, rel.Y() / sy, rel.Z() / sz}
}
