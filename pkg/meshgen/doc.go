// Package meshgen produces meshdag.RawMesh test fixtures: closed
// surfaces generated either by marching-cubes over a signed distance
// field (sphere.go) or by subdividing an icosahedron (icosphere.go).
// Neither generator is part of the build pipeline itself; both exist
// to feed property-based tests with realistic, watertight inputs.
package meshgen
