// Package solver implements implicit finite-difference solvers for the
// heat equation
//
//	∂u/∂t = α ∇²u + F/(ρc)
//
// on a 1D bar [0, L] and a 2D square plate [0, L]², where α = λ/(ρc) is
// the thermal diffusivity of the material and F a static volumetric heat
// source.
//
// Both solvers use a backward Euler time discretization, which is
// unconditionally stable and therefore tolerates the fixed time step
// dt = tmax/1000 regardless of grid resolution:
//
//   - [Solver1D] solves the resulting tridiagonal system directly with
//     the Thomas algorithm (O(n) per step, exact up to rounding).
//   - [Solver2D] solves the five-point-stencil system iteratively with
//     Gauss–Seidel sweeps (at most 100 per step, early exit at 1e-6).
//
// Boundary conditions are Neumann (zero flux, mirrored neighbor) on the
// left/bottom edges and Dirichlet (pinned to the initial temperature) on
// the right/top edges.
//
// # Thread Safety
//
// Solver instances are NOT thread-safe: each instance is owned and
// stepped by exactly one caller. Comparing materials side by side only
// requires independent instances; no state is shared between them.
package solver
