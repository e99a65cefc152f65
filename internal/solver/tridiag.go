package solver

// solveTridiagonal solves a tridiagonal system with the Thomas algorithm
// (forward elimination, then back substitution). a is the sub-diagonal,
// b the main diagonal, c the super-diagonal, d the right-hand side;
// cp and dp are caller-provided scratch of the same length. The solution
// is written into x. Assumes the system is diagonally dominant, which
// the backward Euler discretization guarantees.
func solveTridiagonal(a, b, c, d, cp, dp, x []float64) {
	n := len(b)

	cp[0] = c[0] / b[0]
	dp[0] = d[0] / b[0]
	for i := 1; i < n; i++ {
		denom := b[i] - a[i]*cp[i-1]
		cp[i] = c[i] / denom
		dp[i] = (d[i] - a[i]*dp[i-1]) / denom
	}

	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
}
