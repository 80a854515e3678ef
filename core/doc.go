// Package core provides the small numeric toolkit shared by burg and
// toeplitz: tolerance comparison, working-buffer reuse,
// and the generic numeric-field capability that lets pairwise
// summation run over both float64 and exact rational arithmetic.
package core
