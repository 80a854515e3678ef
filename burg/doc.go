// Package burg implements the Burg method for autoregressive (AR)
// model estimation on a stationary, scalar, real-valued time series.
//
// Burg's lattice recursion jointly minimizes the forward and backward
// one-step prediction squared errors at every order, which avoids the
// windowing artifacts of a plain Yule-Walker fit. At each step k it:
//
//  1. Forms the reflection coefficient μ from the current forward and
//     backward residual buffers and the running denominator D.
//  2. Updates the AR(k-1) coefficients to AR(k) with a single
//     symmetric, in-place sweep (A[n] and A[k-n] are updated together
//     from the old values, so only the first half of the index range
//     needs to be visited).
//  3. Updates the innovation variance σ²ₑ and the prediction gain.
//  4. Derives the k-th lag autocorrelation from the new coefficients
//     via the Yule-Walker relation, walking the previously-derived
//     autocorrelations in reverse.
//  5. If the order is not final, folds μ into the forward and backward
//     residual buffers for the next step and updates D in O(1) instead
//     of recomputing it from scratch.
//
// Calculate can be asked (via WithHierarchy) to emit every intermediate
// AR(1)..AR(p) model instead of only the final AR(p) model, which is
// useful for model-order selection criteria built on top of this
// package (such criteria are themselves out of scope here; see
// spec.md §1).
package burg
