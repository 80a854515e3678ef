// Package variance provides closed-form empirical-variance estimates
// used as building blocks by AR model-order selection criteria
// (selection criteria themselves, e.g. AIC/BIC/GIC, are out of scope;
// see spec.md §1).
//
// Four estimation methods (YuleWalker, Burg, LSFB, LSF) each combine
// with two mean-handling policies (MeanSubtracted, MeanRetained) to
// give a per-(N, i) variance value:
//
//	Method      i=0, subtracted  i=0, retained  i>=1
//	YuleWalker  1/N              0              (N-i)/(N*(N+2))
//	Burg        1/N              0              1/(N+1-i)
//	LSFB        1/N              0              1/(N+3/2-3i/2)
//	LSF         1/N              0              1/(N+2-2i)
package variance
