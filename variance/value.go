package variance

// Value returns the closed-form empirical-variance approximation for
// order i out of N samples, under the given method and mean-handling
// policy.
//
// At i == 0 every method agrees: 1/N with the mean subtracted, 0 with
// the mean retained (there is no prediction error left to estimate
// once the sample itself supplies the "model"). For i >= 1 the four
// methods diverge according to how each derives its normal equations;
// LSFB and LSF are evaluated from their unreduced denominators rather
// than a pre-factored form, since pre-factoring loses precision for i
// close to N.
func Value(method Method, mean MeanHandling, n, i int) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidSampleCount
	}
	if i < 0 || i > n {
		return 0, ErrInvalidOrder
	}

	if i == 0 {
		if mean == MeanRetained {
			return 0, nil
		}
		return 1 / float64(n), nil
	}

	nf, ifl := float64(n), float64(i)

	switch method {
	case YuleWalker:
		return (nf - ifl) / (nf * (nf + 2)), nil
	case Burg:
		return 1 / (nf + 1 - ifl), nil
	case LSFB:
		return 1 / (nf + 1.5 - 1.5*ifl), nil
	case LSF:
		return 1 / (nf + 2 - 2*ifl), nil
	default:
		return 0, ErrUnknownMethod
	}
}
