// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// zCrit returns the two-sided standard normal critical value at
// confidence level 1-alpha.
func zCrit(alpha float64) float64 {
	return distuv.UnitNormal.Quantile(1 - alpha/2)
}

func checkProportionArgs(successes, n int, alpha float64) error {
	if n <= 0 {
		return fmt.Errorf("%w: sample size %d must be positive", ErrInvalidInput, n)
	}
	if successes < 0 || successes > n {
		return fmt.Errorf("%w: successes %d outside [0, %d]", ErrInvalidInput, successes, n)
	}
	if !(0 < alpha && alpha < 1) {
		return fmt.Errorf("%w: alpha %v outside (0, 1)", ErrInvalidInput, alpha)
	}
	return nil
}

// ProportionCI returns the Wald confidence interval for the
// proportion successes/n at confidence level 1-alpha.
//
// The Wald interval applies no continuity correction and does not
// clamp its bounds, so for proportions near 0 or 1 a bound can fall
// outside [0, 1]. Callers that need bounds within [0, 1] should use
// ProportionCIWilson.
func ProportionCI(successes, n int, alpha float64) (Interval, error) {
	if err := checkProportionArgs(successes, n, alpha); err != nil {
		return Interval{}, err
	}

	p := float64(successes) / float64(n)
	se := math.Sqrt(p * (1 - p) / float64(n))
	z := zCrit(alpha)
	return Interval{Center: p, Lo: p - z*se, Hi: p + z*se}, nil
}

// ProportionDiffCI returns the Wald confidence interval for the
// difference pB-pA of two independent proportions observed on
// samples of size nA and nB.
//
// Unlike MeanCI and ProportionCI, this takes the confidence level
// itself (for example 0.95), not a significance level. As with
// ProportionCI the bounds are not clamped, so they can fall outside
// [-1, 1].
func ProportionDiffCI(pA, pB float64, nA, nB int, confidence float64) (Interval, error) {
	if nA <= 0 || nB <= 0 {
		return Interval{}, fmt.Errorf("%w: sample sizes %d, %d must be positive", ErrInvalidInput, nA, nB)
	}
	if pA < 0 || pA > 1 || pB < 0 || pB > 1 {
		return Interval{}, fmt.Errorf("%w: proportions %v, %v outside [0, 1]", ErrInvalidInput, pA, pB)
	}
	if !(0 < confidence && confidence < 1) {
		return Interval{}, fmt.Errorf("%w: confidence %v outside (0, 1)", ErrInvalidInput, confidence)
	}

	diff := pB - pA
	se := math.Sqrt(pA*(1-pA)/float64(nA) + pB*(1-pB)/float64(nB))
	z := zCrit(1 - confidence)
	return Interval{Center: diff, Lo: diff - z*se, Hi: diff + z*se}, nil
}

// ProportionCIWilson returns the Wilson score interval for the
// proportion successes/n at confidence level 1-alpha. Center is the
// plain sample proportion; unlike the Wald interval, the bounds
// always lie within [0, 1], which makes Wilson the better choice for
// proportions near 0 or 1 or for small n.
func ProportionCIWilson(successes, n int, alpha float64) (Interval, error) {
	if err := checkProportionArgs(successes, n, alpha); err != nil {
		return Interval{}, err
	}

	p := float64(successes) / float64(n)
	nf := float64(n)
	z := zCrit(alpha)
	center := p + z*z/(2*nf)
	rad := z * math.Sqrt(p*(1-p)/nf+z*z/(4*nf*nf))
	den := 1 + z*z/nf
	return Interval{Center: p, Lo: (center - rad) / den, Hi: (center + rad) / den}, nil
}
