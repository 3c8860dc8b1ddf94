// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MeanCI returns the two-sided Student's-t confidence interval for
// the mean of data at confidence level 1-alpha.
//
// The sample standard deviation uses Bessel's correction, so data
// must contain at least two values. If every value is identical the
// interval collapses to the sample mean.
func MeanCI(data []float64, alpha float64) (Interval, error) {
	if len(data) < 2 {
		return Interval{}, fmt.Errorf("%w: need at least 2 values, have %d", ErrInvalidInput, len(data))
	}
	if !(0 < alpha && alpha < 1) {
		return Interval{}, fmt.Errorf("%w: alpha %v outside (0, 1)", ErrInvalidInput, alpha)
	}

	n := float64(len(data))
	mean := stat.Mean(data, nil)
	se := stat.StdDev(data, nil) / math.Sqrt(n)

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}
	q := tdist.Quantile(1 - alpha/2)
	return Interval{Center: mean, Lo: mean - q*se, Hi: mean + q*se}, nil
}
