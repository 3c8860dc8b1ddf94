// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "errors"

// ErrInvalidInput reports arguments outside an estimator's domain:
// a sample too small, counts out of range, probabilities outside
// [0, 1], a non-positive sample size, or a confidence parameter
// outside (0, 1).
var ErrInvalidInput = errors.New("invalid input")

// An Interval is a two-sided confidence interval around a point
// estimate.
type Interval struct {
	// Center is the point estimate: the sample mean for MeanCI and
	// the sample proportion (or difference of proportions) for the
	// proportion estimators.
	Center float64

	// Lo and Hi are the lower and upper confidence bounds.
	// Lo <= Center <= Hi.
	Lo, Hi float64
}
