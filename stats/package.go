// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats provides closed-form confidence interval estimators for
// sample means and proportions.
package stats // import "github.com/aclements/go-confint/stats"
