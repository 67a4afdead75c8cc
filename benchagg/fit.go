// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
)

// ErrDegenerateFit is returned when the points do not determine a
// line: fewer than two points, or all points at the same x.
var ErrDegenerateFit = errors.New("need at least two distinct x values to fit a line")

// A LinearFit is the least-squares line y = Slope*x + Intercept.
type LinearFit struct {
	Slope     float64
	Intercept float64

	// R2 is the coefficient of determination of the fit.
	R2 float64
}

// At evaluates the fitted line at x.
func (f LinearFit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

func (f LinearFit) String() string {
	return fmt.Sprintf("y = %.6g·x + %.6g (R²=%.4f)", f.Slope, f.Intercept, f.R2)
}

// FitLinear fits a first-degree polynomial to the points (xs[i],
// ys[i]) by ordinary least squares.
func FitLinear(xs, ys []float64) (LinearFit, error) {
	if len(xs) != len(ys) {
		return LinearFit{}, fmt.Errorf("fit: %d x values but %d y values", len(xs), len(ys))
	}
	distinct := false
	for _, x := range xs {
		if x != xs[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return LinearFit{}, ErrDegenerateFit
	}

	weights := make([]float64, len(xs))
	for i := range weights {
		weights[i] = 1
	}
	res := fit.PolynomialRegression(xs, ys, weights, 1)
	f := LinearFit{Intercept: res.Coefficients[0], Slope: res.Coefficients[1]}

	// Coefficient of determination.
	mean := stats.Mean(ys)
	var ssRes, ssTot float64
	for i, x := range xs {
		r := ys[i] - f.At(x)
		ssRes += r * r
		d := ys[i] - mean
		ssTot += d * d
	}
	switch {
	case ssTot > 0:
		f.R2 = 1 - ssRes/ssTot
	case ssRes <= 1e-12*math.Max(1, math.Abs(mean)):
		f.R2 = 1
	}
	return f, nil
}

// FitSizes fits mean running time against input size.
func FitSizes(sums []SizeSummary) (LinearFit, error) {
	xs := make([]float64, len(sums))
	ys := make([]float64, len(sums))
	for i, s := range sums {
		xs[i] = float64(s.InputSize)
		ys[i] = s.TimeMs
	}
	return FitLinear(xs, ys)
}
