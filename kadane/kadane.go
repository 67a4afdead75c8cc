// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kadane finds maximum-sum contiguous subarrays in linear
// time while counting the comparisons and array reads it performs.
//
// The counts are what the benchmark results files record, so each
// variant counts exactly the operations it performs:
//
//	MaxSubarray           2n-1 comparisons, n+1 array reads
//	MaxSubarrayCached     2n-1 comparisons, n array reads
//	MaxSubarrayEarlyExit  like MaxSubarrayCached plus a scan that stops
//	                      at the first non-negative element
package kadane

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned for an empty input.
var ErrEmpty = errors.New("kadane: empty input")

// A Result is the best subarray a[Start:End+1] and the cost of
// finding it.
type Result struct {
	MaxSum     int64
	Start, End int
	Metrics    Tracker
}

func (r Result) String() string {
	return fmt.Sprintf("MaxSum: %d, Range: [%d, %d]", r.MaxSum, r.Start, r.End)
}

// MaxSubarray is the textbook form: at each element it decides
// whether extending the current run beats starting a new one.
func MaxSubarray(a []int) (Result, error) {
	if len(a) == 0 {
		return Result{}, ErrEmpty
	}
	var res Result
	t := &res.Metrics
	t.Start()

	maxSum := int64(a[0])
	cur := int64(a[0])
	start, end, tmpStart := 0, 0, 0
	t.Comparisons++
	t.ArrayAccesses += 2

	for i := 1; i < len(a); i++ {
		t.ArrayAccesses++
		t.Comparisons++
		if x := int64(a[i]); x > cur+x {
			cur = x
			tmpStart = i
		} else {
			cur += x
		}
		t.Assignments++

		t.Comparisons++
		if cur > maxSum {
			maxSum = cur
			start, end = tmpStart, i
			t.Assignments++
		}
	}

	t.Stop()
	res.MaxSum, res.Start, res.End = maxSum, start, end
	return res, nil
}

// MaxSubarrayCached reads each element once and restarts the current
// run whenever its sum has gone negative.
func MaxSubarrayCached(a []int) (Result, error) {
	if len(a) == 0 {
		return Result{}, ErrEmpty
	}
	var res Result
	t := &res.Metrics
	t.Start()
	t.Comparisons++
	t.ArrayAccesses++
	res.MaxSum, res.Start, res.End = scan(a, t)
	t.Stop()
	return res, nil
}

// MaxSubarrayEarlyExit first checks whether every element is
// negative, in which case the answer is the largest element, and
// otherwise falls back to MaxSubarrayCached's scan.
func MaxSubarrayEarlyExit(a []int) (Result, error) {
	if len(a) == 0 {
		return Result{}, ErrEmpty
	}
	var res Result
	t := &res.Metrics
	t.Start()

	allNegative := true
	maxElem, maxIndex := a[0], 0
	for i, x := range a {
		t.ArrayAccesses++
		t.Comparisons++
		if x >= 0 {
			allNegative = false
			break
		}
		if x > maxElem {
			maxElem, maxIndex = x, i
		}
	}
	if allNegative {
		t.Stop()
		res.MaxSum, res.Start, res.End = int64(maxElem), maxIndex, maxIndex
		return res, nil
	}

	res.MaxSum, res.Start, res.End = scan(a, t)
	t.Stop()
	return res, nil
}

// scan is the single-read form of the algorithm shared by
// MaxSubarrayCached and MaxSubarrayEarlyExit.
func scan(a []int, t *Tracker) (maxSum int64, start, end int) {
	maxSum = int64(a[0])
	cur := maxSum
	tmpStart := 0
	for i := 1; i < len(a); i++ {
		x := int64(a[i])
		t.ArrayAccesses++

		t.Comparisons++
		if cur < 0 {
			cur = x
			tmpStart = i
		} else {
			cur += x
		}
		t.Assignments++

		t.Comparisons++
		if cur > maxSum {
			maxSum = cur
			start, end = tmpStart, i
			t.Assignments++
		}
	}
	return maxSum, start, end
}
