// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kadane

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

var variants = []struct {
	name string
	f    func([]int) (Result, error)
}{
	{"MaxSubarray", MaxSubarray},
	{"MaxSubarrayCached", MaxSubarrayCached},
	{"MaxSubarrayEarlyExit", MaxSubarrayEarlyExit},
}

func TestMaxSubarray(t *testing.T) {
	for _, test := range []struct {
		in         []int
		sum        int64
		start, end int
	}{
		{[]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, 6, 3, 6},
		{[]int{5}, 5, 0, 0},
		{[]int{1, 2, 3, 4, 5}, 15, 0, 4},
		{[]int{-5, -2, -8, -1, -4}, -1, 3, 3},
		{[]int{10, -5, -2, -1}, 10, 0, 0},
		{[]int{-5, -2, -1, 10}, 10, 3, 3},
		{[]int{5, -3, 5, -3, 5}, 9, 0, 4},
		{[]int{math.MaxInt32 / 2, math.MaxInt32 / 2}, math.MaxInt32 - 1, 0, 1},
	} {
		for _, v := range variants {
			res, err := v.f(test.in)
			if err != nil {
				t.Fatalf("%s(%v): %v", v.name, test.in, err)
			}
			if res.MaxSum != test.sum || res.Start != test.start || res.End != test.end {
				t.Errorf("%s(%v) = %v, want MaxSum: %d, Range: [%d, %d]", v.name, test.in, res, test.sum, test.start, test.end)
			}
		}
	}
}

func TestZeros(t *testing.T) {
	for _, v := range variants {
		res, err := v.f([]int{-2, 0, -1, 0, -3})
		if err != nil {
			t.Fatal(err)
		}
		if res.MaxSum != 0 {
			t.Errorf("%s: MaxSum = %d, want 0", v.name, res.MaxSum)
		}
	}
}

func TestEmpty(t *testing.T) {
	for _, v := range variants {
		if _, err := v.f(nil); !errors.Is(err, ErrEmpty) {
			t.Errorf("%s(nil): want ErrEmpty, got %v", v.name, err)
		}
	}
}

func TestCounts(t *testing.T) {
	a := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}
	n := int64(len(a))
	for _, test := range []struct {
		f                  func([]int) (Result, error)
		comparisons, reads int64
	}{
		{MaxSubarray, 2*n - 1, n + 1},
		{MaxSubarrayCached, 2*n - 1, n},
		// The all-negative check stops at index 1.
		{MaxSubarrayEarlyExit, 2 + 2*(n-1), 2 + (n - 1)},
	} {
		res, err := test.f(a)
		if err != nil {
			t.Fatal(err)
		}
		if res.Metrics.Comparisons != test.comparisons || res.Metrics.ArrayAccesses != test.reads {
			t.Errorf("got %d comparisons and %d reads, want %d and %d",
				res.Metrics.Comparisons, res.Metrics.ArrayAccesses, test.comparisons, test.reads)
		}
	}

	// An all-negative input never reaches the main scan.
	res, err := MaxSubarrayEarlyExit([]int{-5, -2, -8, -1, -4})
	if err != nil {
		t.Fatal(err)
	}
	if res.Metrics.Comparisons != 5 || res.Metrics.ArrayAccesses != 5 {
		t.Errorf("all negative: got %d comparisons and %d reads, want 5 and 5",
			res.Metrics.Comparisons, res.Metrics.ArrayAccesses)
	}
}

func TestVariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		a := make([]int, 1+rng.Intn(50))
		for i := range a {
			a[i] = rng.Intn(201) - 100
		}
		want := bruteForce(a)
		for _, v := range variants {
			res, err := v.f(a)
			if err != nil {
				t.Fatal(err)
			}
			if res.MaxSum != want {
				t.Fatalf("%s(%v).MaxSum = %d, want %d", v.name, a, res.MaxSum, want)
			}
			var sum int64
			for _, x := range a[res.Start : res.End+1] {
				sum += int64(x)
			}
			if sum != res.MaxSum {
				t.Fatalf("%s(%v): range [%d, %d] sums to %d, not %d", v.name, a, res.Start, res.End, sum, res.MaxSum)
			}
		}
	}
}

func bruteForce(a []int) int64 {
	best := int64(a[0])
	for i := range a {
		var sum int64
		for j := i; j < len(a); j++ {
			sum += int64(a[j])
			if sum > best {
				best = sum
			}
		}
	}
	return best
}
