// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kadane

import (
	"fmt"
	"runtime"
	"time"
)

// A Tracker counts the primitive operations of one algorithm run and
// measures its wall time and heap growth.
type Tracker struct {
	Comparisons   int64
	ArrayAccesses int64
	Assignments   int64

	Elapsed     time.Duration
	MemoryBytes int64

	start    time.Time
	heapBase uint64
}

// Start records the starting time and heap size.
func (t *Tracker) Start() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	t.heapBase = ms.HeapAlloc
	t.start = time.Now()
}

// Stop records the elapsed time and heap growth since Start.
func (t *Tracker) Stop() {
	t.Elapsed = time.Since(t.start)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	t.MemoryBytes = int64(ms.HeapAlloc) - int64(t.heapBase)
}

// Millis returns the elapsed time in milliseconds.
func (t *Tracker) Millis() float64 {
	return float64(t.Elapsed.Nanoseconds()) / 1e6
}

func (t *Tracker) String() string {
	return fmt.Sprintf("Comparisons: %d, Array Accesses: %d, Time: %.3f ms, Memory: %d bytes",
		t.Comparisons, t.ArrayAccesses, t.Millis(), t.MemoryBytes)
}
