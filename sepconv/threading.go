// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ThreadingPolicy realises spec.md §5's "caller-controlled thread count
// sizes a worker pool" model on top of hwy/contrib/workerpool.Pool — the
// same persistent-pool abstraction go-highway's contrib packages use for
// parallel matrix/tensor work, repurposed here for row-disjoint image
// tiling.
package sepconv

import (
	"runtime"

	"github.com/ajroetker/go-sepconv/hwy/contrib/workerpool"
)

type threadingKind int

const (
	threadingSingle threadingKind = iota
	threadingFixed
	threadingAdaptive
)

// ThreadingPolicy selects how many workers a Filter* call uses.
type ThreadingPolicy struct {
	kind threadingKind
	n    int
}

// SingleThreaded runs the whole call in-line on the calling goroutine.
func SingleThreaded() ThreadingPolicy { return ThreadingPolicy{kind: threadingSingle} }

// FixedThreads runs with exactly n workers (n < 1 behaves like
// SingleThreaded).
func FixedThreads(n int) ThreadingPolicy { return ThreadingPolicy{kind: threadingFixed, n: n} }

// Adaptive sizes the pool to runtime.GOMAXPROCS(0), capped by the image's
// row count so a pool is never created with more workers than there are
// rows to hand out.
func Adaptive() ThreadingPolicy { return ThreadingPolicy{kind: threadingAdaptive} }

// workers resolves the policy to a worker count for an image of the
// given height.
func (t ThreadingPolicy) workers(height int) int {
	switch t.kind {
	case threadingFixed:
		if t.n < 1 {
			return 1
		}
		if t.n > height {
			return height
		}
		return t.n
	case threadingAdaptive:
		n := runtime.GOMAXPROCS(0)
		if n > height {
			n = height
		}
		if n < 1 {
			n = 1
		}
		return n
	default:
		return 1
	}
}

// pool returns nil (meaning: run in-line) for a single-worker resolution,
// or a freshly created *workerpool.Pool callers must Close after use.
func (t ThreadingPolicy) pool(height int) *workerpool.Pool {
	n := t.workers(height)
	if n <= 1 {
		return nil
	}
	return workerpool.New(n)
}
