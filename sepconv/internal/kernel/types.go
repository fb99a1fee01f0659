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

// Package kernel holds the inner row/column convolution kernels and the
// dispatcher that picks among them.
//
// spec.md §4.3 and §9 describe a capability record keyed by
// (pixel kind, accumulator kind, channel count, symmetric?) that publishes
// function handles for the row and column pass, with a scalar fallback
// published for any tuple lacking a vectorised variant. Go already has
// first-class function values and generics monomorphized per pixel type,
// so there is no need for the C++ original's variant-discriminator-plus-
// switch machinery to pick between pixel types — that axis is resolved at
// compile time by which RowGeneralScalar[T, ...] etc. the caller
// instantiates. What remains a genuine runtime choice is exactly the axis
// spec.md calls out: symmetric vs general, and vectorised vs scalar
// fallback. Dispatch (see dispatch.go) realises that choice as a small
// Capability record of function values, which is the idiomatic Go shape
// for the same contract.
package kernel

import (
	"github.com/ajroetker/go-sepconv/hwy"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// RowFunc computes one padded row into one destination row.
// paddedRow has (width+2*halfK)*channels elements; dstRow has
// width*channels elements.
type RowFunc[T any, W any] func(paddedRow []T, dstRow []T, width, channels int, points []scan.Point[W])

// ColFunc computes one destination row from the vertical stack of source
// rows rows[0..len(points)), each width*channels elements, where rows[i]
// corresponds to points[i]'s offset.
type ColFunc[T any, W any] func(rows [][]T, dstRow []T, width, channels int, points []scan.Point[W])

// RowFunc2 is RowFunc's shape for the complex path (spec.md §4.8): it
// reads pixels of type T but writes samples of a different type S (a
// complex128 or ComplexQ accumulator), so it cannot share RowFunc's
// single-type-parameter-for-both-ends signature.
type RowFunc2[T any, S any, W any] func(paddedRow []T, dstRow []S, width, channels int, points []scan.Point[W])

// ColFunc2 is ColFunc's complex-path counterpart: reads the S-typed
// transient samples and writes T-typed pixels.
type ColFunc2[T any, S any, W any] func(rows [][]S, dstRow []T, width, channels int, points []scan.Point[W])

// Level reports which of a Capability's two function slots actually ran:
// used for diagnostics only, never for behavioural branching by callers.
type Level int

const (
	LevelScalar Level = iota
	LevelVector
)

func (l Level) String() string {
	if l == LevelVector {
		return "vector"
	}
	return "scalar"
}

// Capability is the dispatch record spec.md §4.3 describes: one row
// function and one column function, chosen for a given (pixel kind,
// accumulator kind, channel count, symmetric) tuple, plus the Level that
// was actually selected and the hwy.DispatchLevel the runtime detected,
// so callers can report both (sepconv.HardwareLevel, sepconv.SIMDEnabled).
type Capability[T any, W any] struct {
	Row      RowFunc[T, W]
	Col      ColFunc[T, W]
	RowLevel Level
	ColLevel Level
	HWLevel  hwy.DispatchLevel
}
