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

// This file holds the Q15 fixed-point approximated row/column kernels for
// the uint8/uint16 pixel types (spec.md §4.4). Unlike the exact path,
// these stay scalar: hwy's Vec[T] model keeps lanes homogeneous in both
// type and signedness, and the Q15 accumulator needs int64 headroom to
// avoid overflow across a wide kernel while the pixels themselves are
// unsigned 8/16-bit — expressing that widen-then-narrow pattern as a
// portable hwy op would need a second, signed accumulator lane type per
// source lane type that the library does not expose. Per spec.md §4.3,
// the dispatcher simply publishes this scalar implementation as both the
// normative reference and the only variant for this (pixel, accumulator)
// tuple. Grounded on awxkee/libblur's filter_1d_approx.rs combine step
// (round-half-up bias+shift, saturate after the shift).
package kernel

import (
	"github.com/ajroetker/go-sepconv/sepconv/internal/fixedpoint"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// ApproxPixel is the set of pixel types the Q15 approximated path stores.
type ApproxPixel interface {
	~uint8 | ~uint16
}

// RowGeneralApprox computes one padded row's Q15 approximation into
// dstRow. points carry weights already scaled by fixedpoint.ScaleKernel.
func RowGeneralApprox[T ApproxPixel](paddedRow, dstRow []T, width, channels int, points []scan.Point[int32], q uint) {
	half := len(points) / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var acc int64
			for _, p := range points {
				srcX := x + half + p.Offset
				acc += int64(paddedRow[srcX*channels+c]) * int64(p.Weight)
			}
			dstRow[x*channels+c] = fixedpoint.Saturate[T](fixedpoint.RoundShift(acc, q))
		}
	}
}

// RowSymmetricApprox is RowGeneralApprox's palindromic-kernel counterpart.
func RowSymmetricApprox[T ApproxPixel](paddedRow, dstRow []T, width, channels int, points []scan.Point[int32], q uint) {
	k := len(points)
	half := k / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var acc int64
			for i := 0; i < half; i++ {
				left, right := points[i], points[k-1-i]
				srcL := x + half + left.Offset
				srcR := x + half + right.Offset
				pair := int64(paddedRow[srcL*channels+c]) + int64(paddedRow[srcR*channels+c])
				acc += pair * int64(left.Weight)
			}
			center := points[half]
			acc += int64(paddedRow[(x+half+center.Offset)*channels+c]) * int64(center.Weight)
			dstRow[x*channels+c] = fixedpoint.Saturate[T](fixedpoint.RoundShift(acc, q))
		}
	}
}

// ColGeneralApprox is the Q15 column-pass counterpart of RowGeneralApprox.
func ColGeneralApprox[T ApproxPixel](rows [][]T, dstRow []T, width, channels int, points []scan.Point[int32], q uint) {
	n := width * channels
	for i := 0; i < n; i++ {
		var acc int64
		for k, p := range points {
			acc += int64(rows[k][i]) * int64(p.Weight)
		}
		dstRow[i] = fixedpoint.Saturate[T](fixedpoint.RoundShift(acc, q))
	}
}

// ColSymmetricApprox is ColGeneralApprox's palindromic-kernel counterpart.
func ColSymmetricApprox[T ApproxPixel](rows [][]T, dstRow []T, width, channels int, points []scan.Point[int32], q uint) {
	k := len(points)
	half := k / 2
	n := width * channels
	for i := 0; i < n; i++ {
		var acc int64
		for j := 0; j < half; j++ {
			pair := int64(rows[j][i]) + int64(rows[k-1-j][i])
			acc += pair * int64(points[j].Weight)
		}
		acc += int64(rows[half][i]) * int64(points[half].Weight)
		dstRow[i] = fixedpoint.Saturate[T](fixedpoint.RoundShift(acc, q))
	}
}
