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

// Q0.7 specialisation: small (<=9 tap), all-nonnegative, symmetric u8
// kernels renormalised so their weights sum to 128 (fixedpoint.
// RenormalizeQ7). Because every weight and every pixel is nonnegative and
// the weight sum is fixed at 128, the running sum never needs more than
// uint16 headroom (255*128 = 32640), so this path skips the int64
// accumulator the general Q15 path needs. Grounded on awxkee/libblur's
// row_symm_approx_binter_uq0_7.rs.
package kernel

import (
	"github.com/ajroetker/go-sepconv/sepconv/internal/fixedpoint"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// RowSymmetricQ7 computes one padded row's Q0.7 approximation. Callers
// must only use this for kernels that are symmetric and entirely
// nonnegative once renormalised. DispatchQ7 does not check this; the
// sepconv caller checks the kernel with q7Eligible before selecting this
// function.
func RowSymmetricQ7(paddedRow, dstRow []uint8, width, channels int, points []scan.Point[int32]) {
	k := len(points)
	half := k / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var acc uint16
			for i := 0; i < half; i++ {
				left, right := points[i], points[k-1-i]
				srcL := x + half + left.Offset
				srcR := x + half + right.Offset
				pair := uint16(paddedRow[srcL*channels+c]) + uint16(paddedRow[srcR*channels+c])
				acc += pair * uint16(left.Weight)
			}
			center := points[half]
			acc += uint16(paddedRow[(x+half+center.Offset)*channels+c]) * uint16(center.Weight)
			dstRow[x*channels+c] = fixedpoint.Saturate[uint8](fixedpoint.RoundShift(int64(acc), fixedpoint.Q7))
		}
	}
}

// ColSymmetricQ7 is RowSymmetricQ7's column-pass counterpart.
func ColSymmetricQ7(rows [][]uint8, dstRow []uint8, width, channels int, points []scan.Point[int32]) {
	k := len(points)
	half := k / 2
	n := width * channels
	for i := 0; i < n; i++ {
		var acc uint16
		for j := 0; j < half; j++ {
			pair := uint16(rows[j][i]) + uint16(rows[k-1-j][i])
			acc += pair * uint16(points[j].Weight)
		}
		acc += uint16(rows[half][i]) * uint16(points[half].Weight)
		dstRow[i] = fixedpoint.Saturate[uint8](fixedpoint.RoundShift(int64(acc), fixedpoint.Q7))
	}
}
