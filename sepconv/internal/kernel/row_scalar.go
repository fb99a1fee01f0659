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

package kernel

import (
	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// RowGeneralScalar is the exact-path row kernel's normative reference
// implementation. The vectorised variants accumulate with fused
// multiply-add and the symmetric variants add mirrored pairs before
// weighting, so their results can differ from it in the last bits of
// rounding. Works for any channel
// count; paddedRow must already carry halfK*channels of padding on each
// side (see internal/arena.PadRow).
//
// Grounded on awxkee/libblur's filter_1d_rgb_approx.rs row loop shape,
// generalised from its hand-unrolled per-channel taps to a channel loop
// since Go generics do not need per-channel-count specialisation to stay
// fast at this (non-vectorised) tier.
func RowGeneralScalar[T numeric.Pixel, W numeric.Weight](paddedRow, dstRow []T, width, channels int, points []scan.Point[W]) {
	half := len(points) / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var sum W
			for _, p := range points {
				srcX := x + half + p.Offset
				sum += W(paddedRow[srcX*channels+c]) * p.Weight
			}
			dstRow[x*channels+c] = toPixel[T](sum)
		}
	}
}

// RowSymmetricScalar exploits a palindromic kernel: each mirrored tap
// pair is added once before the single multiply by its shared weight,
// halving the multiply count. Only the center tap (present when the
// kernel length is odd, which scan.Scan guarantees) is applied alone.
func RowSymmetricScalar[T numeric.Pixel, W numeric.Weight](paddedRow, dstRow []T, width, channels int, points []scan.Point[W]) {
	k := len(points)
	half := k / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var sum W
			for i := 0; i < half; i++ {
				left := points[i]
				right := points[k-1-i]
				srcL := x + half + left.Offset
				srcR := x + half + right.Offset
				pair := W(paddedRow[srcL*channels+c]) + W(paddedRow[srcR*channels+c])
				sum += pair * left.Weight
			}
			center := points[half]
			sum += W(paddedRow[(x+half+center.Offset)*channels+c]) * center.Weight
			dstRow[x*channels+c] = toPixel[T](sum)
		}
	}
}
