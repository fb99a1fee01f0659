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
	"github.com/ajroetker/go-sepconv/hwy"
	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// RowGeneralVec1 is the single-channel exact-path row kernel, vectorised
// over hwy.Vec[T]: one full-width accumulator block per hwy.MaxLanes[T]
// output pixels, one FMA per tap. The tail (width not a multiple of the
// lane count) falls back to RowGeneralScalar, which sums the same
// products in the same left-to-right order but rounds each product
// instead of fusing it, so results can differ from this function's in
// the last bit.
//
// Grounded on go-highway's contrib/image box-blur row loop shape
// (single-channel Load/FMA/Store), widened here from a fixed 3-tap box to
// an arbitrary odd kernel.
func RowGeneralVec1[T numeric.Weight](paddedRow, dstRow []T, width, channels int, points []scan.Point[T]) {
	half := len(points) / 2
	lanes := hwy.MaxLanes[T]()
	x := 0
	for ; x+lanes <= width; x += lanes {
		acc := hwy.Zero[T]()
		for _, p := range points {
			srcX := x + half + p.Offset
			v := hwy.Load(paddedRow[srcX : srcX+lanes])
			acc = hwy.FMA(v, hwy.Set(p.Weight), acc)
		}
		acc.Store(dstRow[x : x+lanes])
	}
	if x < width {
		RowGeneralScalar[T, T](paddedRow[x:], dstRow[x:], width-x, 1, points)
	}
}

// RowSymmetricVec1 is RowGeneralVec1's palindromic-kernel counterpart:
// mirrored taps are summed once per FMA.
func RowSymmetricVec1[T numeric.Weight](paddedRow, dstRow []T, width, channels int, points []scan.Point[T]) {
	k := len(points)
	half := k / 2
	lanes := hwy.MaxLanes[T]()
	x := 0
	for ; x+lanes <= width; x += lanes {
		acc := hwy.Zero[T]()
		for i := 0; i < half; i++ {
			left, right := points[i], points[k-1-i]
			srcL := x + half + left.Offset
			srcR := x + half + right.Offset
			vl := hwy.Load(paddedRow[srcL : srcL+lanes])
			vr := hwy.Load(paddedRow[srcR : srcR+lanes])
			acc = hwy.FMA(hwy.Add(vl, vr), hwy.Set(left.Weight), acc)
		}
		center := points[half]
		srcC := x + half + center.Offset
		vc := hwy.Load(paddedRow[srcC : srcC+lanes])
		acc = hwy.FMA(vc, hwy.Set(center.Weight), acc)
		acc.Store(dstRow[x : x+lanes])
	}
	if x < width {
		RowSymmetricScalar[T, T](paddedRow[x:], dstRow[x:], width-x, 1, points)
	}
}

// RowGeneralVec4 is the 4-channel (RGBA) exact-path row kernel. Each tap
// deinterleaves one padded-row block into four per-channel vectors via
// hwy.LoadInterleaved4 and accumulates each channel plane separately, so
// the FMA count is the same as the single-channel path times four, with
// one deinterleave/reinterleave pair per tap instead of four strided
// loads.
func RowGeneralVec4[T numeric.Weight](paddedRow, dstRow []T, width, channels int, points []scan.Point[T]) {
	half := len(points) / 2
	lanes := hwy.MaxLanes[T]()
	x := 0
	for ; x+lanes <= width; x += lanes {
		a0, a1, a2, a3 := hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T]()
		for _, p := range points {
			srcX := x + half + p.Offset
			off := srcX * 4
			v0, v1, v2, v3 := hwy.LoadInterleaved4(paddedRow[off : off+4*lanes])
			w := hwy.Set(p.Weight)
			a0 = hwy.FMA(v0, w, a0)
			a1 = hwy.FMA(v1, w, a1)
			a2 = hwy.FMA(v2, w, a2)
			a3 = hwy.FMA(v3, w, a3)
		}
		hwy.StoreInterleaved4(a0, a1, a2, a3, dstRow[x*4:x*4+4*lanes])
	}
	if x < width {
		RowGeneralScalar[T, T](paddedRow[x*4:], dstRow[x*4:], width-x, 4, points)
	}
}

// RowSymmetricVec4 is RowGeneralVec4's palindromic-kernel counterpart.
func RowSymmetricVec4[T numeric.Weight](paddedRow, dstRow []T, width, channels int, points []scan.Point[T]) {
	k := len(points)
	half := k / 2
	lanes := hwy.MaxLanes[T]()
	x := 0
	for ; x+lanes <= width; x += lanes {
		a0, a1, a2, a3 := hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T]()
		for i := 0; i < half; i++ {
			left, right := points[i], points[k-1-i]
			offL := (x + half + left.Offset) * 4
			offR := (x + half + right.Offset) * 4
			l0, l1, l2, l3 := hwy.LoadInterleaved4(paddedRow[offL : offL+4*lanes])
			r0, r1, r2, r3 := hwy.LoadInterleaved4(paddedRow[offR : offR+4*lanes])
			w := hwy.Set(left.Weight)
			a0 = hwy.FMA(hwy.Add(l0, r0), w, a0)
			a1 = hwy.FMA(hwy.Add(l1, r1), w, a1)
			a2 = hwy.FMA(hwy.Add(l2, r2), w, a2)
			a3 = hwy.FMA(hwy.Add(l3, r3), w, a3)
		}
		center := points[half]
		offC := (x + half + center.Offset) * 4
		c0, c1, c2, c3 := hwy.LoadInterleaved4(paddedRow[offC : offC+4*lanes])
		w := hwy.Set(center.Weight)
		a0 = hwy.FMA(c0, w, a0)
		a1 = hwy.FMA(c1, w, a1)
		a2 = hwy.FMA(c2, w, a2)
		a3 = hwy.FMA(c3, w, a3)
		hwy.StoreInterleaved4(a0, a1, a2, a3, dstRow[x*4:x*4+4*lanes])
	}
	if x < width {
		RowSymmetricScalar[T, T](paddedRow[x*4:], dstRow[x*4:], width-x, 4, points)
	}
}
