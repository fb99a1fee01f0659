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

// ColGeneralVec1 is the single-channel exact-path column kernel: unlike
// the row kernel, every tap reads from a different whole row rather than
// a shifted window of the same row, so there is no per-tap offset
// arithmetic — the accumulation is just lanes-wide Load/FMA/Store
// against rows[k] for each weighted tap k.
func ColGeneralVec1[T numeric.Weight](rows [][]T, dstRow []T, width, channels int, points []scan.Point[T]) {
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= width; i += lanes {
		acc := hwy.Zero[T]()
		for k, p := range points {
			v := hwy.Load(rows[k][i : i+lanes])
			acc = hwy.FMA(v, hwy.Set(p.Weight), acc)
		}
		acc.Store(dstRow[i : i+lanes])
	}
	if i < width {
		tailRows := make([][]T, len(rows))
		for k := range rows {
			tailRows[k] = rows[k][i:]
		}
		ColGeneralScalar[T, T](tailRows, dstRow[i:], width-i, 1, points)
	}
}

// ColSymmetricVec1 is ColGeneralVec1's palindromic-kernel counterpart.
func ColSymmetricVec1[T numeric.Weight](rows [][]T, dstRow []T, width, channels int, points []scan.Point[T]) {
	k := len(points)
	half := k / 2
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= width; i += lanes {
		acc := hwy.Zero[T]()
		for j := 0; j < half; j++ {
			vj := hwy.Load(rows[j][i : i+lanes])
			vm := hwy.Load(rows[k-1-j][i : i+lanes])
			acc = hwy.FMA(hwy.Add(vj, vm), hwy.Set(points[j].Weight), acc)
		}
		vc := hwy.Load(rows[half][i : i+lanes])
		acc = hwy.FMA(vc, hwy.Set(points[half].Weight), acc)
		acc.Store(dstRow[i : i+lanes])
	}
	if i < width {
		tailRows := make([][]T, len(rows))
		for j := range rows {
			tailRows[j] = rows[j][i:]
		}
		ColSymmetricScalar[T, T](tailRows, dstRow[i:], width-i, 1, points)
	}
}

// ColGeneralVec4 is the 4-channel column kernel: each row is deinterleaved
// once per block via hwy.LoadInterleaved4.
func ColGeneralVec4[T numeric.Weight](rows [][]T, dstRow []T, width, channels int, points []scan.Point[T]) {
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= width; i += lanes {
		a0, a1, a2, a3 := hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T]()
		off := i * 4
		for k, p := range points {
			v0, v1, v2, v3 := hwy.LoadInterleaved4(rows[k][off : off+4*lanes])
			w := hwy.Set(p.Weight)
			a0 = hwy.FMA(v0, w, a0)
			a1 = hwy.FMA(v1, w, a1)
			a2 = hwy.FMA(v2, w, a2)
			a3 = hwy.FMA(v3, w, a3)
		}
		hwy.StoreInterleaved4(a0, a1, a2, a3, dstRow[off:off+4*lanes])
	}
	if i < width {
		tailRows := make([][]T, len(rows))
		for k := range rows {
			tailRows[k] = rows[k][i*4:]
		}
		ColGeneralScalar[T, T](tailRows, dstRow[i*4:], width-i, 4, points)
	}
}

// ColSymmetricVec4 is ColGeneralVec4's palindromic-kernel counterpart.
func ColSymmetricVec4[T numeric.Weight](rows [][]T, dstRow []T, width, channels int, points []scan.Point[T]) {
	k := len(points)
	half := k / 2
	lanes := hwy.MaxLanes[T]()
	i := 0
	for ; i+lanes <= width; i += lanes {
		a0, a1, a2, a3 := hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T](), hwy.Zero[T]()
		off := i * 4
		for j := 0; j < half; j++ {
			l0, l1, l2, l3 := hwy.LoadInterleaved4(rows[j][off : off+4*lanes])
			r0, r1, r2, r3 := hwy.LoadInterleaved4(rows[k-1-j][off : off+4*lanes])
			w := hwy.Set(points[j].Weight)
			a0 = hwy.FMA(hwy.Add(l0, r0), w, a0)
			a1 = hwy.FMA(hwy.Add(l1, r1), w, a1)
			a2 = hwy.FMA(hwy.Add(l2, r2), w, a2)
			a3 = hwy.FMA(hwy.Add(l3, r3), w, a3)
		}
		c0, c1, c2, c3 := hwy.LoadInterleaved4(rows[half][off : off+4*lanes])
		w := hwy.Set(points[half].Weight)
		a0 = hwy.FMA(c0, w, a0)
		a1 = hwy.FMA(c1, w, a1)
		a2 = hwy.FMA(c2, w, a2)
		a3 = hwy.FMA(c3, w, a3)
		hwy.StoreInterleaved4(a0, a1, a2, a3, dstRow[off:off+4*lanes])
	}
	if i < width {
		tailRows := make([][]T, len(rows))
		for j := range rows {
			tailRows[j] = rows[j][i*4:]
		}
		ColSymmetricScalar[T, T](tailRows, dstRow[i*4:], width-i, 4, points)
	}
}
