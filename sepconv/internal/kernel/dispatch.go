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

// DispatchFloat selects the exact-path Capability for channels and a
// symmetry flag: channels 1 and 4 get a vectorised row/column kernel,
// channels 2 and 3 fall back to the scalar normative reference — there
// is no LoadInterleaved2/3 deinterleave-and-FMA variant wired up for
// them (spec.md §4.3's "publish a scalar fallback" clause), since a
// two- or three-plane variant would duplicate most of the four-plane one
// for image formats this engine does not target as a fast path.
//
// The vector branches report hwy.CurrentLevel(), the runtime-detected
// CPU dispatch tier hwy/dispatch.go's per-arch init() picked; the scalar
// branches report hwy.DispatchScalar regardless of what the CPU supports,
// since those code paths never call into a hwy.Vec operation.
func DispatchFloat[T numeric.Weight](channels int, symmetric bool) Capability[T, T] {
	switch channels {
	case 1:
		if symmetric {
			return Capability[T, T]{Row: RowSymmetricVec1[T], Col: ColSymmetricVec1[T], RowLevel: LevelVector, ColLevel: LevelVector, HWLevel: hwy.CurrentLevel()}
		}
		return Capability[T, T]{Row: RowGeneralVec1[T], Col: ColGeneralVec1[T], RowLevel: LevelVector, ColLevel: LevelVector, HWLevel: hwy.CurrentLevel()}
	case 4:
		if symmetric {
			return Capability[T, T]{Row: RowSymmetricVec4[T], Col: ColSymmetricVec4[T], RowLevel: LevelVector, ColLevel: LevelVector, HWLevel: hwy.CurrentLevel()}
		}
		return Capability[T, T]{Row: RowGeneralVec4[T], Col: ColGeneralVec4[T], RowLevel: LevelVector, ColLevel: LevelVector, HWLevel: hwy.CurrentLevel()}
	default:
		if symmetric {
			return Capability[T, T]{Row: RowSymmetricScalar[T, T], Col: ColSymmetricScalar[T, T], RowLevel: LevelScalar, ColLevel: LevelScalar, HWLevel: hwy.DispatchScalar}
		}
		return Capability[T, T]{Row: RowGeneralScalar[T, T], Col: ColGeneralScalar[T, T], RowLevel: LevelScalar, ColLevel: LevelScalar, HWLevel: hwy.DispatchScalar}
	}
}

// DispatchApprox selects the Q15 approximated-path Capability. No channel
// count or symmetry combination has a vectorised variant (see approx.go's
// package comment), so this always reports LevelScalar.
func DispatchApprox[T ApproxPixel](symmetric bool) Capability[T, int32] {
	if symmetric {
		return Capability[T, int32]{
			Row:      func(p, d []T, w, c int, pts []scan.Point[int32]) { RowSymmetricApprox[T](p, d, w, c, pts, fixedpointQ) },
			Col:      func(r [][]T, d []T, w, c int, pts []scan.Point[int32]) { ColSymmetricApprox[T](r, d, w, c, pts, fixedpointQ) },
			RowLevel: LevelScalar,
			ColLevel: LevelScalar,
		}
	}
	return Capability[T, int32]{
		Row:      func(p, d []T, w, c int, pts []scan.Point[int32]) { RowGeneralApprox[T](p, d, w, c, pts, fixedpointQ) },
		Col:      func(r [][]T, d []T, w, c int, pts []scan.Point[int32]) { ColGeneralApprox[T](r, d, w, c, pts, fixedpointQ) },
		RowLevel: LevelScalar,
		ColLevel: LevelScalar,
	}
}

// fixedpointQ is the Q15 fractional-bit count DispatchApprox's closures
// bind. It is a separate literal with the same value as fixedpoint.Q15.
const fixedpointQ = 15

// DispatchComplex returns the scalar row/column function pair for the
// exact complex path (spec.md §4.8). There is exactly one variant per
// symmetry flag: complex128 is not a hwy.Lanes type, so there is no
// vectorised alternative to choose between.
func DispatchComplex[T numeric.Pixel](symmetric bool) (RowFunc2[T, complex128, complex128], ColFunc2[T, complex128, complex128]) {
	if symmetric {
		return RowSymmetricComplex[T], ColSymmetricComplex[T]
	}
	return RowGeneralComplex[T], ColGeneralComplex[T]
}

// DispatchComplexQ is DispatchComplex's fixed-point counterpart.
func DispatchComplexQ[T numeric.Pixel](symmetric bool, q uint) (RowFunc2[T, ComplexQ, ComplexQ], ColFunc2[T, ComplexQ, ComplexQ]) {
	if symmetric {
		return func(p []T, d []ComplexQ, w, c int, pts []scan.Point[ComplexQ]) { RowSymmetricComplexQ[T](p, d, w, c, pts, q) },
			func(r [][]ComplexQ, d []T, w, c int, pts []scan.Point[ComplexQ]) { ColSymmetricComplexQ[T](r, d, w, c, pts, q) }
	}
	return func(p []T, d []ComplexQ, w, c int, pts []scan.Point[ComplexQ]) { RowGeneralComplexQ[T](p, d, w, c, pts, q) },
		func(r [][]ComplexQ, d []T, w, c int, pts []scan.Point[ComplexQ]) { ColGeneralComplexQ[T](r, d, w, c, pts, q) }
}

// DispatchQ7 returns the Q0.7 small-symmetric-kernel row/column pair.
// Callers are responsible for only invoking this when the kernel is
// symmetric, all-nonnegative and at most 9 taps (spec.md §4.4);
// Capability is not used here since the Q7 path is u8-only by
// construction, unlike the channel/symmetry axes DispatchApprox spans.
func DispatchQ7() (func(paddedRow, dstRow []uint8, width, channels int, points []scan.Point[int32]), func(rows [][]uint8, dstRow []uint8, width, channels int, points []scan.Point[int32])) {
	return RowSymmetricQ7, ColSymmetricQ7
}
