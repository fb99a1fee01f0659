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

// Package fixedpoint implements the Q-format scale/round/saturate
// arithmetic the approximated separable path uses to turn a
// floating-point kernel into integer weights and integer accumulated
// sums back into source-domain pixels.
//
// Grounded on spec.md §4.4's explicit formulas (round ties-to-even at
// scale time, round-half-up bias+shift at combine time, saturate after
// the shift, Q0.7 center-tap renormalization), which is itself a
// redescription of the original awxkee/libblur Q15/Q0.7 fixed-point
// paths (filter_1d_approx.rs, row_symm_approx_binter_uq0_7.rs).
package fixedpoint

import (
	"math"

	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
)

// Q15 is the fractional-bit count used by the primary u8/u16 approx path.
const Q15 = 15

// Q7 is the fractional-bit count used by the specialised very-small
// all-nonnegative symmetric u8 kernel path.
const Q7 = 7

// ScaleWeight scales one floating-point weight by 2^q, rounding to
// nearest with ties-to-even (matching hwy.RoundToEven's semantics, and
// Go's math.RoundToEven, used here directly since this path is scalar).
func ScaleWeight[W numeric.Weight](w W, q uint) int64 {
	scaled := float64(w) * float64(int64(1)<<q)
	return int64(math.RoundToEven(scaled))
}

// ScaleKernel scales every weight of kernel by 2^q into int32 Q-format
// coefficients.
func ScaleKernel[W numeric.Weight](kernel []W, q uint) []int32 {
	out := make([]int32, len(kernel))
	for i, w := range kernel {
		out[i] = int32(ScaleWeight(w, q))
	}
	return out
}

// RenormalizeQ7 nudges the center tap of a Q0.7-scaled kernel so its
// weights sum to exactly 128, compensating for per-tap rounding drift.
// Callers with non-unit-sum kernels should not rely on this: it silently
// rescales whatever sum was intended (spec.md §9, second open question).
func RenormalizeQ7(weights []int32) []int32 {
	out := append([]int32(nil), weights...)
	var sum int32
	for _, w := range out {
		sum += w
	}
	diff := int32(128) - sum
	out[len(out)/2] += diff
	return out
}

// RoundShift applies the round-half-up bias+shift: (acc + 1<<(q-1)) >> q.
// q must be >= 1.
func RoundShift(acc int64, q uint) int64 {
	bias := int64(1) << (q - 1)
	return (acc + bias) >> q
}

// Saturate clamps v to the representable range of T and converts it.
// Integer pixel types are clamped to their natural [0, max] range;
// floating point "pixel" types (used by the complex/float paths sharing
// this helper) pass through unclamped.
func Saturate[T numeric.Pixel](v int64) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		if v < 0 {
			v = 0
		} else if v > math.MaxUint8 {
			v = math.MaxUint8
		}
	case uint16:
		if v < 0 {
			v = 0
		} else if v > math.MaxUint16 {
			v = math.MaxUint16
		}
	}
	return T(v)
}
