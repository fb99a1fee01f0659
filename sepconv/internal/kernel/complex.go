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

// The complex separable path (spec.md §4.8) is structurally identical to
// the exact float path but stays scalar: hwy's Lanes constraint admits
// only real integer and floating point types, not complex64/complex128,
// so there is no vectorised variant to dispatch to here — the dispatcher
// publishes this scalar implementation unconditionally, which is again
// exactly the "no SIMD kernel exists for this tuple" case spec.md §4.3
// allows for.
package kernel

import (
	"math"

	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// RowGeneralComplex reads real pixels from paddedRow and writes complex
// samples to dstRow, one per spec.md §4.8's "row kernel reads real,
// writes complex" contract.
func RowGeneralComplex[T numeric.Pixel](paddedRow []T, dstRow []complex128, width, channels int, points []scan.Point[complex128]) {
	half := len(points) / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var sum complex128
			for _, p := range points {
				srcX := x + half + p.Offset
				sum += complex(float64(paddedRow[srcX*channels+c]), 0) * p.Weight
			}
			dstRow[x*channels+c] = sum
		}
	}
}

// RowSymmetricComplex is RowGeneralComplex's palindromic-kernel
// counterpart; symmetry is detected over complex equality
// (scan.IsSymmetric[complex128]) per spec.md §4.8.
func RowSymmetricComplex[T numeric.Pixel](paddedRow []T, dstRow []complex128, width, channels int, points []scan.Point[complex128]) {
	k := len(points)
	half := k / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var sum complex128
			for i := 0; i < half; i++ {
				left, right := points[i], points[k-1-i]
				srcL := x + half + left.Offset
				srcR := x + half + right.Offset
				pair := complex(float64(paddedRow[srcL*channels+c])+float64(paddedRow[srcR*channels+c]), 0)
				sum += pair * left.Weight
			}
			center := points[half]
			sum += complex(float64(paddedRow[(x+half+center.Offset)*channels+c]), 0) * center.Weight
			dstRow[x*channels+c] = sum
		}
	}
}

// quantiseReal rounds and saturates a complex accumulator's real part
// into a pixel's storage type, discarding the imaginary component — the
// "quantising via saturating cast" step spec.md §4.8 names for the
// column kernel's complex-to-real write-back.
func quantiseReal[T numeric.Pixel](v complex128) T {
	var zero T
	re := real(v)
	switch any(zero).(type) {
	case uint8:
		r := math.Round(re)
		if r < 0 {
			r = 0
		} else if r > math.MaxUint8 {
			r = math.MaxUint8
		}
		return T(r)
	case uint16:
		r := math.Round(re)
		if r < 0 {
			r = 0
		} else if r > math.MaxUint16 {
			r = math.MaxUint16
		}
		return T(r)
	default:
		return T(re)
	}
}

// ColGeneralComplex reads complex samples from rows and writes real
// pixels to dstRow.
func ColGeneralComplex[T numeric.Pixel](rows [][]complex128, dstRow []T, width, channels int, points []scan.Point[complex128]) {
	n := width * channels
	for i := 0; i < n; i++ {
		var sum complex128
		for k, p := range points {
			sum += rows[k][i] * p.Weight
		}
		dstRow[i] = quantiseReal[T](sum)
	}
}

// ColSymmetricComplex is ColGeneralComplex's palindromic-kernel
// counterpart.
func ColSymmetricComplex[T numeric.Pixel](rows [][]complex128, dstRow []T, width, channels int, points []scan.Point[complex128]) {
	k := len(points)
	half := k / 2
	n := width * channels
	for i := 0; i < n; i++ {
		var sum complex128
		for j := 0; j < half; j++ {
			sum += (rows[j][i] + rows[k-1-j][i]) * points[j].Weight
		}
		sum += rows[half][i] * points[half].Weight
		dstRow[i] = quantiseReal[T](sum)
	}
}
