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

// ComplexQ and the fixed-point complex row/column kernels implement
// spec.md §4.8's "fixed-point complex variant uses Q-format per
// component, rounding via (x + (1<<(Q-1))) >> Q applied to real and
// imag". There is no standard library complex-integer type, so ComplexQ
// is a small value type carrying the two Q-format components directly,
// mirroring the real Q15 path's use of a plain int32 in place of Go's
// complex64/128 (which are float-only).
package kernel

import (
	"github.com/ajroetker/go-sepconv/sepconv/internal/fixedpoint"
	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// ComplexQ is a Q-format fixed-point complex number: Re and Im are each
// scaled by 2^Q for some Q fixed across a given filter call.
type ComplexQ struct {
	Re, Im int32
}

// mulQ multiplies two Q-format complex numbers and rescales the Q^2-scaled
// product back to Q via fixedpoint.RoundShift, applied independently to
// the real and imaginary parts.
func mulQ(a, b ComplexQ, q uint) ComplexQ {
	re := int64(a.Re)*int64(b.Re) - int64(a.Im)*int64(b.Im)
	im := int64(a.Re)*int64(b.Im) + int64(a.Im)*int64(b.Re)
	return ComplexQ{
		Re: int32(fixedpoint.RoundShift(re, q)),
		Im: int32(fixedpoint.RoundShift(im, q)),
	}
}

// RowGeneralComplexQ reads real pixels and writes ComplexQ samples.
func RowGeneralComplexQ[T numeric.Pixel](paddedRow []T, dstRow []ComplexQ, width, channels int, points []scan.Point[ComplexQ], q uint) {
	half := len(points) / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var accRe, accIm int64
			sample := ComplexQ{}
			for _, p := range points {
				srcX := x + half + p.Offset
				sample.Re = int32(paddedRow[srcX*channels+c])
				sample.Im = 0
				prod := mulQ(sample, p.Weight, q)
				accRe += int64(prod.Re)
				accIm += int64(prod.Im)
			}
			dstRow[x*channels+c] = ComplexQ{Re: int32(accRe), Im: int32(accIm)}
		}
	}
}

// RowSymmetricComplexQ is RowGeneralComplexQ's palindromic-kernel
// counterpart.
func RowSymmetricComplexQ[T numeric.Pixel](paddedRow []T, dstRow []ComplexQ, width, channels int, points []scan.Point[ComplexQ], q uint) {
	k := len(points)
	half := k / 2
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			var accRe, accIm int64
			for i := 0; i < half; i++ {
				left, right := points[i], points[k-1-i]
				srcL := x + half + left.Offset
				srcR := x + half + right.Offset
				pairRe := int32(paddedRow[srcL*channels+c]) + int32(paddedRow[srcR*channels+c])
				prod := mulQ(ComplexQ{Re: pairRe}, left.Weight, q)
				accRe += int64(prod.Re)
				accIm += int64(prod.Im)
			}
			center := points[half]
			prod := mulQ(ComplexQ{Re: int32(paddedRow[(x+half+center.Offset)*channels+c])}, center.Weight, q)
			accRe += int64(prod.Re)
			accIm += int64(prod.Im)
			dstRow[x*channels+c] = ComplexQ{Re: int32(accRe), Im: int32(accIm)}
		}
	}
}

// ColGeneralComplexQ reads ComplexQ samples and writes real pixels,
// quantising the real component via fixedpoint.Saturate. mulQ already
// rescales each tap's product back down to the caller's Q scale, so the
// samples accumulated here are already in raw (unscaled) pixel units —
// no further RoundShift is applied at read-out, unlike the real Q15
// path's single accumulate-then-shift-once.
func ColGeneralComplexQ[T numeric.Pixel](rows [][]ComplexQ, dstRow []T, width, channels int, points []scan.Point[ComplexQ], q uint) {
	n := width * channels
	for i := 0; i < n; i++ {
		var accRe int64
		for k, p := range points {
			prod := mulQ(rows[k][i], p.Weight, q)
			accRe += int64(prod.Re)
		}
		dstRow[i] = fixedpoint.Saturate[T](accRe)
	}
}

// ColSymmetricComplexQ is ColGeneralComplexQ's palindromic-kernel
// counterpart.
func ColSymmetricComplexQ[T numeric.Pixel](rows [][]ComplexQ, dstRow []T, width, channels int, points []scan.Point[ComplexQ], q uint) {
	k := len(points)
	half := k / 2
	n := width * channels
	for i := 0; i < n; i++ {
		var accRe int64
		for j := 0; j < half; j++ {
			sumSample := ComplexQ{Re: rows[j][i].Re + rows[k-1-j][i].Re, Im: rows[j][i].Im + rows[k-1-j][i].Im}
			prod := mulQ(sumSample, points[j].Weight, q)
			accRe += int64(prod.Re)
		}
		prod := mulQ(rows[half][i], points[half].Weight, q)
		accRe += int64(prod.Re)
		dstRow[i] = fixedpoint.Saturate[T](accRe)
	}
}
