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

// ColGeneralScalar computes one destination row from the vertical stack
// rows[i], each already aligned so rows[i] is the source row at the
// tap points[i]'s offset.
func ColGeneralScalar[T numeric.Pixel, W numeric.Weight](rows [][]T, dstRow []T, width, channels int, points []scan.Point[W]) {
	n := width * channels
	for i := 0; i < n; i++ {
		var sum W
		for k, p := range points {
			sum += W(rows[k][i]) * p.Weight
		}
		dstRow[i] = toPixel[T](sum)
	}
}

// ColSymmetricScalar is the palindromic-kernel counterpart of
// ColGeneralScalar: mirrored row pairs are summed once before the single
// multiply by their shared weight.
func ColSymmetricScalar[T numeric.Pixel, W numeric.Weight](rows [][]T, dstRow []T, width, channels int, points []scan.Point[W]) {
	k := len(points)
	half := k / 2
	n := width * channels
	for i := 0; i < n; i++ {
		var sum W
		for j := 0; j < half; j++ {
			pair := W(rows[j][i]) + W(rows[k-1-j][i])
			sum += pair * points[j].Weight
		}
		sum += W(rows[half][i]) * points[half].Weight
		dstRow[i] = toPixel[T](sum)
	}
}
