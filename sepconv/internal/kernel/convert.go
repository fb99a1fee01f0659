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
	"math"

	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
)

// toPixel rounds and saturates an exact-path accumulator value into a
// pixel's storage type. Floating point pixel types pass the value through
// unrounded; integer pixel types round-to-nearest and clamp to their
// representable range.
func toPixel[T numeric.Pixel, A numeric.Weight](sum A) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		v := math.Round(float64(sum))
		if v < 0 {
			v = 0
		} else if v > math.MaxUint8 {
			v = math.MaxUint8
		}
		return T(v)
	case uint16:
		v := math.Round(float64(sum))
		if v < 0 {
			v = 0
		} else if v > math.MaxUint16 {
			v = math.MaxUint16
		}
		return T(v)
	default:
		return T(sum)
	}
}
