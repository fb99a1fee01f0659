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

package sepconv

import (
	"github.com/ajroetker/go-sepconv/sepconv/internal/kernel"
	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// FilterSeparable runs the exact, non-approximated separable convolution
// of spec.md §4 over a floating-point image: a row-pass 1D kernel
// followed by a column-pass 1D kernel, each scanned, dispatched to a
// vectorised or scalar inner kernel by channel count and symmetry, and
// routed through either the sliding-buffer column driver (small column
// kernels) or the transient-image driver (large ones).
//
// T is constrained to numeric.Weight (float32/float64) rather than the
// wider Pixel: the exact path's accumulator and pixel storage are one and
// the same type here, which is what lets kernel.DispatchFloat skip a
// widen-then-narrow step entirely for this domain.
func FilterSeparable[T numeric.Weight](src *Image[T], rowKernel, colKernel []T, policy BorderPolicy, threading ThreadingPolicy) (*Image[T], error) {
	if err := validateImage(src); err != nil {
		return nil, err
	}
	rowPoints, err := scan.Scan(rowKernel)
	if err != nil {
		return nil, err
	}
	colPoints, err := scan.Scan(colKernel)
	if err != nil {
		return nil, err
	}

	rowCap := kernel.DispatchFloat[T](src.Channels, scan.IsSymmetric(rowKernel))
	colCap := kernel.DispatchFloat[T](src.Channels, scan.IsSymmetric(colKernel))

	pool := threading.pool(src.Height)
	if pool != nil {
		defer pool.Close()
	}

	if len(colPoints) <= slidingColumnThreshold {
		return colPassSliding[T, T](src, rowPoints, colPoints, policy, pool, rowCap.Row, colCap.Col), nil
	}
	transient := rowPass[T, T](src, rowPoints, policy, pool, rowCap.Row)
	return colPass[T, T](transient, colPoints, policy, pool, colCap.Col)
}
