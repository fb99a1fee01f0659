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
	"github.com/ajroetker/go-sepconv/sepconv/internal/fixedpoint"
	"github.com/ajroetker/go-sepconv/sepconv/internal/kernel"
	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// ApproxPixel mirrors kernel.ApproxPixel at the public surface: the
// fixed-point approximated path only ever stores pixels as 8- or 16-bit
// unsigned integers.
type ApproxPixel = kernel.ApproxPixel

// q7Eligible reports whether kernel qualifies for the specialised Q0.7
// small-kernel path (spec.md §4.4): at most 9 taps, palindromic, and
// every weight non-negative. Checked on the caller's floating-point
// weights directly, before any Q-format scaling.
func q7Eligible[W numeric.Weight](k []W) bool {
	if len(k) == 0 || len(k) > 9 {
		return false
	}
	if !scan.IsSymmetric(k) {
		return false
	}
	for _, w := range k {
		if w < 0 {
			return false
		}
	}
	return true
}

// FilterSeparableApprox runs the Q15 fixed-point approximated separable
// convolution (spec.md §4.4) over an 8- or 16-bit image. When the pixel
// type is uint8 and both kernels qualify for the Q0.7 small-kernel path
// (q7Eligible), that specialised path is used instead; every other
// uint8/uint16 combination uses the general Q15 path.
func FilterSeparableApprox[T ApproxPixel, W numeric.Weight](src *Image[T], rowKernel, colKernel []W, policy BorderPolicy, threading ThreadingPolicy) (*Image[T], error) {
	if err := validateImage(src); err != nil {
		return nil, err
	}
	if u8src, ok := any(src).(*Image[uint8]); ok {
		out, err := filterApproxUint8(u8src, rowKernel, colKernel, policy, threading)
		if err != nil {
			return nil, err
		}
		return any(out).(*Image[T]), nil
	}
	return filterApproxQ15[T](src, rowKernel, colKernel, policy, threading)
}

func filterApproxQ15[T ApproxPixel, W numeric.Weight](src *Image[T], rowKernel, colKernel []W, policy BorderPolicy, threading ThreadingPolicy) (*Image[T], error) {
	rowScaled := fixedpoint.ScaleKernel(rowKernel, fixedpoint.Q15)
	colScaled := fixedpoint.ScaleKernel(colKernel, fixedpoint.Q15)

	rowPoints, err := scan.Scan(rowScaled)
	if err != nil {
		return nil, err
	}
	colPoints, err := scan.Scan(colScaled)
	if err != nil {
		return nil, err
	}

	rowCap := kernel.DispatchApprox[T](scan.IsSymmetric(rowScaled))
	colCap := kernel.DispatchApprox[T](scan.IsSymmetric(colScaled))

	pool := threading.pool(src.Height)
	if pool != nil {
		defer pool.Close()
	}

	if len(colPoints) <= slidingColumnThreshold {
		return colPassSliding[T, int32](src, rowPoints, colPoints, policy, pool, rowCap.Row, colCap.Col), nil
	}
	transient := rowPass[T, int32](src, rowPoints, policy, pool, rowCap.Row)
	return colPass[T, int32](transient, colPoints, policy, pool, colCap.Col)
}

func filterApproxUint8[W numeric.Weight](src *Image[uint8], rowKernel, colKernel []W, policy BorderPolicy, threading ThreadingPolicy) (*Image[uint8], error) {
	if !q7Eligible(rowKernel) || !q7Eligible(colKernel) {
		return filterApproxQ15[uint8](src, rowKernel, colKernel, policy, threading)
	}

	rowQ7 := fixedpoint.RenormalizeQ7(fixedpoint.ScaleKernel(rowKernel, fixedpoint.Q7))
	colQ7 := fixedpoint.RenormalizeQ7(fixedpoint.ScaleKernel(colKernel, fixedpoint.Q7))

	rowPoints, err := scan.Scan(rowQ7)
	if err != nil {
		return nil, err
	}
	colPoints, err := scan.Scan(colQ7)
	if err != nil {
		return nil, err
	}

	rowFn, colFn := kernel.DispatchQ7()

	pool := threading.pool(src.Height)
	if pool != nil {
		defer pool.Close()
	}

	if len(colPoints) <= slidingColumnThreshold {
		return colPassSliding[uint8, int32](src, rowPoints, colPoints, policy, pool, rowFn, colFn), nil
	}
	transient := rowPass[uint8, int32](src, rowPoints, policy, pool, rowFn)
	return colPass[uint8, int32](transient, colPoints, policy, pool, colFn)
}
