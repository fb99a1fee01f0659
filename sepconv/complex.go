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
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// ComplexQ is the fixed-point complex sample type the Q-format complex
// path produces and consumes (spec.md §4.8's "complex fixed-point"
// domain). Re-exported so callers never need to import internal/kernel.
type ComplexQ = kernel.ComplexQ

// FilterComplexSeparable runs the exact complex separable convolution
// (spec.md §4.8): the row pass reads real pixels and writes complex
// samples, the column pass reads complex samples and writes real pixels
// back, discarding the imaginary component through a saturating cast.
func FilterComplexSeparable[T Pixel](src *Image[T], rowKernel, colKernel []complex128, policy BorderPolicy, threading ThreadingPolicy) (*Image[T], error) {
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

	rowFn, _ := kernel.DispatchComplex[T](scan.IsSymmetric(rowKernel))
	_, colFn := kernel.DispatchComplex[T](scan.IsSymmetric(colKernel))

	pool := threading.pool(src.Height)
	if pool != nil {
		defer pool.Close()
	}

	transient := complexRowPass[T, complex128, complex128](src, rowPoints, policy, pool, rowFn)
	return complexColPass[T, complex128, complex128](transient, src.Width, src.Height, src.Channels, colPoints, policy, pool, colFn, complex(0, 0))
}

// FilterComplexSeparableFixedPoint is FilterComplexSeparable's Q-format
// counterpart: both kernels are ComplexQ values scaled to q fractional
// bits. Each row-pass tap product is shifted back down by q, so the
// transient row-pass samples are ComplexQ values in unscaled pixel units.
func FilterComplexSeparableFixedPoint[T Pixel](src *Image[T], rowKernel, colKernel []ComplexQ, q uint, policy BorderPolicy, threading ThreadingPolicy) (*Image[T], error) {
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

	rowFn, _ := kernel.DispatchComplexQ[T](scan.IsSymmetric(rowKernel), q)
	_, colFn := kernel.DispatchComplexQ[T](scan.IsSymmetric(colKernel), q)

	pool := threading.pool(src.Height)
	if pool != nil {
		defer pool.Close()
	}

	transient := complexRowPass[T, ComplexQ, ComplexQ](src, rowPoints, policy, pool, rowFn)
	return complexColPass[T, ComplexQ, ComplexQ](transient, src.Width, src.Height, src.Channels, colPoints, policy, pool, colFn, ComplexQ{})
}
