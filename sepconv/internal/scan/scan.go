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

// Package scan turns a flat kernel (a []W of odd length) into a list of
// (centered offset, weight) ScanPoints and detects palindromic symmetry.
//
// Grounded on the centered-offset convention of the original
// awxkee/libblur filter1d/filter_scan.rs (scan_se_1d / is_symmetric_1d),
// re-expressed with Go generics instead of Rust's per-type instantiation.
package scan

import "errors"

// ErrOddKernel is returned when a kernel of even length is scanned.
var ErrOddKernel = errors.New("sepconv: kernel length must be odd")

// Point is one (centered offset, weight) entry of a scanned kernel.
// The offset ranges over [-floor(k/2), +floor(k/2)] in input order.
type Point[W any] struct {
	Offset int
	Weight W
}

// Scan returns exactly len(kernel) Points in input order, or ErrOddKernel
// if kernel has even length.
func Scan[W any](kernel []W) ([]Point[W], error) {
	k := len(kernel)
	if k&1 == 0 {
		return nil, ErrOddKernel
	}
	half := k / 2
	points := make([]Point[W], k)
	for i, w := range kernel {
		points[i] = Point[W]{Offset: i - half, Weight: w}
	}
	return points, nil
}

// IsSymmetric reports whether kernel is palindromic: kernel[i] == kernel[k-1-i]
// for all i < k/2. Uses value equality over W, never tolerance-based
// comparison — callers passing float kernels whose intended symmetry is
// broken by rounding get the (still correct, just slower) asymmetric path.
func IsSymmetric[W comparable](kernel []W) bool {
	k := len(kernel)
	for i := 0; i < k/2; i++ {
		if kernel[i] != kernel[k-1-i] {
			return false
		}
	}
	return true
}
