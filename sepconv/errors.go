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
	"errors"

	"github.com/ajroetker/go-sepconv/sepconv/internal/arena"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// ErrOddKernel is returned when a kernel of even length is passed to any
// Filter* entry point.
var ErrOddKernel = scan.ErrOddKernel

// ErrUnsupportedEdgeMode is returned for KernelClip, the one BorderPolicy
// variant this engine explicitly rejects.
var ErrUnsupportedEdgeMode = arena.ErrUnsupportedEdgeMode

// ErrExceedingPointerSize is returned when the padded working set for a
// call would overflow address arithmetic.
var ErrExceedingPointerSize = arena.ErrExceedingPointerSize

// ErrShapeMismatch is returned when an image passed to a Filter* entry
// point has a non-positive width or height.
var ErrShapeMismatch = errors.New("sepconv: image has non-positive width or height")

// ErrChannelMismatch is returned when an image passed to a Filter* entry
// point has a non-positive channel count.
var ErrChannelMismatch = errors.New("sepconv: image has non-positive channel count")

// validateImage reports ErrShapeMismatch or ErrChannelMismatch for a
// malformed image, checked once at the top of every Filter* entry point
// rather than deep inside the row/column drivers.
func validateImage[T Pixel](im *Image[T]) error {
	if im.Width <= 0 || im.Height <= 0 {
		return ErrShapeMismatch
	}
	if im.Channels <= 0 {
		return ErrChannelMismatch
	}
	return nil
}
