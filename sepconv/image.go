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

// Package sepconv implements a separable 2D convolution engine: a 1D row
// kernel followed by a 1D column kernel, over interleaved multi-channel
// images of 8/16-bit integer or 32/64-bit float pixels, plus an exact and
// a fixed-point complex variant. See SPEC_FULL.md for the full component
// design this package and its internal/ subpackages implement.
package sepconv

import "github.com/ajroetker/go-sepconv/sepconv/internal/numeric"

// Pixel re-exports the set of concrete pixel storage types this engine
// supports, so callers can write their own generic code against it
// without reaching into internal/numeric.
type Pixel = numeric.Pixel

// Image is an interleaved C-channel raster of width*height pixels of
// type T. Stride is the number of T elements between the start of one
// row and the next; it must be >= Width*Channels, allowing callers to
// describe a view into a larger padded buffer. Row_stride is fixed for
// the life of the Image (spec.md §3).
type Image[T Pixel] struct {
	Width, Height int
	Channels      int
	Stride        int
	Pix           []T
}

// NewImage allocates a tightly-packed Image (Stride == Width*Channels).
func NewImage[T Pixel](width, height, channels int) *Image[T] {
	stride := width * channels
	return &Image[T]{
		Width:    width,
		Height:   height,
		Channels: channels,
		Stride:   stride,
		Pix:      make([]T, stride*height),
	}
}

// Row returns the logical Width*Channels-element slice for row y,
// borrowed from Pix. Panics if y is out of [0, Height).
func (im *Image[T]) Row(y int) []T {
	off := y * im.Stride
	return im.Pix[off : off+im.Width*im.Channels]
}

// SameShape reports whether a and b have equal Width, Height and
// Channels (Stride may differ).
func SameShape[T Pixel](a, b *Image[T]) bool {
	return a.Width == b.Width && a.Height == b.Height && a.Channels == b.Channels
}
