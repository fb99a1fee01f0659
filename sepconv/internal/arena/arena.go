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

// Package arena synthesises the padded neighbourhood ("arena") an inner
// kernel needs to compute one output row or column without branching on
// image edges.
//
// Edge-coordinate math is grounded on the original awxkee/libblur
// edge_mode.rs contract (see original_source/_INDEX.md), re-derived from
// spec.md §4.2's formulas since the Rust source for that file was not
// part of the retrieved set.
package arena

import (
	"errors"
	"math/bits"

	"github.com/ajroetker/go-sepconv/sepconv/internal/numeric"
)

// ErrUnsupportedEdgeMode is returned for EdgeMode values this engine
// cannot honour (KernelClip is recognized but explicitly rejected).
var ErrUnsupportedEdgeMode = errors.New("sepconv: unsupported edge mode")

// ErrExceedingPointerSize is returned when padded dimensions would
// overflow address arithmetic.
var ErrExceedingPointerSize = errors.New("sepconv: dimensions exceed addressable size")

// EdgeMode selects how out-of-range coordinates are resolved.
type EdgeMode int

const (
	Clamp EdgeMode = iota
	Wrap
	Reflect
	Reflect101
	Constant
	// KernelClip is recognized but rejected by this engine (spec.md §3).
	KernelClip
)

// Arena describes the padded region consumed by one inner-kernel call.
// Constructed per call, by value; never outlives the slice it describes.
type Arena struct {
	Width, Height   int
	PadLeft, PadTop int
	Channels        int
}

// New builds an Arena value. Pure data, no allocation.
func New(width, height, padLeft, padTop, channels int) Arena {
	return Arena{Width: width, Height: height, PadLeft: padLeft, PadTop: padTop, Channels: channels}
}

// checkedDims multiplies a chain of dimensions, failing on overflow the
// way the original's safe_math.rs checked_mul/checked_add does.
func checkedDims(dims ...int) (int, error) {
	total := 1
	for _, d := range dims {
		if d < 0 {
			return 0, ErrExceedingPointerSize
		}
		hi, lo := bits.Mul64(uint64(total), uint64(d))
		if hi != 0 || lo > uint64(int(^uint(0)>>1)) {
			return 0, ErrExceedingPointerSize
		}
		total = int(lo)
	}
	return total, nil
}

// resolveCoord maps a (possibly out-of-range) logical column/row index x
// into [0, width) per the edge policy, or reports that the Constant fill
// value should be used instead.
func resolveCoord(x, width int, mode EdgeMode) (idx int, useFill bool) {
	if width <= 1 {
		if mode == Constant && (x < 0 || x >= width) {
			return 0, true
		}
		return 0, false
	}
	switch mode {
	case Clamp:
		if x < 0 {
			return 0, false
		}
		if x >= width {
			return width - 1, false
		}
		return x, false
	case Wrap:
		m := x % width
		if m < 0 {
			m += width
		}
		return m, false
	case Reflect:
		abs := func(v int) int {
			if v < 0 {
				return -v
			}
			return v
		}
		m1 := abs(x)
		m2 := abs(2*width - 1 - x)
		if m1 < m2 {
			return m1, false
		}
		return m2, false
	case Reflect101:
		if x < 0 {
			return -x, false
		}
		if x >= width {
			return 2*(width-1) - x, false
		}
		return x, false
	case Constant:
		if x < 0 || x >= width {
			return 0, true
		}
		return x, false
	default:
		return 0, false
	}
}

func fillChannel[T numeric.Pixel](fill [4]float64, c int) T {
	if c >= len(fill) {
		return T(0)
	}
	return T(fill[c])
}

// PadRow builds one padded row of width (width+padLeft+padRight)*channels
// from a single source row of width*channels elements, replicating out-
// of-range columns per mode. Returns ErrUnsupportedEdgeMode for
// KernelClip, ErrExceedingPointerSize if the padded width overflows.
func PadRow[T numeric.Pixel](src []T, width, channels, padLeft, padRight int, mode EdgeMode, fill [4]float64) ([]T, int, error) {
	if mode == KernelClip {
		return nil, 0, ErrUnsupportedEdgeMode
	}
	paddedWidth := width + padLeft + padRight
	n, err := checkedDims(paddedWidth, channels)
	if err != nil {
		return nil, 0, err
	}
	out := make([]T, n)
	for dx := 0; dx < paddedWidth; dx++ {
		srcX := dx - padLeft
		idx, useFill := resolveCoord(srcX, width, mode)
		dstOff := dx * channels
		if useFill {
			for c := 0; c < channels; c++ {
				out[dstOff+c] = fillChannel[T](fill, c)
			}
			continue
		}
		srcOff := idx * channels
		copy(out[dstOff:dstOff+channels], src[srcOff:srcOff+channels])
	}
	return out, paddedWidth, nil
}

// ColumnStrips holds the materialised top and bottom column-pad regions:
// Top has padH rows, each width*channels elements; Top[k] corresponds to
// logical row y = k - padH. Bottom is the mirror for y >= height.
type ColumnStrips[T numeric.Pixel] struct {
	Top, Bottom []T
	PadH        int
}

// TopRow returns the top strip's row at index k (0 <= k < PadH).
func (s ColumnStrips[T]) TopRow(k, width, channels int) []T {
	off := k * width * channels
	return s.Top[off : off+width*channels]
}

// BottomRow returns the bottom strip's row at index k (0 <= k < PadH).
func (s ColumnStrips[T]) BottomRow(k, width, channels int) []T {
	off := k * width * channels
	return s.Bottom[off : off+width*channels]
}

// PadColumns materialises the top and bottom column-pad strips for an
// image of height rows, width*channels elements per row, addressed via
// rowAt(y).
func PadColumns[T numeric.Pixel](rowAt func(y int) []T, height, width, channels, padH int, mode EdgeMode, fill [4]float64) (ColumnStrips[T], error) {
	if mode == KernelClip {
		return ColumnStrips[T]{}, ErrUnsupportedEdgeMode
	}
	stripLen, err := checkedDims(padH, width, channels)
	if err != nil {
		return ColumnStrips[T]{}, err
	}
	top := make([]T, stripLen)
	bottom := make([]T, stripLen)

	for k := 0; k < padH; k++ {
		logicalY := k - padH
		idx, useFill := resolveCoord(logicalY, height, mode)
		off := k * width * channels
		if useFill {
			for x := 0; x < width; x++ {
				for c := 0; c < channels; c++ {
					top[off+x*channels+c] = fillChannel[T](fill, c)
				}
			}
			continue
		}
		copy(top[off:off+width*channels], rowAt(idx))
	}

	for k := 0; k < padH; k++ {
		logicalY := height + k
		idx, useFill := resolveCoord(logicalY, height, mode)
		off := k * width * channels
		if useFill {
			for x := 0; x < width; x++ {
				for c := 0; c < channels; c++ {
					bottom[off+x*channels+c] = fillChannel[T](fill, c)
				}
			}
			continue
		}
		copy(bottom[off:off+width*channels], rowAt(idx))
	}

	return ColumnStrips[T]{Top: top, Bottom: bottom, PadH: padH}, nil
}

// RowFetch resolves the source row to use for logical row y under mode,
// returning the row itself (borrowed) or a freshly built fill row when
// the Constant policy applies. Used by the sliding-buffer column path to
// fetch one row at a time instead of materialising full strips.
func RowFetch[T numeric.Pixel](rowAt func(y int) []T, height, width, channels int, y int, mode EdgeMode, fill [4]float64, scratch []T) []T {
	idx, useFill := resolveCoord(y, height, mode)
	if !useFill {
		return rowAt(idx)
	}
	for x := 0; x < width; x++ {
		for c := 0; c < channels; c++ {
			scratch[x*channels+c] = fillChannel[T](fill, c)
		}
	}
	return scratch
}
