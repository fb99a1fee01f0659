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

// complexRowPass and complexColPass are the complex-domain counterparts
// of rowPass/colPass (spec.md §4.8): the row pass reads real pixels and
// writes a freshly allocated transient buffer of complex samples, the
// column pass reads complex samples and writes real pixels back via the
// dispatched quantising kernel. Neither side can reuse rowPass/colPass
// directly: those assume the same type T on both ends of a pass, while
// the complex path's row kernel changes type from T to S.
//
// The transient buffer is a plain [][]S rather than an arena.ColumnStrips
// construction: arena's helpers are constrained to numeric.Pixel, which
// complex128 and ComplexQ do not (and structurally should not) satisfy,
// so column-border resolution for this path is reimplemented locally in
// resolveComplexRow, mirroring arena's resolveCoord formulas.
package sepconv

import (
	"github.com/ajroetker/go-sepconv/hwy/contrib/workerpool"
	"github.com/ajroetker/go-sepconv/sepconv/internal/arena"
	"github.com/ajroetker/go-sepconv/sepconv/internal/kernel"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

func complexRowPass[T Pixel, S any, W any](src *Image[T], points []scan.Point[W], policy BorderPolicy, pool *workerpool.Pool, rowFn kernel.RowFunc2[T, S, W]) [][]S {
	half := len(points) / 2
	rowWidth := src.Width * src.Channels
	rows := make([][]S, src.Height)
	for y := range rows {
		rows[y] = make([]S, rowWidth)
	}

	work := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			padded, _, err := arena.PadRow[T](src.Row(y), src.Width, src.Channels, half, half, policy.arenaMode(), policy.Fill)
			if err != nil {
				panic(err)
			}
			rowFn(padded, rows[y], src.Width, src.Channels, points)
		}
	}
	if pool == nil {
		work(0, src.Height)
	} else {
		pool.ParallelFor(src.Height, work)
	}
	return rows
}

// resolveComplexRow maps a (possibly out-of-range) logical row index y
// into [0, height) per mode, or reports that the zero complex sample
// should stand in for Constant border fill.
func resolveComplexRow(y, height int, mode EdgeMode) (idx int, useZero bool) {
	if height <= 1 {
		if mode == Constant && (y < 0 || y >= height) {
			return 0, true
		}
		return 0, false
	}
	switch mode {
	case Clamp:
		if y < 0 {
			return 0, false
		}
		if y >= height {
			return height - 1, false
		}
		return y, false
	case Wrap:
		m := y % height
		if m < 0 {
			m += height
		}
		return m, false
	case Reflect:
		abs := func(v int) int {
			if v < 0 {
				return -v
			}
			return v
		}
		m1 := abs(y)
		m2 := abs(2*height - 1 - y)
		if m1 < m2 {
			return m1, false
		}
		return m2, false
	case Reflect101:
		if y < 0 {
			return -y, false
		}
		if y >= height {
			return 2*(height-1) - y, false
		}
		return y, false
	case Constant:
		if y < 0 || y >= height {
			return 0, true
		}
		return y, false
	default:
		return 0, false
	}
}

func complexColPass[T Pixel, S any, W any](rows [][]S, width, height, channels int, points []scan.Point[W], policy BorderPolicy, pool *workerpool.Pool, colFn kernel.ColFunc2[T, S, W], zero S) (*Image[T], error) {
	dst := NewImage[T](width, height, channels)
	rowWidth := width * channels

	rowAt := func(y int) []S {
		idx, useZero := resolveComplexRow(y, height, policy.Mode)
		if useZero {
			z := make([]S, rowWidth)
			for i := range z {
				z[i] = zero
			}
			return z
		}
		return rows[idx]
	}

	work := func(y0, y1 int) {
		buf := make([][]S, len(points))
		for y := y0; y < y1; y++ {
			for j, p := range points {
				buf[j] = rowAt(y + p.Offset)
			}
			colFn(buf, dst.Row(y), width, channels, points)
		}
	}
	if pool == nil {
		work(0, height)
	} else {
		pool.ParallelFor(height, work)
	}
	return dst, nil
}
