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

// rowPass implements spec.md §4.5: for each output row, ask the border
// synthesiser for a padded row and invoke the dispatched row kernel.
// Threaded iteration chunks by row stride via the worker pool; workers
// never share a row.
package sepconv

import (
	"github.com/ajroetker/go-sepconv/hwy/contrib/workerpool"
	"github.com/ajroetker/go-sepconv/sepconv/internal/arena"
	"github.com/ajroetker/go-sepconv/sepconv/internal/kernel"
	"github.com/ajroetker/go-sepconv/sepconv/internal/scan"
)

// rowPass runs rowFn over every row of src and returns a freshly
// allocated transient image of the same shape. W is the scan point's
// weight type (float32/float64 for the exact path, int32 for the Q15
// approx path).
func rowPass[T Pixel, W any](src *Image[T], points []scan.Point[W], policy BorderPolicy, pool *workerpool.Pool, rowFn kernel.RowFunc[T, W]) *Image[T] {
	half := len(points) / 2
	dst := NewImage[T](src.Width, src.Height, src.Channels)

	work := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			padded, _, err := arena.PadRow[T](src.Row(y), src.Width, src.Channels, half, half, policy.arenaMode(), policy.Fill)
			if err != nil {
				// Caller already validated the edge mode before invoking
				// rowPass; this can only happen if that check is ever
				// bypassed, which would itself be a programming error.
				panic(err)
			}
			rowFn(padded, dst.Row(y), src.Width, src.Channels, points)
		}
	}

	if pool == nil {
		work(0, src.Height)
	} else {
		pool.ParallelFor(src.Height, work)
	}
	return dst
}
