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

import "github.com/ajroetker/go-sepconv/sepconv/internal/arena"

// EdgeMode selects how out-of-range coordinates are resolved at an image
// border (spec.md §4.2). KernelClip is deliberately not exposed here: it
// is recognized internally only to report ErrUnsupportedEdgeMode.
type EdgeMode int

const (
	Clamp EdgeMode = iota
	Wrap
	Reflect
	Reflect101
	Constant
)

// BorderPolicy pairs an EdgeMode with the per-channel fill value Constant
// uses (ignored by every other mode).
type BorderPolicy struct {
	Mode EdgeMode
	Fill [4]float64
}

// arenaMode converts to the internal arena package's EdgeMode. The two
// enums share ordinal values by construction (arena.EdgeMode simply adds
// KernelClip after Constant).
func (b BorderPolicy) arenaMode() arena.EdgeMode {
	return arena.EdgeMode(b.Mode)
}
