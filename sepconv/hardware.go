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

import "github.com/ajroetker/go-sepconv/hwy"

// HardwareLevel reports the SIMD dispatch tier (e.g. "avx2", "neon",
// "scalar") that hwy/dispatch.go's per-arch init() detected for this
// process. FilterSeparable's 1- and 4-channel exact paths use exactly
// this tier (see kernel.Capability.HWLevel); the 2/3-channel and
// approximated paths always run scalar regardless of it.
func HardwareLevel() string {
	return hwy.CurrentName()
}

// SIMDEnabled reports whether HardwareLevel is anything other than the
// pure-Go scalar fallback. Useful for benchmarking tools that want to
// annotate a run with whether it actually exercised vector code.
func SIMDEnabled() bool {
	return hwy.HasSIMD()
}
