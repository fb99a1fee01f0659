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

import "testing"

func flatImage(width, height, channels int, v float64) *Image[float64] {
	im := NewImage[float64](width, height, channels)
	for i := range im.Pix {
		im.Pix[i] = v
	}
	return im
}

// spec.md §8 scenario: a uniform image survives a normalized 3x3 box
// filter unchanged, regardless of threading.
func TestFilterSeparableBoxPreservesFlatImage(t *testing.T) {
	src := flatImage(8, 8, 1, 42)
	k := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	policy := BorderPolicy{Mode: Reflect101}

	for _, th := range []ThreadingPolicy{SingleThreaded(), FixedThreads(2), Adaptive()} {
		out, err := FilterSeparable(src, k, k, policy, th)
		if err != nil {
			t.Fatalf("threading=%v: %v", th, err)
		}
		for i, v := range out.Pix {
			if v < 41.999999 || v > 42.000001 {
				t.Errorf("threading=%v index %d = %v, want ~42", th, i, v)
			}
		}
	}
}

// Runs a 5-tap blur once as the row kernel and once as the column kernel
// (identity on the other axis) and checks that both keep the source shape.
func TestFilterSeparableRowOnlyAndColOnlyKeepShape(t *testing.T) {
	src := NewImage[float64](6, 6, 1)
	for i := range src.Pix {
		src.Pix[i] = float64(i % 5)
	}
	identity := []float64{1}
	blur := []float64{0.2, 0.2, 0.2, 0.2, 0.2}
	policy := BorderPolicy{Mode: Clamp}

	rowOnly, err := FilterSeparable(src, blur, identity, policy, SingleThreaded())
	if err != nil {
		t.Fatal(err)
	}
	colOnly, err := FilterSeparable(src, identity, blur, policy, SingleThreaded())
	if err != nil {
		t.Fatal(err)
	}
	if rowOnly.Width != colOnly.Width || rowOnly.Height != colOnly.Height {
		t.Fatalf("shape mismatch")
	}
	// The two outputs blur along different axes of a row-periodic image,
	// so they need not be equal; this just exercises both kernel placements
	// without panicking or erroring (both column kernels have length <=
	// slidingColumnThreshold, so both calls take the sliding-buffer path).
}

func TestFilterSeparableRejectsEmptyImage(t *testing.T) {
	src := NewImage[float64](0, 0, 1)
	_, err := FilterSeparable(src, []float64{1}, []float64{1}, BorderPolicy{}, SingleThreaded())
	if err != ErrShapeMismatch {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestFilterSeparableRejectsEvenKernel(t *testing.T) {
	src := flatImage(4, 4, 1, 1)
	_, err := FilterSeparable(src, []float64{0.5, 0.5}, []float64{1}, BorderPolicy{}, SingleThreaded())
	if err == nil {
		t.Fatal("expected ErrOddKernel")
	}
}

// spec.md §8 scenario: the approx 3x3 box preserves a flat uint8 image.
// The 1/3 box is q7Eligible, so on uint8 this runs the Q0.7 path.
func TestFilterSeparableApproxBoxPreservesFlatImage(t *testing.T) {
	src := NewImage[uint8](8, 8, 1)
	for i := range src.Pix {
		src.Pix[i] = 180
	}
	k := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	out, err := FilterSeparableApprox(src, k, k, BorderPolicy{Mode: Reflect101}, SingleThreaded())
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Pix {
		if v != 180 {
			t.Errorf("index %d = %d, want 180", i, v)
		}
	}
}

// A small, symmetric, non-negative uint8 kernel should route through the
// Q0.7 fast path and still preserve a flat image.
func TestFilterSeparableApproxQ7PathPreservesFlatImage(t *testing.T) {
	src := NewImage[uint8](8, 8, 1)
	for i := range src.Pix {
		src.Pix[i] = 90
	}
	k := []float64{1.0 / 5, 1.0 / 5, 1.0 / 5, 1.0 / 5, 1.0 / 5}
	if !q7Eligible(k) {
		t.Fatal("expected kernel to be Q7-eligible")
	}
	out, err := FilterSeparableApprox(src, k, k, BorderPolicy{Mode: Reflect101}, SingleThreaded())
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Pix {
		if v != 90 {
			t.Errorf("index %d = %d, want 90", i, v)
		}
	}
}

// uint16 images never take the Q7 fast path but must still filter
// correctly through the general Q15 path.
func TestFilterSeparableApproxUint16PreservesFlatImage(t *testing.T) {
	src := NewImage[uint16](6, 6, 1)
	for i := range src.Pix {
		src.Pix[i] = 4000
	}
	k := []float64{0.25, 0.5, 0.25}
	out, err := FilterSeparableApprox(src, k, k, BorderPolicy{Mode: Clamp}, SingleThreaded())
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Pix {
		if v != 4000 {
			t.Errorf("index %d = %d, want 4000", i, v)
		}
	}
}

func TestFilterComplexSeparableRealWeightsKeepShape(t *testing.T) {
	src := NewImage[uint8](6, 6, 1)
	for i := range src.Pix {
		src.Pix[i] = uint8(i % 7 * 10)
	}
	k := []complex128{complex(0.25, 0), complex(0.5, 0), complex(0.25, 0)}
	out, err := FilterComplexSeparable(src, k, k, BorderPolicy{Mode: Reflect101}, SingleThreaded())
	if err != nil {
		t.Fatal(err)
	}
	if out.Width != src.Width || out.Height != src.Height {
		t.Fatalf("shape mismatch")
	}
}

func TestFilterComplexSeparableFixedPointRoundTrip(t *testing.T) {
	src := NewImage[uint8](6, 6, 1)
	for i := range src.Pix {
		src.Pix[i] = uint8(50 + i%10)
	}
	const q = 15
	one := ComplexQ{Re: int32(1) << q}
	k := []ComplexQ{one}
	out, err := FilterComplexSeparableFixedPoint(src, k, k, q, BorderPolicy{Mode: Clamp}, SingleThreaded())
	if err != nil {
		t.Fatal(err)
	}
	for i := range out.Pix {
		if out.Pix[i] != src.Pix[i] {
			t.Errorf("index %d = %d, want %d (identity kernel round-trip)", i, out.Pix[i], src.Pix[i])
		}
	}
}

func TestSameShape(t *testing.T) {
	a := NewImage[uint8](4, 4, 3)
	b := NewImage[uint8](4, 4, 3)
	c := NewImage[uint8](4, 5, 3)
	if !SameShape(a, b) {
		t.Error("expected equal shapes to match")
	}
	if SameShape(a, c) {
		t.Error("expected different heights to mismatch")
	}
}
