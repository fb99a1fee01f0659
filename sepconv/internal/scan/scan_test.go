package scan

import (
	"errors"
	"testing"
)

func TestScanOffsets(t *testing.T) {
	points, err := Scan([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Point[float64]{
		{Offset: -2, Weight: 1},
		{Offset: -1, Weight: 2},
		{Offset: 0, Weight: 3},
		{Offset: 1, Weight: 4},
		{Offset: 2, Weight: 5},
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d: got %+v, want %+v", i, points[i], want[i])
		}
	}
}

func TestScanSingleTap(t *testing.T) {
	points, err := Scan([]int{7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Offset != 0 || points[0].Weight != 7 {
		t.Errorf("got %+v", points)
	}
}

func TestScanEvenKernelFails(t *testing.T) {
	_, err := Scan([]float32{1, 2})
	if !errors.Is(err, ErrOddKernel) {
		t.Errorf("got %v, want ErrOddKernel", err)
	}
}

func TestIsSymmetric(t *testing.T) {
	cases := []struct {
		kernel []float64
		want   bool
	}{
		{[]float64{1, 2, 1}, true},
		{[]float64{1, 2, 3}, false},
		{[]float64{1}, true},
		{[]float64{0.25, 0.5, 0.25}, true},
		{[]float64{1, 2, 2, 2, 1}, true},
		{[]float64{1, 2, 3, 2, 1.0000001}, false},
	}
	for _, c := range cases {
		if got := IsSymmetric(c.kernel); got != c.want {
			t.Errorf("IsSymmetric(%v) = %v, want %v", c.kernel, got, c.want)
		}
	}
}
