package fixedpoint

import "testing"

func TestScaleWeightQ15(t *testing.T) {
	got := ScaleWeight(1.0/3.0, Q15)
	want := int64(10923) // round(32768/3) = round(10922.67) = 10923
	if got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestScaleKernelBoxQ15(t *testing.T) {
	kernel := []float64{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0}
	scaled := ScaleKernel(kernel, Q15)
	for i, v := range scaled {
		if v != 10923 {
			t.Errorf("tap %d = %d, want 10923", i, v)
		}
	}
}

func TestRoundShiftHalfUp(t *testing.T) {
	// bias = 1<<14 = 16384; (x+16384)>>15
	cases := []struct {
		acc  int64
		want int64
	}{
		{0, 0},
		{16384, 1},  // exactly half rounds up
		{16383, 0},
		{32768, 1},
	}
	for _, c := range cases {
		if got := RoundShift(c.acc, Q15); got != c.want {
			t.Errorf("RoundShift(%d) = %d, want %d", c.acc, got, c.want)
		}
	}
}

func TestSaturateUint8(t *testing.T) {
	if got := Saturate[uint8](-5); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := Saturate[uint8](300); got != 255 {
		t.Errorf("got %d, want 255", got)
	}
	if got := Saturate[uint8](180); got != 180 {
		t.Errorf("got %d, want 180", got)
	}
}

func TestSaturateUint16(t *testing.T) {
	if got := Saturate[uint16](-1); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := Saturate[uint16](70000); got != 65535 {
		t.Errorf("got %d, want 65535", got)
	}
}

func TestRenormalizeQ7(t *testing.T) {
	weights := []int32{16, 32, 48, 32, 16} // sums to 144, not 128
	renorm := RenormalizeQ7(weights)
	var sum int32
	for _, w := range renorm {
		sum += w
	}
	if sum != 128 {
		t.Errorf("sum = %d, want 128", sum)
	}
	// only the center tap should have moved
	if renorm[0] != weights[0] || renorm[1] != weights[1] || renorm[3] != weights[3] || renorm[4] != weights[4] {
		t.Errorf("non-center taps changed: %v vs %v", renorm, weights)
	}
}

func TestBoxFilterScenario(t *testing.T) {
	// spec.md scenario 1: 3x3 box filter, center pixel 180 in the exact sum.
	weight := ScaleWeight(1.0/3.0, Q15)
	// row-pass: 10*w+10*w+10*w for a flat row = 30*w -> combine twice (row then column)
	// This test only pins down the scale step; no test in this module runs
	// the scenario through the full pipeline.
	if weight != 10923 {
		t.Fatalf("unexpected scaled weight %d", weight)
	}
}
